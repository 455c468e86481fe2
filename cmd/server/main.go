package main

import (
    "log"
    "net/http"
    "os"

    "github.com/joho/godotenv"
    "go.uber.org/zap"

    "github.com/example/quran-mood-agent/internal/agent"
    "github.com/example/quran-mood-agent/internal/api"
    "github.com/example/quran-mood-agent/internal/providers/llm"
    "github.com/example/quran-mood-agent/internal/quran"
)

func main() {
    // optional .env for local runs
    _ = godotenv.Load()

    logger, err := newLogger()
    if err != nil {
        log.Fatal(err)
    }
    defer func() { _ = logger.Sync() }()
    sugar := logger.Sugar()

    addr := ":8080"
    if v := os.Getenv("PORT"); v != "" {
        addr = ":" + v
    }

    ag := agent.New(llm.NewFromEnv(), quran.New(), sugar)
    srv := api.New(ag, sugar)

    mux := http.NewServeMux()
    srv.RegisterRoutes(mux)

    sugar.Infow("server listening", "addr", addr)
    if err := http.ListenAndServe(addr, cors(mux)); err != nil {
        sugar.Fatalw("server exited", "err", err)
    }
}

func newLogger() (*zap.Logger, error) {
    switch os.Getenv("APP_ENV") {
    case "prod", "production":
        return zap.NewProduction()
    }
    return zap.NewDevelopment()
}

// simple CORS middleware; the upstream channel platform calls from browsers
func cors(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}
