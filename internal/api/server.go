// Package api maps the two wire envelopes onto the shared agent pipeline.
package api

import (
    "encoding/json"
    "io"
    "net/http"
    "strings"

    "go.uber.org/zap"

    "github.com/example/quran-mood-agent/internal/agent"
    "github.com/example/quran-mood-agent/internal/extract"
    "github.com/example/quran-mood-agent/internal/textutil"
)

const internalErrorReply = "An internal error occurred while processing your request."

type Server struct {
    Agent     *agent.Agent
    Extractor *extract.Extractor
    Log       *zap.SugaredLogger
}

func New(a *agent.Agent, log *zap.SugaredLogger) *Server {
    return &Server{Agent: a, Extractor: extract.Default(), Log: log}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
    mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("ok"))
    })
    mux.HandleFunc("/agent", s.handleGeneric)
    mux.HandleFunc("/", s.handleRoot)
}

// handleRoot serves the liveness object on GET and the JSON-RPC envelope on
// POST, mirroring how the upstream channel platform drives the service.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path != "/" { http.NotFound(w, r); return }
    switch r.Method {
    case http.MethodGet:
        respondJSON(w, http.StatusOK, map[string]string{"status": "running", "service": "Quran Mood Agent"})
    case http.MethodPost:
        s.handleRPC(w, r)
    default:
        w.WriteHeader(http.StatusMethodNotAllowed)
    }
}

type genericResponse struct {
    Response string `json:"response"`
    Mood     string `json:"mood"`
    Source   string `json:"source"`
}

// handleGeneric serves POST /agent. Parse order: typed {kind,role,content},
// typed {message}, then the extractor's strategy chain.
func (s *Server) handleGeneric(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost { w.WriteHeader(http.StatusMethodNotAllowed); return }
    defer func() {
        if rec := recover(); rec != nil {
            s.Log.Errorw("unhandled panic on generic endpoint", "panic", rec)
            respondJSON(w, http.StatusInternalServerError, map[string]any{"error": internalErrorReply, "code": http.StatusInternalServerError})
        }
    }()

    body, err := io.ReadAll(r.Body)
    if err != nil {
        respondJSON(w, http.StatusInternalServerError, map[string]any{"error": internalErrorReply, "code": http.StatusInternalServerError})
        return
    }
    s.Log.Debugw("raw generic payload", "body", string(body))

    userMessage := ""
    parsed := false

    var tin struct {
        Kind    string `json:"kind"`
        Role    string `json:"role"`
        Content string `json:"content"`
    }
    if err := json.Unmarshal(body, &tin); err == nil && tin.Kind != "" && tin.Content != "" {
        userMessage = textutil.Clean(tin.Content)
        parsed = true
    }

    if !parsed {
        var sim struct {
            Message *string `json:"message"`
        }
        if err := json.Unmarshal(body, &sim); err == nil && sim.Message != nil {
            userMessage = textutil.Clean(*sim.Message)
            parsed = true
        }
    }

    if !parsed {
        userMessage = s.Extractor.Extract(body)
    }

    if strings.TrimSpace(userMessage) == "" {
        respondJSON(w, http.StatusBadRequest, map[string]any{"error": agent.EmptyMessageReply, "code": http.StatusBadRequest})
        return
    }

    reply := s.Agent.Respond(r.Context(), userMessage)
    respondJSON(w, http.StatusOK, genericResponse{Response: reply.Text, Mood: reply.Mood, Source: "Quran Mood Agent"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    enc := json.NewEncoder(w)
    enc.SetIndent("", "  ")
    enc.Encode(v)
}
