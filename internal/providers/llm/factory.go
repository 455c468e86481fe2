package llm

import (
    "context"
    "os"
    "strings"
)

// NewFromEnv returns a Client based on environment variables.
// Supported providers:
// - LLM_PROVIDER=gemini|gemini-http|openai|anthropic
// - For Gemini:    GEMINI_API_KEY or GOOGLE_API_KEY, optional LLM_MODEL
// - For OpenAI:    OPENAI_API_KEY, optional LLM_MODEL
// - For Anthropic: ANTHROPIC_API_KEY, optional LLM_MODEL
// If nothing is configured, returns a MockClient.
func NewFromEnv() Client {
    prov := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
    switch prov {
    case "gemini":
        if c := geminiFromEnv(); c != nil { return c }
    case "gemini-http":
        // Lightweight HTTP client, no SDK involved.
        if key := geminiKey(); key != "" {
            return &GeminiHTTPClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", defaultGeminiModel)}
        }
    case "openai":
        if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
            return &OpenAIClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "gpt-4o-mini"), BaseURL: strings.TrimRight(os.Getenv("OPENAI_API_BASE"), "/")}
        }
    case "anthropic":
        if key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); key != "" {
            return &AnthropicClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "claude-3-5-sonnet-latest")}
        }
    }

    // Auto-detect by API key presence if provider not specified
    if c := geminiFromEnv(); c != nil { return c }
    if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
        return &OpenAIClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "gpt-4o-mini"), BaseURL: strings.TrimRight(os.Getenv("OPENAI_API_BASE"), "/")}
    }
    if key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); key != "" {
        return &AnthropicClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "claude-3-5-sonnet-latest")}
    }

    return &MockClient{}
}

func geminiFromEnv() Client {
    key := geminiKey()
    if key == "" { return nil }
    model := getModelWithDefault("LLM_MODEL", defaultGeminiModel)
    c, err := NewGemini(context.Background(), key, model)
    if err != nil {
        // SDK construction failed; fall back to the raw HTTP client.
        return &GeminiHTTPClient{APIKey: key, Model: model}
    }
    return c
}

func geminiKey() string {
    if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" { return key }
    return strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
}

func getModelWithDefault(envKey, def string) string {
    if v := strings.TrimSpace(os.Getenv(envKey)); v != "" { return v }
    return def
}
