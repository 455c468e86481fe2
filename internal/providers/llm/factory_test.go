package llm

import (
    "context"
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
    t.Helper()
    for _, k := range []string{"LLM_PROVIDER", "LLM_MODEL", "GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
        t.Setenv(k, "")
    }
}

func TestNewFromEnv(t *testing.T) {
    t.Run("nothing configured yields mock", func(t *testing.T) {
        clearProviderEnv(t)
        _, ok := NewFromEnv().(*MockClient)
        assert.True(t, ok)
    })

    t.Run("openai key auto-detected", func(t *testing.T) {
        clearProviderEnv(t)
        t.Setenv("OPENAI_API_KEY", "sk-test")
        c, ok := NewFromEnv().(*OpenAIClient)
        require.True(t, ok)
        assert.Equal(t, "gpt-4o-mini", c.Model)
    })

    t.Run("explicit anthropic provider", func(t *testing.T) {
        clearProviderEnv(t)
        t.Setenv("LLM_PROVIDER", "anthropic")
        t.Setenv("ANTHROPIC_API_KEY", "ak-test")
        t.Setenv("LLM_MODEL", "claude-3-5-haiku-latest")
        c, ok := NewFromEnv().(*AnthropicClient)
        require.True(t, ok)
        assert.Equal(t, "claude-3-5-haiku-latest", c.Model)
    })

    t.Run("gemini-http provider", func(t *testing.T) {
        clearProviderEnv(t)
        t.Setenv("LLM_PROVIDER", "gemini-http")
        t.Setenv("GEMINI_API_KEY", "g-test")
        c, ok := NewFromEnv().(*GeminiHTTPClient)
        require.True(t, ok)
        assert.Equal(t, defaultGeminiModel, c.Model)
    })

    t.Run("provider without key falls back to mock", func(t *testing.T) {
        clearProviderEnv(t)
        t.Setenv("LLM_PROVIDER", "openai")
        _, ok := NewFromEnv().(*MockClient)
        assert.True(t, ok)
    })
}

func TestGeminiHTTPGenerateText(t *testing.T) {
    t.Run("returns first candidate text", func(t *testing.T) {
        ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            assert.Contains(t, r.URL.Path, "models/test-model")
            fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"calm"}]}}]}`)
        }))
        defer ts.Close()
        t.Setenv("GEMINI_API_URL", ts.URL)

        c := &GeminiHTTPClient{APIKey: "k", Model: "test-model"}
        out, err := c.GenerateText(context.Background(), "how does the user feel?")
        require.NoError(t, err)
        assert.Equal(t, "calm", out)
    })

    t.Run("error status surfaces", func(t *testing.T) {
        ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
        }))
        defer ts.Close()
        t.Setenv("GEMINI_API_URL", ts.URL)

        c := &GeminiHTTPClient{APIKey: "k", Model: "test-model"}
        _, err := c.GenerateText(context.Background(), "x")
        assert.Error(t, err)
    })

    t.Run("no candidates is an error", func(t *testing.T) {
        ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            fmt.Fprint(w, `{"candidates":[]}`)
        }))
        defer ts.Close()
        t.Setenv("GEMINI_API_URL", ts.URL)

        c := &GeminiHTTPClient{APIKey: "k", Model: "test-model"}
        _, err := c.GenerateText(context.Background(), "x")
        assert.Error(t, err)
    })
}

func TestMockClient(t *testing.T) {
    m := &MockClient{}

    out, err := m.GenerateText(context.Background(), moodStyle("I feel heavy"))
    require.NoError(t, err)
    assert.Equal(t, "calm", out)

    out, err = m.GenerateText(context.Background(), "Provide a highly relevant Quranic verse")
    require.NoError(t, err)
    assert.Contains(t, out, "Verse:")
    assert.Contains(t, out, "Explanation:")
}

func moodStyle(text string) string {
    return "Analyze the following text and identify the primary mood expressed.\nText: '" + text + "'"
}
