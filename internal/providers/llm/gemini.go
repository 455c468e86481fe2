package llm

import (
    "context"
    "errors"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient talks to Gemini through the official SDK, with the Quranic
// assistant persona set as the model's system instruction.
type GeminiClient struct {
    client *genai.Client
    model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
    c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
    if err != nil { return nil, err }
    m := c.GenerativeModel(model)
    m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
    return &GeminiClient{client: c, model: m}, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
    resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
    if err != nil { return "", err }
    txt := firstText(resp)
    if txt == "" { return "", errors.New("no candidates") }
    return txt, nil
}

func (g *GeminiClient) Close() error {
    return g.client.Close()
}

func firstText(r *genai.GenerateContentResponse) string {
    if r == nil { return "" }
    for _, c := range r.Candidates {
        if c.Content == nil { continue }
        for _, part := range c.Content.Parts {
            if t, ok := part.(genai.Text); ok {
                return string(t)
            }
        }
    }
    return ""
}
