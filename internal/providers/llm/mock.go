package llm

import (
    "context"
    "strings"
)

// MockClient is used when no real provider is configured. It keys off the
// prompt shape so local runs exercise the full pipeline.
type MockClient struct{}

func (m *MockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
    p := strings.ToLower(prompt)
    if strings.Contains(p, "identify the primary mood") {
        return "calm", nil
    }
    return "Verse: [13:28] - Verily, in the remembrance of Allah do hearts find rest.\n" +
        "Explanation: Stillness of the heart comes through remembrance, whatever the day brought.", nil
}
