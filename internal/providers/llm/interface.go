package llm

import (
    "context"
)

// Client is the minimal surface the agent needs from a model provider: one
// prompt in, one text completion out.
type Client interface {
    GenerateText(ctx context.Context, prompt string) (string, error)
}

// systemInstruction frames every model call, matching the persona the
// service presents on its endpoints.
const systemInstruction = "You are a compassionate and knowledgeable Quranic assistant. Your primary " +
    "goal is to provide comfort, guidance, and relevant Quranic verses to users " +
    "based on their emotional state. Keep responses empathetic and concise."
