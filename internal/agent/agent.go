// Package agent implements the mood-to-verse pipeline shared by every
// endpoint: greeting short-circuit, mood classification, then two-stage
// verse composition with a random-verse fallback.
package agent

import (
    "context"
    "strings"

    "go.uber.org/zap"

    "github.com/example/quran-mood-agent/internal/providers/llm"
    "github.com/example/quran-mood-agent/internal/quran"
)

// Canned replies. The wording is part of the service contract; clients and
// their tests match on these strings.
const (
    GreetingReply = "Assalamu Alaikum! I am your Quran Mood Agent. Tell me how you're feeling, and I'll find a relevant Quranic verse for you."

    UnknownMoodReply = "I couldn't understand your mood. Please try expressing it more clearly so I can find a relevant Quran quote."

    EmptyMessageReply = "I didn't receive a clear message. Please try again."

    FetchApology = "I'm sorry, I couldn't fetch a Quran quote at this moment. Please try again later."
)

var greetingWords = []string{"hello", "hi", "hey"}

var infoQueries = []string{"who are you", "what are you", "what do you do"}

// Agent wires the model provider and the Quran API behind one Respond call.
// It is stateless; one Agent serves all requests.
type Agent struct {
    LLM   llm.Client
    Quran *quran.Client
    Log   *zap.SugaredLogger
}

func New(client llm.Client, qc *quran.Client, log *zap.SugaredLogger) *Agent {
    return &Agent{LLM: client, Quran: qc, Log: log}
}

// Reply is the composed response plus the mood label reported to callers.
type Reply struct {
    Text string
    Mood string
}

// Respond runs the pipeline on an already cleaned, non-empty user message.
// It never fails: every degraded path yields a display-ready reply.
func (a *Agent) Respond(ctx context.Context, message string) Reply {
    if isGreeting(message) {
        return Reply{Text: GreetingReply, Mood: MoodGreeting}
    }
    mood := a.DetectMood(ctx, message)
    if mood == MoodUnknown {
        return Reply{Text: UnknownMoodReply, Mood: MoodUnknown}
    }
    return Reply{Text: a.Compose(ctx, mood, message), Mood: mood}
}

// isGreeting matches greeting words and self-description queries anywhere in
// the message. Matching is substring-based, so "hi" inside a longer word
// also triggers it; that looseness is inherited behavior callers rely on.
func isGreeting(message string) bool {
    lowered := strings.ToLower(message)
    for _, g := range greetingWords {
        if strings.Contains(lowered, g) { return true }
    }
    for _, q := range infoQueries {
        if strings.Contains(lowered, q) { return true }
    }
    return false
}
