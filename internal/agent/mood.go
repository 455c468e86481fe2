package agent

import (
    "context"
    "fmt"
    "strings"
)

const (
    // MoodUnknown is returned when the model reply names no known mood or
    // the call fails.
    MoodUnknown = "unknown"
    // MoodGreeting labels replies produced by the greeting short-circuit.
    MoodGreeting = "greeting"
)

type moodEntry struct {
    Label  string
    Themes []string
}

// moodTable pairs each recognized mood with the Quranic themes offered to
// the model when asking for a verse. DetectMood scans it top to bottom and
// returns the first label found in the reply, so when a reply names several
// moods the earlier entry wins. That ordering is part of the contract.
var moodTable = []moodEntry{
    {"happy", []string{"joy", "gratitude", "blessing"}},
    {"sad", []string{"patience", "hope", "comfort", "grief"}},
    {"anxious", []string{"peace", "trust", "guidance"}},
    {"angry", []string{"forgiveness", "patience", "calm"}},
    {"grateful", []string{"gratitude", "thanks", "blessing"}},
    {"stressed", []string{"peace", "reliance", "ease"}},
    {"hopeful", []string{"hope", "mercy", "future"}},
    {"fearful", []string{"protection", "trust", "strength"}},
    {"calm", []string{"tranquility", "reflection", "peace"}},
    {"lonely", []string{"companionship", "Allah", "nearness"}},
    {"confused", []string{"guidance", "clarity", "wisdom"}},
    {"motivated", []string{"strive", "success", "effort"}},
    {"tired", []string{"rest", "ease", "strength"}},
    {"thankful", []string{"gratitude", "thanks", "blessing"}},
    {"inspired", []string{"creation", "signs", "knowledge"}},
}

// DetectMood classifies text into one of the moodTable labels via a single
// model call. Classification is permissive: any reply containing a label as
// a substring counts. Failures degrade to MoodUnknown, never an error.
func (a *Agent) DetectMood(ctx context.Context, text string) string {
    reply, err := a.LLM.GenerateText(ctx, moodPrompt(text))
    if err != nil {
        a.Log.Warnw("mood detection failed", "err", err)
        return MoodUnknown
    }
    lowered := strings.ToLower(strings.TrimSpace(reply))
    a.Log.Debugw("mood reply", "reply", lowered)
    for _, m := range moodTable {
        if strings.Contains(lowered, m.Label) {
            return m.Label
        }
    }
    return MoodUnknown
}

func moodPrompt(text string) string {
    return fmt.Sprintf(
        "Analyze the following text and identify the primary mood expressed. "+
            "Respond with a single word (e.g., %s). "+
            "If the mood is unclear or neutral, respond with 'unknown'.\n\nText: '%s'\nMood:",
        strings.Join(moodLabels(), ", "), text)
}

func moodLabels() []string {
    labels := make([]string, len(moodTable))
    for i, m := range moodTable {
        labels[i] = m.Label
    }
    return labels
}

func themesFor(mood string) []string {
    for _, m := range moodTable {
        if m.Label == mood {
            return m.Themes
        }
    }
    return nil
}
