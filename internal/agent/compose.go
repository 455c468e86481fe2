package agent

import (
    "context"
    "fmt"
    "strings"
)

// noVerseSentinel is the literal the model is told to reply with when it
// cannot name a specific verse.
const noVerseSentinel = "NO_VERSE_FOUND"

// Compose produces the verse-plus-explanation reply for a detected mood.
//
// Stage 1 asks the model for a verse directly. The reply is accepted only if
// it avoids the sentinel and carries both the "Verse:" and "Explanation:"
// labels. Otherwise stage 2 fetches a random verse and asks the model only
// to explain it. Every external failure degrades to a display-ready apology;
// Compose never returns an error.
func (a *Agent) Compose(ctx context.Context, mood, message string) string {
    reply, err := a.LLM.GenerateText(ctx, directVersePrompt(mood, message))
    if err != nil {
        a.Log.Warnw("direct verse generation failed", "mood", mood, "err", err)
        return a.reflectionFallback(ctx)
    }
    reply = strings.TrimSpace(reply)
    if !strings.Contains(reply, noVerseSentinel) && strings.Contains(reply, "Verse:") && strings.Contains(reply, "Explanation:") {
        return reply
    }

    // fallback: random verse, model explains it
    verse, err := a.Quran.RandomVerse(ctx)
    if err != nil {
        a.Log.Warnw("quran fetch failed", "err", err)
        return FetchApology
    }
    explained, err := a.LLM.GenerateText(ctx, explainVersePrompt(mood, message, verse.Quote()))
    if err != nil {
        a.Log.Warnw("verse explanation failed", "mood", mood, "err", err)
        return reflectionReply(verse.Quote())
    }
    return strings.TrimSpace(explained)
}

// reflectionFallback covers total model failure: fetch one verse and hand it
// over without commentary, or apologize if even the fetch fails.
func (a *Agent) reflectionFallback(ctx context.Context) string {
    verse, err := a.Quran.RandomVerse(ctx)
    if err != nil {
        a.Log.Warnw("quran fetch failed", "err", err)
        return FetchApology
    }
    return reflectionReply(verse.Quote())
}

func reflectionReply(quote string) string {
    return "I'm sorry — couldn't get a tailored verse. Here's something to reflect on: " + quote
}

func directVersePrompt(mood, message string) string {
    var themes string
    if t := themesFor(mood); len(t) > 0 {
        themes = fmt.Sprintf("Themes often connected to this mood: %s.\n", strings.Join(t, ", "))
    }
    return fmt.Sprintf(
        "The user is feeling %s because they said: \"%s\".\n"+
            "Provide a highly relevant Quranic verse (Surah:Ayah) and a brief explanation of how it addresses their mood.\n"+
            "%s"+
            "If you cannot find a specific verse, just say '%s'.\n"+
            "Format your response strictly as:\n"+
            "Verse: [Surah:Ayah] - [English Translation]\n"+
            "Explanation: [Your explanation]",
        mood, message, themes, noVerseSentinel)
}

func explainVersePrompt(mood, message, quote string) string {
    return fmt.Sprintf(
        "The user is feeling %s because they said: \"%s\".\n"+
            "Here is a Quranic verse: %s.\n"+
            "Explain how this verse can be relevant or comforting to someone feeling %s.\n"+
            "Format your response strictly as:\n"+
            "Verse: %s\nExplanation:",
        mood, message, quote, mood, quote)
}
