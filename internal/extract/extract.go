// Package extract locates the user-authored text inside an arbitrarily
// shaped inbound JSON payload. Different channel integrations wrap the
// message differently, so extraction runs as an ordered list of named
// strategies; the first one that reports a match wins.
package extract

import (
    "bytes"
    "encoding/json"
    "strings"

    "github.com/example/quran-mood-agent/internal/textutil"
)

// Strategy inspects a decoded payload (and the raw bytes it came from) and
// reports the cleaned user text if the shape it knows about is present.
type Strategy struct {
    Name string
    fn   func(payload map[string]any, raw []byte) (string, bool)
}

var (
    // NestedMessages handles payloads shaped {"messages":[{"messages":[...]}]}:
    // the inner list is scanned in reverse for the last entry whose text,
    // content or message field cleans to something non-empty.
    NestedMessages = Strategy{Name: "nested_messages", fn: nestedMessages}

    // RPCParts handles {"params":{"message":{"parts":[...]}}} payloads: the
    // first part of kind "data" with a non-empty data list contributes the
    // text of that list's last element.
    RPCParts = Strategy{Name: "rpc_parts", fn: rpcParts}

    // FlatFields handles top-level string fields message, content and text,
    // in that order. A present key terminates extraction even when its value
    // cleans to empty.
    FlatFields = Strategy{Name: "flat_fields", fn: flatFields}

    // DeepScan walks the raw JSON token stream and keeps the last non-blank
    // string stored under a key literally named "text". Walking the raw bytes
    // rather than a decoded map keeps "last" meaning document order.
    DeepScan = Strategy{Name: "deep_scan", fn: deepScan}
)

// Extractor tries its strategies in order. Each deployment can enable the
// subset of shapes its channels actually send.
type Extractor struct {
    Strategies []Strategy
}

// Default returns an extractor with every known strategy enabled, in the
// documented resolution order.
func Default() *Extractor {
    return &Extractor{Strategies: []Strategy{NestedMessages, RPCParts, FlatFields, DeepScan}}
}

// Extract returns the cleaned user text, or "" when no strategy matches or
// the payload is not a JSON object. It never fails.
func (e *Extractor) Extract(raw []byte) string {
    var payload map[string]any
    if err := json.Unmarshal(raw, &payload); err != nil { return "" }
    for _, s := range e.Strategies {
        if text, ok := s.fn(payload, raw); ok { return text }
    }
    return ""
}

func nestedMessages(payload map[string]any, _ []byte) (string, bool) {
    outer, ok := payload["messages"].([]any)
    if !ok || len(outer) == 0 { return "", false }
    first, ok := outer[0].(map[string]any)
    if !ok { return "", false }
    inner, ok := first["messages"].([]any)
    if !ok { return "", false }
    // scan reversed to pick the last meaningful text
    for i := len(inner) - 1; i >= 0; i-- {
        entry, ok := inner[i].(map[string]any)
        if !ok { continue }
        raw := ""
        for _, key := range []string{"text", "content", "message"} {
            if s, ok := entry[key].(string); ok && s != "" {
                raw = s
                break
            }
        }
        if raw == "" { continue }
        if cleaned := textutil.Clean(raw); cleaned != "" { return cleaned, true }
    }
    return "", false
}

func rpcParts(payload map[string]any, _ []byte) (string, bool) {
    params, ok := payload["params"].(map[string]any)
    if !ok { return "", false }
    msg, ok := params["message"].(map[string]any)
    if !ok { return "", false }
    parts, ok := msg["parts"].([]any)
    if !ok { return "", false }
    for _, p := range parts {
        part, ok := p.(map[string]any)
        if !ok { continue }
        if kind, _ := part["kind"].(string); kind != "data" { continue }
        data, ok := part["data"].([]any)
        if !ok || len(data) == 0 { continue }
        last, ok := data[len(data)-1].(map[string]any)
        if !ok { continue }
        if s, ok := last["text"].(string); ok {
            return textutil.Clean(s), true
        }
    }
    return "", false
}

func flatFields(payload map[string]any, _ []byte) (string, bool) {
    for _, key := range []string{"message", "content", "text"} {
        if s, ok := payload[key].(string); ok {
            return textutil.Clean(s), true
        }
    }
    return "", false
}

func deepScan(_ map[string]any, raw []byte) (string, bool) {
    dec := json.NewDecoder(bytes.NewReader(raw))
    type frame struct {
        object    bool
        expectKey bool
    }
    var stack []frame
    textKey := false
    last, found := "", false
    for {
        tok, err := dec.Token()
        if err != nil { break }
        switch t := tok.(type) {
        case json.Delim:
            switch t {
            case '{':
                stack = append(stack, frame{object: true, expectKey: true})
            case '[':
                stack = append(stack, frame{})
            case '}', ']':
                if len(stack) > 0 { stack = stack[:len(stack)-1] }
                if len(stack) > 0 && stack[len(stack)-1].object {
                    stack[len(stack)-1].expectKey = true
                }
            }
            textKey = false
        case string:
            if len(stack) > 0 && stack[len(stack)-1].object {
                top := &stack[len(stack)-1]
                if top.expectKey {
                    textKey = t == "text"
                    top.expectKey = false
                    continue
                }
                if textKey && strings.TrimSpace(t) != "" {
                    last, found = t, true
                }
                textKey = false
                top.expectKey = true
            }
        default:
            if len(stack) > 0 && stack[len(stack)-1].object {
                stack[len(stack)-1].expectKey = true
            }
            textKey = false
        }
    }
    if !found { return "", false }
    return textutil.Clean(last), true
}
