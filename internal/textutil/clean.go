// Package textutil normalizes user-supplied strings before they reach the
// mood pipeline. Inbound channels deliver HTML fragments, entity-escaped
// text and non-breaking spaces; everything downstream expects plain text.
package textutil

import (
    "strings"

    "golang.org/x/net/html"
)

// Clean strips markup from raw, decodes HTML entities, folds non-breaking
// spaces into ordinary spaces and collapses whitespace runs to a single
// space. Empty or unparseable input yields "". Clean is idempotent.
func Clean(raw string) string {
    if raw == "" { return "" }
    node, err := html.Parse(strings.NewReader(raw))
    if err != nil { return "" }
    var b strings.Builder
    visibleText(node, &b, false)
    out := strings.ReplaceAll(b.String(), " ", " ")
    return strings.Join(strings.Fields(out), " ")
}

func visibleText(n *html.Node, b *strings.Builder, inHidden bool) {
    if n.Type == html.ElementNode {
        // skip script/style/noscript
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript":
            inHidden = true
        case "br", "p", "div", "li", "tr":
            b.WriteString(" ")
        }
    }
    if !inHidden && n.Type == html.TextNode {
        b.WriteString(n.Data)
        b.WriteString(" ")
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        visibleText(c, b, inHidden)
    }
}
