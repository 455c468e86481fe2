package textutil

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
    t.Run("strips markup and decodes entities", func(t *testing.T) {
        assert.Equal(t, "Hi there", Clean("<b>Hi&nbsp;there</b>"))
    })

    t.Run("empty input", func(t *testing.T) {
        assert.Equal(t, "", Clean(""))
    })

    t.Run("collapses whitespace runs", func(t *testing.T) {
        assert.Equal(t, "a b c", Clean("  a \n\t b \r\n c  "))
    })

    t.Run("drops script and style subtrees", func(t *testing.T) {
        assert.Equal(t, "visible", Clean(`<p>visible</p><script>var hidden = 1;</script><style>p{}</style>`))
    })

    t.Run("separates adjacent elements", func(t *testing.T) {
        assert.Equal(t, "one two", Clean("<p>one</p><p>two</p>"))
    })

    t.Run("plain text passes through", func(t *testing.T) {
        assert.Equal(t, "I feel low today", Clean("I feel low today"))
    })

    t.Run("idempotent", func(t *testing.T) {
        inputs := []string{
            "<div>Peace &amp; <i>calm</i>&nbsp;now</div>",
            "already clean text",
            "  spaced   out  ",
        }
        for _, in := range inputs {
            once := Clean(in)
            assert.Equal(t, once, Clean(once), "input %q", in)
        }
    })
}
