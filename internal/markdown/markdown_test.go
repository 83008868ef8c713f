package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasics(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and strong",
			source:   "some *italic* and **bold** text",
			contains: []string{"<em>italic</em>", "<strong>bold</strong>"},
		},
		{
			name:     "fenced code block keeps language class",
			source:   "```go\nfmt.Println(\"hi\")\n```",
			contains: []string{`<code class="language-go">`},
		},
		{
			name:     "gfm strikethrough",
			source:   "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "script tag stripped",
			source:   "hello <script>alert(1)</script> world",
			contains: []string{"hello"},
			excludes: []string{"<script>", "alert(1)"},
		},
		{
			name:     "event handler attribute stripped",
			source:   `<img src="x.png" onerror="alert(1)">`,
			excludes: []string{"onerror"},
		},
		{
			name:     "links get rel nofollow",
			source:   "[site](https://example.com)",
			contains: []string{`href="https://example.com"`, "nofollow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.source)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(got), want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, string(got), bad)
			}
		})
	}
}

func TestRenderTrimsSurroundingWhitespace(t *testing.T) {
	r := New()

	got, err := r.Render("\n\nhello\n\n")
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(got), "\n"))
	assert.False(t, strings.HasSuffix(string(got), "\n"))
}
