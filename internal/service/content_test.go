package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/domain"
)

func TestSanitizeComment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "trims whitespace", input: "\n  hi  \t", want: "hi"},
		{name: "strips tags", input: `<a href="x">link</a> and <b>bold</b>`, want: "link and bold"},
		{name: "keeps entities readable", input: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "script only", input: "<script>alert(1)</script>", wantErr: domain.ErrContentEmpty},
		{name: "blank", input: "   ", wantErr: domain.ErrContentEmpty},
		{name: "too long", input: strings.Repeat("가", maxCommentLength+1), wantErr: domain.ErrContentTooLong},
		{name: "entity-encoded script and handler", input: "&lt;script&gt;alert(1)&lt;/script&gt; &lt;img src=x onerror=alert(1)&gt;", wantErr: domain.ErrContentEmpty},
		{name: "entity-encoded tags", input: "&lt;b&gt;bold&lt;/b&gt; text", want: "bold text"},
		{name: "double-encoded script", input: "&amp;lt;script&amp;gt;x()&amp;lt;/script&amp;gt; ok", want: "ok"},
		{name: "comparison stays text", input: "1 < 2", want: "1 < 2"},
		{name: "exactly max", input: strings.Repeat("가", maxCommentLength), want: strings.Repeat("가", maxCommentLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeComment(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeComment_NoEncodedMarkupSurvives(t *testing.T) {
	inputs := []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;hi",
		"&lt;img src=x onerror=alert(1)&gt;hi",
		"&amp;lt;a href=&amp;quot;javascript:x()&amp;quot;&amp;gt;hi&amp;lt;/a&amp;gt;",
		"&#60;iframe src=x&#62;&#60;/iframe&#62;hi",
		"&amp;amp;amp;amp;lt;b&amp;amp;amp;amp;gt;hi",
	}

	for _, input := range inputs {
		got, err := sanitizeComment(input)
		require.NoError(t, err, input)
		assert.NotContains(t, got, "<", input)
		assert.Contains(t, got, "hi", input)
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("renders GFM", func(t *testing.T) {
		out := renderMarkdown("# Title\n\n- [x] done\n\n~~old~~")
		assert.Contains(t, out, `<h1 id="title">Title</h1>`)
		assert.Contains(t, out, "<del>old</del>")
	})

	t.Run("drops scripts and handlers", func(t *testing.T) {
		out := renderMarkdown("hello <script>alert(1)</script>\n\n<img src=\"a.png\" onerror=\"x()\">")
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "onerror")
	})

	t.Run("external links open safely", func(t *testing.T) {
		out := renderMarkdown("[go](https://go.dev)")
		assert.Contains(t, out, `target="_blank"`)
		assert.Contains(t, out, "noreferrer")
	})
}
