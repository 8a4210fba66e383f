package service

import (
	"bytes"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldhtml "github.com/yuin/goldmark/renderer/html"

	"blog-api/internal/domain"
)

const (
	maxCommentLength = 2000
	// entity layers decoded before falling back to the escaped form
	maxUnescapeRounds = 4
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(goldhtml.WithHardWraps(), goldhtml.WithXHTML()),
	)
	postPolicy    = newPostPolicy()
	commentPolicy = bluemonday.StrictPolicy()
)

func newPostPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// sanitizeComment strips all markup from comment text and enforces its length
func sanitizeComment(content string) (string, error) {
	clean := strings.TrimSpace(stripMarkup(content))
	if clean == "" {
		return "", domain.ErrContentEmpty
	}
	if utf8.RuneCountInString(clean) > maxCommentLength {
		return "", domain.ErrContentTooLong
	}
	return clean, nil
}

// stripMarkup reduces content to plain text. Entity-encoded markup is decoded and
// stripped again until a pass changes nothing, so no decoded layer can reintroduce tags.
func stripMarkup(content string) string {
	current := content
	for i := 0; i < maxUnescapeRounds; i++ {
		escaped := commentPolicy.Sanitize(current)
		plain := html.UnescapeString(escaped)
		if plain == current {
			return plain
		}
		current = plain
	}
	return commentPolicy.Sanitize(current)
}

// renderMarkdown converts post markdown to sanitized HTML
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return postPolicy.Sanitize(source)
	}
	return string(postPolicy.SanitizeBytes(buf.Bytes()))
}
