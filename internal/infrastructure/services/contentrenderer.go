package services

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// MarkdownRenderer turns RICH_TEXT bodies into sanitized HTML and strips
// dangerous markup from raw HTML bodies. Plain text passes through with no
// stored formatted form.
type MarkdownRenderer struct {
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (r *MarkdownRenderer) Render(contentType vo.ContentType, body string) (string, error) {
	switch contentType {
	case vo.ContentTypeRichText:
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(body), &buf); err != nil {
			return "", fmt.Errorf("failed to render markdown: %w", err)
		}
		return r.sanitizer.Sanitize(buf.String()), nil
	case vo.ContentTypeHTML:
		return r.sanitizer.Sanitize(body), nil
	default:
		return "", nil
	}
}
