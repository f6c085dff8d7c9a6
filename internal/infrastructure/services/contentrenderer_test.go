package services

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()

	t.Run("markdown renders to HTML", func(t *testing.T) {
		out, err := r.Render(vo.ContentTypeRichText, "some **bold** text")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("scripts are stripped from markdown output", func(t *testing.T) {
		out, err := r.Render(vo.ContentTypeRichText, "hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("raw HTML is sanitized, not rendered", func(t *testing.T) {
		out, err := r.Render(vo.ContentTypeHTML, `<p onclick="steal()">hi</p><script>alert(1)</script>`)
		require.NoError(t, err)
		assert.Contains(t, out, "<p>hi</p>")
		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "script")
	})

	t.Run("plain text stores no formatted form", func(t *testing.T) {
		out, err := r.Render(vo.ContentTypePlainText, "just words")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestContentProbe(t *testing.T) {
	p := NewContentProbe()

	t.Run("non-image content gets a checksum only", func(t *testing.T) {
		checksum, isImage, width, height := p.Probe([]byte("plain file content"))
		assert.Len(t, checksum, 64)
		assert.False(t, isImage)
		assert.Zero(t, width)
		assert.Zero(t, height)
	})

	t.Run("png dimensions are detected", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 12, 8))))

		checksum, isImage, width, height := p.Probe(buf.Bytes())
		assert.NotEmpty(t, checksum)
		assert.True(t, isImage)
		assert.Equal(t, 12, width)
		assert.Equal(t, 8, height)
	})

	t.Run("identical content yields identical checksums", func(t *testing.T) {
		a, _, _, _ := p.Probe([]byte("same bytes"))
		b, _, _, _ := p.Probe([]byte("same bytes"))
		assert.Equal(t, a, b)
	})
}
