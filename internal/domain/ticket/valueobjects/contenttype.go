package valueobjects

import "fmt"

// ContentType describes how a message body should be interpreted.
// RICH_TEXT bodies are markdown rendered to sanitized HTML at creation
// time; HTML bodies are sanitized as-is.
type ContentType string

const (
	ContentTypePlainText ContentType = "PLAIN_TEXT"
	ContentTypeRichText  ContentType = "RICH_TEXT"
	ContentTypeHTML      ContentType = "HTML"
)

var validContentTypes = map[ContentType]bool{
	ContentTypePlainText: true,
	ContentTypeRichText:  true,
	ContentTypeHTML:      true,
}

func (ct ContentType) String() string {
	return string(ct)
}

func (ct ContentType) IsValid() bool {
	return validContentTypes[ct]
}

func NewContentType(s string) (ContentType, error) {
	if s == "" {
		return ContentTypePlainText, nil
	}
	ct := ContentType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid content type: %s", s)
	}
	return ct, nil
}
