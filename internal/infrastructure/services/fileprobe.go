package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ContentProbe derives the stored file metadata from uploaded bytes: a
// SHA-256 checksum always, and pixel dimensions when the content decodes
// as an image. Unknown formats are simply not images.
type ContentProbe struct{}

func NewContentProbe() *ContentProbe {
	return &ContentProbe{}
}

func (p *ContentProbe) Probe(content []byte) (checksum string, isImage bool, width, height int) {
	sum := sha256.Sum256(content)
	checksum = hex.EncodeToString(sum[:])

	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return checksum, false, 0, 0
	}

	return checksum, true, cfg.Width, cfg.Height
}
