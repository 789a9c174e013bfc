// Package imaging normalizes model-produced images into PNG for inline display.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats image generation endpoints return.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec errors
var (
	ErrEmptyImage  = errors.New("image data cannot be empty")
	ErrUndecodable = errors.New("undecodable image data")
)

// PNGMIMEType is the MIME type of every re-encoded image.
const PNGMIMEType = "image/png"

// ReencodePNG decodes raw image bytes in any registered format and encodes
// the pixels as PNG.
func ReencodePNG(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s image as png: %w", format, err)
	}

	return buf.Bytes(), nil
}

// ReencodeBase64 re-encodes raw image bytes as PNG and returns the payload
// in standard base64, ready for a data URI.
func ReencodeBase64(data []byte) (string, error) {
	pngBytes, err := ReencodePNG(data)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(pngBytes), nil
}

// DataURI wraps a base64 PNG payload in a data URI usable as an img src.
func DataURI(b64 string) string {
	return "data:" + PNGMIMEType + ";base64," + b64
}
