package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// ImageResult is a rendered image ready to embed in a JSON response.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

var pngEncoder = imgio.PNGEncoder()

func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := pngEncoder(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
