package media

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Info describes a decoded image payload.
type Info struct {
	Width  int
	Height int
}

// Inspect decodes a binary media payload as an image and returns its pixel
// dimensions. Non-image payloads (audio, video, unknown formats) return an
// error; callers treat that as "dimensions unavailable", not a failure.
func Inspect(data []byte) (Info, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	return Info{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
