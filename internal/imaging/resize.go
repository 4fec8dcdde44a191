package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// MaxWidth is the bound listing photos are scaled down to before storage.
const MaxWidth = 1200

const jpegQuality = 85

// Resize decodes a JPEG or PNG upload and scales it down to MaxWidth,
// preserving aspect ratio. Images already within the bound are re-encoded
// as-is. The result is always JPEG.
func Resize(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxWidth {
		h := bounds.Dy() * MaxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
