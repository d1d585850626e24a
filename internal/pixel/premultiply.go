package pixel

import (
	"image"
	"math"
)

// BytesPerPixel is the size of one pixel in every produced buffer.
const BytesPerPixel = 4

// PremultiplyPixel converts one straight-alpha RGBA pixel to premultiplied
// BGRA, scaling alpha by opacity first.
func PremultiplyPixel(r, g, b, a uint8, opacity float64) [4]uint8 {
	scaled := float64(a) * opacity
	factor := scaled / 255

	return [4]uint8{
		uint8(math.Round(float64(b) * factor)),
		uint8(math.Round(float64(g) * factor)),
		uint8(math.Round(float64(r) * factor)),
		uint8(math.Round(scaled)),
	}
}

// Premultiply converts a straight-alpha image into a BGRA premultiplied
// buffer of exactly width*height*4 bytes. Opacity is clamped to [0, 1].
func Premultiply(img *image.NRGBA, opacity float64) []byte {
	opacity = ClampOpacity(opacity)

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]byte, 0, w*h*BytesPerPixel)

	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*BytesPerPixel]
		for x := 0; x < len(row); x += BytesPerPixel {
			px := PremultiplyPixel(row[x], row[x+1], row[x+2], row[x+3], opacity)
			out = append(out, px[:]...)
		}
	}

	return out
}

// ClampOpacity limits opacity to [0, 1]. NaN is treated as fully opaque.
func ClampOpacity(opacity float64) float64 {
	switch {
	case math.IsNaN(opacity):
		return 1
	case opacity < 0:
		return 0
	case opacity > 1:
		return 1
	default:
		return opacity
	}
}
