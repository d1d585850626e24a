package pixel

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPremultiplyPixel(t *testing.T) {
	tests := []struct {
		name    string
		rgba    [4]uint8
		opacity float64
		want    [4]uint8 // b, g, r, a
	}{
		{
			name:    "opaque pixel at full opacity is unchanged",
			rgba:    [4]uint8{10, 20, 30, 255},
			opacity: 1,
			want:    [4]uint8{30, 20, 10, 255},
		},
		{
			name:    "zero opacity is transparent black",
			rgba:    [4]uint8{200, 100, 50, 255},
			opacity: 0,
			want:    [4]uint8{0, 0, 0, 0},
		},
		{
			name:    "half opacity on opaque white",
			rgba:    [4]uint8{255, 255, 255, 255},
			opacity: 0.5,
			want:    [4]uint8{128, 128, 128, 128},
		},
		{
			name:    "source alpha is premultiplied",
			rgba:    [4]uint8{255, 0, 100, 128},
			opacity: 1,
			want:    [4]uint8{50, 0, 128, 128},
		},
		{
			name:    "fully transparent source stays transparent",
			rgba:    [4]uint8{255, 255, 255, 0},
			opacity: 1,
			want:    [4]uint8{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PremultiplyPixel(tt.rgba[0], tt.rgba[1], tt.rgba[2], tt.rgba[3], tt.opacity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPremultiplyPixel_OpaqueIdentity(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		got := PremultiplyPixel(c, 255-c, c/2, 255, 1)
		assert.Equal(t, [4]uint8{c / 2, 255 - c, c, 255}, got)
	}
}

func TestPremultiplyPixel_ZeroOpacity(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		c := uint8(v)
		assert.Equal(t, [4]uint8{}, PremultiplyPixel(c, c, c, c, 0))
	}
}

func TestPremultiply_LayoutAndLength(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})

	out := Premultiply(img, 1)

	assert.Len(t, out, 3*2*BytesPerPixel)
	assert.Equal(t, []byte{0, 0, 255, 255}, out[0:4], "red")
	assert.Equal(t, []byte{0, 255, 0, 255}, out[4:8], "green")
	assert.Equal(t, []byte{255, 0, 0, 255}, out[8:12], "blue")
	assert.Equal(t, []byte{0, 0, 0, 0}, out[12:16], "unset pixel")
}

func TestPremultiply_SubImageUsesStride(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	full.SetNRGBA(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	sub := full.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	out := Premultiply(sub, 1)

	assert.Len(t, out, 2*2*BytesPerPixel)
	assert.Equal(t, []byte{3, 2, 1, 255}, out[0:4])
}

func TestClampOpacity(t *testing.T) {
	assert.Equal(t, 0.0, ClampOpacity(-1))
	assert.Equal(t, 1.0, ClampOpacity(2))
	assert.Equal(t, 0.25, ClampOpacity(0.25))
	assert.Equal(t, 1.0, ClampOpacity(math.NaN()))
}
