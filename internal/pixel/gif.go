package pixel

import (
	"image"
	"image/gif"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// composeGIF renders each GIF frame onto the logical screen so that every
// returned image is a complete picture, applying the disposal method of
// the previous frame before drawing the next.
func composeGIF(g *gif.GIF) []*image.NRGBA {
	if len(g.Image) == 0 {
		return nil
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, frame := range g.Image {
			screen = screen.Union(frame.Bounds())
		}
		screen = image.Rect(0, 0, screen.Max.X, screen.Max.Y)
	}

	canvas := image.NewRGBA(screen)
	out := make([]*image.NRGBA, 0, len(g.Image))

	for i, frame := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous []byte
		if disposal == gif.DisposalPrevious {
			previous = make([]byte, len(canvas.Pix))
			copy(previous, canvas.Pix)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		out = append(out, imaging.Clone(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			copy(canvas.Pix, previous)
		}
	}

	return out
}
