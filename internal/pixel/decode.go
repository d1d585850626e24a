package pixel

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"io"
	"os"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/tiff" // TIFF format support
	_ "golang.org/x/image/webp" // WebP format support

	"github.com/jmylchreest/reticle/internal/animation"
)

// Frame is a single immutable premultiplied BGRA frame.
type Frame struct {
	Data []byte
}

// Image is a decoded crosshair ready for presentation. Exactly one of
// Static and Animation is set.
type Image struct {
	Width     int
	Height    int
	Format    string
	Static    *Frame
	Animation *animation.State
}

// Animated reports whether the image has more than one frame.
func (img *Image) Animated() bool {
	return img.Animation != nil
}

// CurrentData returns the pixel bytes that should be on screen now.
func (img *Image) CurrentData() []byte {
	if img.Animation != nil {
		return img.Animation.Frame().Data
	}
	if img.Static != nil {
		return img.Static.Data
	}
	return nil
}

// FrameCount returns the number of frames in the image.
func (img *Image) FrameCount() int {
	if img.Animation != nil {
		return img.Animation.Len()
	}
	return 1
}

// Loader decodes images. The zero value is not usable; use NewLoader.
type Loader struct {
	now animation.Clock
}

// NewLoader creates a loader that stamps animations using clock.
// A nil clock uses time.Now.
func NewLoader(clock animation.Clock) *Loader {
	if clock == nil {
		clock = time.Now
	}
	return &Loader{now: clock}
}

// Load decodes the image at path with the default loader.
func Load(path string, opacity float64) (*Image, error) {
	return NewLoader(nil).Load(path, opacity)
}

// Load decodes the image at path and converts every frame to premultiplied
// BGRA with the given opacity applied. The format is detected from the file
// content, never from the extension.
func (l *Loader) Load(path string, opacity float64) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Kind: KindIO, Path: path, Err: err}
	}
	defer f.Close()

	format, err := detectFormat(f)
	if err != nil {
		return nil, classify(path, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &DecodeError{Kind: KindIO, Path: path, Err: err}
	}

	var img *Image
	if format == "gif" {
		img, err = l.decodeGIF(bufio.NewReader(f), opacity)
	} else {
		img, err = decodeStatic(bufio.NewReader(f), opacity)
	}
	if err != nil {
		return nil, classify(path, err)
	}

	img.Format = format
	return img, nil
}

// detectFormat sniffs the format name from the image header.
func detectFormat(r io.Reader) (string, error) {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	if format == "" {
		return "", ErrUnknownFormat
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("invalid image dimensions: %dx%d", cfg.Width, cfg.Height)
	}
	return format, nil
}

func classify(path string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	kind := KindDecode
	switch {
	case errors.Is(err, image.ErrFormat), errors.Is(err, ErrUnknownFormat):
		kind = KindFormat
		err = ErrUnknownFormat
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
		kind = KindIO
	}
	return &DecodeError{Kind: kind, Path: path, Err: err}
}

// decodeStatic decodes a single-frame image, honouring EXIF orientation.
func decodeStatic(r io.Reader, opacity float64) (*Image, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	nrgba := imaging.Clone(src)
	bounds := nrgba.Bounds()

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Static: &Frame{Data: Premultiply(nrgba, opacity)},
	}, nil
}

// decodeGIF eagerly decodes every frame of a GIF. Single-frame GIFs are
// returned as static images so they never request frame callbacks.
func (l *Loader) decodeGIF(r io.Reader, opacity float64) (*Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}

	canvases := composeGIF(g)
	if len(canvases) == 0 {
		return nil, animation.ErrNoFrames
	}

	bounds := canvases[0].Bounds()
	img := &Image{Width: bounds.Dx(), Height: bounds.Dy()}

	if len(canvases) == 1 {
		img.Static = &Frame{Data: Premultiply(canvases[0], opacity)}
		return img, nil
	}

	frames := make([]animation.Frame, len(canvases))
	for i, canvas := range canvases {
		frames[i] = animation.Frame{
			Data:  Premultiply(canvas, opacity),
			Delay: gifDelay(g, i),
		}
	}

	state, err := animation.NewState(frames, l.now())
	if err != nil {
		return nil, err
	}
	img.Animation = state
	return img, nil
}

// gifDelay converts the frame delay from hundredths of a second.
func gifDelay(g *gif.GIF, i int) time.Duration {
	if i >= len(g.Delay) {
		return 0
	}
	return time.Duration(g.Delay[i]) * 10 * time.Millisecond
}
