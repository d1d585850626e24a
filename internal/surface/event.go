package surface

import "github.com/jmylchreest/reticle/internal/pixel"

// Event is a compositor notification delivered to the Machine.
type Event interface {
	event()
}

// ConfigureEvent proposes a surface size. A zero dimension keeps the
// current value.
type ConfigureEvent struct {
	Width  int
	Height int
}

// FrameReadyEvent reports that the compositor is ready for the next frame.
type FrameReadyEvent struct{}

// ClosedEvent reports that the compositor closed the surface.
type ClosedEvent struct{}

// OutputInfoEvent reports the logical size of the output changed or became
// known.
type OutputInfoEvent struct {
	Width  int
	Height int
}

// ImageReplacedEvent swaps the displayed image, e.g. after the source file
// changed on disk.
type ImageReplacedEvent struct {
	Image *pixel.Image
}

func (ConfigureEvent) event()     {}
func (FrameReadyEvent) event()    {}
func (ClosedEvent) event()        {}
func (OutputInfoEvent) event()    {}
func (ImageReplacedEvent) event() {}
