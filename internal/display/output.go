package display

import (
	"image"
	"log/slog"
	"unsafe"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/kbinani/screenshot"
)

// OutputTracker reports the logical size of the first monitor. Monitors
// that report no geometry yet are sized from the screen bounds seen by
// the screenshot backend, and failing that from the configured fallback.
type OutputTracker struct {
	display        *gdk.Display
	fallbackWidth  int
	fallbackHeight int
	probe          func() (image.Rectangle, bool)
	logger         *slog.Logger
}

// NewOutputTracker creates a tracker for display.
func NewOutputTracker(display *gdk.Display, fallbackWidth, fallbackHeight int, logger *slog.Logger) *OutputTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutputTracker{
		display:        display,
		fallbackWidth:  fallbackWidth,
		fallbackHeight: fallbackHeight,
		probe:          screenBounds,
		logger:         logger,
	}
}

// LogicalSize implements surface.OutputSource.
func (t *OutputTracker) LogicalSize() (int, int, bool) {
	monitor := firstMonitor(t.display)
	if monitor == nil {
		return 0, 0, false
	}

	geom := monitor.Geometry()
	return t.resolve(geom.Width(), geom.Height())
}

// resolve picks the output size for a known monitor.
func (t *OutputTracker) resolve(width, height int) (int, int, bool) {
	if width > 0 && height > 0 {
		return width, height, true
	}

	if t.probe != nil {
		if bounds, ok := t.probe(); ok && bounds.Dx() > 0 && bounds.Dy() > 0 {
			t.logger.Debug("monitor has no geometry, using screen bounds",
				"width", bounds.Dx(),
				"height", bounds.Dy(),
			)
			return bounds.Dx(), bounds.Dy(), true
		}
	}

	t.logger.Warn("monitor has no geometry, using fallback size",
		"width", t.fallbackWidth,
		"height", t.fallbackHeight,
	)
	return t.fallbackWidth, t.fallbackHeight, true
}

// OnChange calls fn whenever the set of monitors changes.
func (t *OutputTracker) OnChange(fn func()) {
	if t.display == nil {
		return
	}
	monitors := t.display.Monitors()
	if monitors == nil {
		return
	}
	monitors.ConnectItemsChanged(func(position, removed, added uint) {
		t.logger.Debug("monitors changed", "count", monitors.NItems())
		fn()
	})
}

// screenBounds returns the bounds of the first active display as seen by
// the screenshot backend.
func screenBounds() (image.Rectangle, bool) {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rectangle{}, false
	}
	return screenshot.GetDisplayBounds(0), true
}

// firstMonitor returns the first monitor of display, or nil.
func firstMonitor(display *gdk.Display) *gdk.Monitor {
	if display == nil {
		return nil
	}

	monitors := display.Monitors()
	if monitors == nil || monitors.NItems() == 0 {
		return nil
	}

	return wrapMonitor(monitors.Item(0))
}

// wrapMonitor wraps a list item as a gdk.Monitor. gotk4 does not export
// its own wrapper, and gdk.Monitor only embeds the object pointer.
func wrapMonitor(obj *glib.Object) *gdk.Monitor {
	if obj == nil {
		return nil
	}
	type monitor struct {
		_ [0]func()
		*glib.Object
	}
	m := &monitor{Object: obj}
	return (*gdk.Monitor)(unsafe.Pointer(m))
}
