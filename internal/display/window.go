package display

import (
	"fmt"
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/reticle/internal/config"
	"github.com/jmylchreest/reticle/internal/shmpool"
	"github.com/jmylchreest/reticle/internal/surface"
)

const cssClass = "reticle"

// transparentCSS keeps the toolkit from painting a window background
// under the premultiplied image.
const transparentCSS = `
window.reticle,
window.reticle picture {
	background: transparent;
	box-shadow: none;
}
`

// Window is a click-through layer-shell window that implements
// surface.Layer. All methods must be called on the GTK main loop.
type Window struct {
	window  *gtk.Window
	picture *gtk.Picture
	logger  *slog.Logger

	emit   func(surface.Event)
	tickID uint
	closed bool
}

// WindowOptions configures a new Window.
type WindowOptions struct {
	App       *gtk.Application
	Namespace string
	Layer     string
	Width     int
	Height    int
	Logger    *slog.Logger
}

// NewWindow creates the overlay window without showing it. emit receives
// every compositor event for the surface.
func NewWindow(opts WindowOptions, emit func(surface.Event)) *Window {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	w := &Window{
		window:  gtk.NewWindow(),
		picture: gtk.NewPicture(),
		logger:  opts.Logger,
		emit:    emit,
	}

	w.window.SetApplication(opts.App)
	w.window.SetDecorated(false)
	w.window.SetResizable(false)
	w.window.SetCanFocus(false)
	w.window.SetCanTarget(false)
	w.window.AddCSSClass(cssClass)

	w.picture.SetCanShrink(false)
	w.picture.SetContentFit(gtk.ContentFitFill)
	w.window.SetChild(w.picture)

	layershell.InitForWindow(w.window)
	layershell.SetLayer(w.window, layerFor(opts.Layer))
	layershell.SetExclusiveZone(w.window, -1) // Ignore other surfaces' exclusive zones
	layershell.SetKeyboardMode(w.window, layershell.LayerShellKeyboardModeNone)
	layershell.SetNamespace(w.window, opts.Namespace)

	w.SetSize(opts.Width, opts.Height)
	w.connectSignals()

	return w
}

// layerFor maps a configured layer name to the layer-shell layer.
func layerFor(name string) layershell.Layer {
	if name == config.LayerTop {
		return layershell.LayerShellLayerTop
	}
	return layershell.LayerShellLayerOverlay
}

func (w *Window) connectSignals() {
	w.window.ConnectRealize(func() {
		native := w.window.Surface()
		if native == nil {
			w.logger.Warn("window realized without a surface")
			return
		}
		surf := gdk.BaseSurface(native)

		// An empty input region lets pointer events fall through.
		region, err := cairo.RegionCreate()
		if err != nil {
			w.logger.Warn("failed to create input region", "error", err)
		} else {
			surf.SetInputRegion(region)
		}

		surf.ConnectLayout(func(width, height int) {
			w.emit(surface.ConfigureEvent{Width: width, Height: height})
		})
	})

	w.window.ConnectCloseRequest(func() bool {
		w.markClosed()
		return false
	})

	w.window.ConnectUnmap(func() {
		w.markClosed()
	})
}

func (w *Window) markClosed() {
	if w.closed {
		return
	}
	w.closed = true
	w.emit(surface.ClosedEvent{})
}

// Show maps the window. The first layout after mapping is the initial
// configure.
func (w *Window) Show() {
	w.window.Present()
}

// Close destroys the window.
func (w *Window) Close() {
	w.window.Close()
}

// SetSize implements surface.Layer.
func (w *Window) SetSize(width, height int) {
	w.window.SetDefaultSize(width, height)
	w.window.SetSizeRequest(width, height)
	w.picture.SetSizeRequest(width, height)
}

// SetAnchor implements surface.Layer.
func (w *Window) SetAnchor(edges surface.Edge) {
	layershell.SetAnchor(w.window, layershell.LayerShellEdgeTop, edges.Has(surface.EdgeTop))
	layershell.SetAnchor(w.window, layershell.LayerShellEdgeBottom, edges.Has(surface.EdgeBottom))
	layershell.SetAnchor(w.window, layershell.LayerShellEdgeLeft, edges.Has(surface.EdgeLeft))
	layershell.SetAnchor(w.window, layershell.LayerShellEdgeRight, edges.Has(surface.EdgeRight))
}

// SetMargins implements surface.Layer.
func (w *Window) SetMargins(top, right, bottom, left int) {
	layershell.SetMargin(w.window, layershell.LayerShellEdgeTop, top)
	layershell.SetMargin(w.window, layershell.LayerShellEdgeRight, right)
	layershell.SetMargin(w.window, layershell.LayerShellEdgeBottom, bottom)
	layershell.SetMargin(w.window, layershell.LayerShellEdgeLeft, left)
}

// Commit implements surface.Layer. gtk4-layer-shell commits anchor and
// margin changes itself; pending content is flushed on the next frame.
func (w *Window) Commit() {
	w.window.QueueDraw()
}

// Attach implements surface.Layer. The buffer bytes are copied into a
// memory texture, so the buffer can be reused once Attach returns.
func (w *Window) Attach(buf *shmpool.Buffer) error {
	if buf.Format != shmpool.FormatARGB8888 {
		return fmt.Errorf("unsupported buffer format %s", buf.Format)
	}
	size := buf.Stride * buf.Height
	if len(buf.Data) < size {
		return fmt.Errorf("buffer holds %d bytes, need %d", len(buf.Data), size)
	}

	bytes := glib.NewBytes(buf.Data[:size])
	texture := gdk.NewMemoryTexture(buf.Width, buf.Height, gdk.MemoryB8G8R8A8Premultiplied, bytes, uint(buf.Stride))
	w.picture.SetPaintable(texture)
	return nil
}

// Damage implements surface.Layer. The whole picture is redrawn.
func (w *Window) Damage(x, y, width, height int) {
	w.picture.QueueDraw()
}

// RequestFrame implements surface.Layer with a one-shot tick callback on
// the window's frame clock.
func (w *Window) RequestFrame() {
	if w.tickID != 0 {
		return
	}
	w.tickID = w.window.AddTickCallback(func(gtk.Widgetter, gdk.FrameClocker) bool {
		w.tickID = 0
		w.emit(surface.FrameReadyEvent{})
		return false
	})
}

// installCSS makes overlay windows transparent on display.
func installCSS(display *gdk.Display) {
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(transparentCSS)
	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
