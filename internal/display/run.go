package display

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/jmylchreest/reticle/internal/pixel"
	"github.com/jmylchreest/reticle/internal/shmpool"
	"github.com/jmylchreest/reticle/internal/surface"
	"github.com/jmylchreest/reticle/internal/watch"
)

// AppID is the application identifier registered with GTK.
const AppID = "io.github.jmylchreest.reticle"

// Options configures an overlay run.
type Options struct {
	Image   *pixel.Image
	TargetX int
	TargetY int

	Namespace      string
	Layer          string
	FallbackWidth  int
	FallbackHeight int

	// Allocator backs the buffer pool. Nil uses shmpool.DefaultAllocator.
	Allocator shmpool.Allocator

	// WatchPath, when set, reloads the image whenever the file changes.
	WatchPath     string
	WatchDebounce time.Duration
	Opacity       float64

	Logger *slog.Logger
}

// Run shows the overlay and blocks in the GTK main loop until the surface
// is closed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Allocator == nil {
		opts.Allocator = shmpool.DefaultAllocator()
	}
	logger := opts.Logger

	// Several overlays may run at once, one per image.
	app := adw.NewApplication(AppID, gio.ApplicationNonUnique)

	var (
		runErr  error
		started bool
		window  *Window
		machine *surface.Machine
		pool    *shmpool.Pool
		watcher *watch.FileWatcher
	)

	fail := func(err error) {
		runErr = err
		app.Quit()
	}

	app.ConnectActivate(func() {
		if started {
			return
		}
		started = true

		display := gdk.DisplayGetDefault()
		if display == nil {
			fail(&BindError{Message: "no display available"})
			return
		}
		if !layershell.IsSupported() {
			fail(&BindError{Message: "compositor does not support the layer-shell protocol"})
			return
		}
		installCSS(display)

		var err error
		pool, err = shmpool.New(opts.Allocator, opts.Image.Width*opts.Image.Height*pixel.BytesPerPixel, logger)
		if err != nil {
			fail(fmt.Errorf("create buffer pool: %w", err))
			return
		}

		tracker := NewOutputTracker(display, opts.FallbackWidth, opts.FallbackHeight, logger)

		var dispatch func(surface.Event)
		window = NewWindow(WindowOptions{
			App:       &app.Application,
			Namespace: opts.Namespace,
			Layer:     opts.Layer,
			Width:     opts.Image.Width,
			Height:    opts.Image.Height,
			Logger:    logger,
		}, func(ev surface.Event) { dispatch(ev) })

		machine = surface.NewMachine(surface.Options{
			Layer:   window,
			Output:  tracker,
			Pool:    pool,
			Image:   opts.Image,
			TargetX: opts.TargetX,
			TargetY: opts.TargetY,
			Logger:  logger,
		})

		dispatch = func(ev surface.Event) {
			machine.HandleEvent(ev)
			if machine.Closed() {
				app.Quit()
			}
		}

		tracker.OnChange(func() {
			w, h, ok := tracker.LogicalSize()
			if ok {
				dispatch(surface.OutputInfoEvent{Width: w, Height: h})
			}
		})

		if opts.WatchPath != "" {
			watcher, err = startWatcher(opts, dispatch)
			if err != nil {
				logger.Warn("failed to watch image file", "path", opts.WatchPath, "error", err)
			}
		}

		window.Show()
		logger.Debug("overlay window shown",
			"width", opts.Image.Width,
			"height", opts.Image.Height,
			"frames", opts.Image.FrameCount(),
		)
	})

	app.ConnectShutdown(func() {
		if watcher != nil {
			_ = watcher.Stop()
		}
		if pool != nil {
			if err := pool.Close(); err != nil {
				logger.Warn("failed to release buffer pool", "error", err)
			}
		}
	})

	stop := context.AfterFunc(ctx, func() {
		logger.Info("shutting down", "reason", context.Cause(ctx))
		glib.IdleAdd(func() {
			if window != nil {
				window.Close()
			}
			app.Quit()
		})
	})
	defer stop()

	// GTK must not see the command line flags.
	status := app.Run([]string{os.Args[0]})

	if runErr != nil {
		return runErr
	}
	if status != 0 {
		return fmt.Errorf("application exited with status %d", status)
	}
	return nil
}

// startWatcher reloads the image on change and hands the result to the
// main loop.
func startWatcher(opts Options, dispatch func(surface.Event)) (*watch.FileWatcher, error) {
	logger := opts.Logger
	path := opts.WatchPath

	reload := func() {
		img, err := pixel.Load(path, opts.Opacity)
		if err != nil {
			logger.Warn("failed to reload image", "path", path, "error", err)
			return
		}
		glib.IdleAdd(func() {
			dispatch(surface.ImageReplacedEvent{Image: img})
		})
	}

	watcher, err := watch.New(path, opts.WatchDebounce, reload, logger)
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(); err != nil {
		_ = watcher.Stop()
		return nil, err
	}
	return watcher, nil
}
