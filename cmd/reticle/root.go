package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/reticle/internal/cache"
	"github.com/jmylchreest/reticle/internal/config"
	"github.com/jmylchreest/reticle/internal/display"
	"github.com/jmylchreest/reticle/internal/params"
	"github.com/jmylchreest/reticle/internal/pixel"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		cacheFile  string
	}
	logger *slog.Logger
)

// runDisplay shows the overlay and blocks until it closes.
var runDisplay = display.Run

var overlayOpts struct {
	targetX int
	targetY int
	opacity float64
	watch   bool
}

// rootCmd shows the overlay when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "reticle <image>",
	Short: "Crosshair overlay for Wayland compositors",
	Long: `reticle draws an image as a click-through overlay centred on the first
output of a Wayland compositor that supports the layer-shell protocol.

The pixel at (--target-x, --target-y) of the image is placed at the centre
of the screen. Target and opacity are remembered per image, keyed by the
image content, and reused the next time the same image is shown.

Examples:
  # Show a crosshair, centring its middle pixel
  reticle ~/crosshairs/dot.png

  # Centre pixel (12, 40) at 60% opacity
  reticle ~/crosshairs/scope.gif -x 12 -y 40 -o 0.6`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runOverlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/reticle/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.cacheFile, "cache-file", "",
		"Path to parameter cache (default: ~/.cache/reticle/cache)")

	rootCmd.Flags().IntVarP(&overlayOpts.targetX, "target-x", "x", 0,
		"X coordinate of the image pixel to centre")
	rootCmd.Flags().IntVarP(&overlayOpts.targetY, "target-y", "y", 0,
		"Y coordinate of the image pixel to centre")
	rootCmd.Flags().Float64VarP(&overlayOpts.opacity, "opacity", "o", 1,
		"Opacity from 0 to 1")
	rootCmd.Flags().BoolVar(&overlayOpts.watch, "watch", false,
		"Reload the image when the file changes (default from config)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// cachePath returns the cache file in effect.
func cachePath() string {
	if globalOpts.cacheFile != "" {
		return globalOpts.cacheFile
	}
	return cfg.CachePath()
}

// overrides collects the overlay flags that were given explicitly.
func overrides(cmd *cobra.Command) params.Overrides {
	var o params.Overrides
	if cmd.Flags().Changed("target-x") {
		o.TargetX = &overlayOpts.targetX
	}
	if cmd.Flags().Changed("target-y") {
		o.TargetY = &overlayOpts.targetY
	}
	if cmd.Flags().Changed("opacity") {
		o.Opacity = &overlayOpts.opacity
	}
	return o
}

func runOverlay(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	ov := overrides(cmd)
	if err := ov.Validate(); err != nil {
		return err
	}

	hash, err := cache.HashFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to hash image: %w", err)
	}

	path := cachePath()
	paramCache := cache.Load(path)

	var cached *cache.CachedParams
	if p, ok := paramCache.Lookup(hash); ok {
		cached = &p
		logger.Debug("using cached parameters", "hash", hash, "target_x", p.TargetX, "target_y", p.TargetY, "opacity", p.Opacity)
	}

	opacity := params.ResolveOpacity(ov, cached, cfg.Overlay.DefaultOpacity)

	img, err := pixel.Load(imagePath, opacity)
	if err != nil {
		return err
	}

	resolved := params.Resolve(ov, cached, img.Width, img.Height, cfg.Overlay.DefaultOpacity)

	readable := imagePath
	if abs, err := filepath.Abs(imagePath); err == nil {
		readable = abs
	}
	paramCache.Upsert(hash, resolved.Cached(readable, time.Now()))
	if err := paramCache.Save(path); err != nil {
		logger.Warn("failed to save parameter cache", "error", err)
	}

	watchEnabled := cfg.Watch.Enabled
	if cmd.Flags().Changed("watch") {
		watchEnabled = overlayOpts.watch
	}

	opts := display.Options{
		Image:          img,
		TargetX:        resolved.TargetX,
		TargetY:        resolved.TargetY,
		Namespace:      cfg.Overlay.Namespace,
		Layer:          cfg.Overlay.Layer,
		FallbackWidth:  cfg.Output.FallbackWidth,
		FallbackHeight: cfg.Output.FallbackHeight,
		Opacity:        resolved.Opacity,
		Logger:         logger,
	}
	if watchEnabled {
		opts.WatchPath = imagePath
		opts.WatchDebounce = cfg.Watch.Debounce.Duration()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("showing overlay",
		"image", imagePath,
		"width", img.Width,
		"height", img.Height,
		"target_x", resolved.TargetX,
		"target_y", resolved.TargetY,
		"opacity", resolved.Opacity,
	)
	return runDisplay(ctx, opts)
}
