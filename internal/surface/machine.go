package surface

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmylchreest/reticle/internal/animation"
	"github.com/jmylchreest/reticle/internal/pixel"
	"github.com/jmylchreest/reticle/internal/shmpool"
)

// State is the lifecycle state of the surface.
type State int

const (
	StateAwaitingFirstConfigure State = iota
	StateConfigured
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAwaitingFirstConfigure:
		return "awaiting-first-configure"
	case StateConfigured:
		return "configured"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Placement records whether anchoring margins have been applied yet.
// Output geometry is not available when the surface is created, so the
// surface is first committed unpositioned and positioned once the output
// size arrives.
type Placement int

const (
	Unpositioned Placement = iota
	Positioned
)

func (p Placement) String() string {
	if p == Positioned {
		return "positioned"
	}
	return "unpositioned"
}

// Geometry is the current surface size and the image pixel kept at the
// centre of the output.
type Geometry struct {
	Width   int
	Height  int
	TargetX int
	TargetY int
}

// Margins are the offsets from the top-left anchor.
type Margins struct {
	Top  int
	Left int
}

// Options configures a Machine.
type Options struct {
	Layer   Layer
	Output  OutputSource
	Pool    *shmpool.Pool
	Image   *pixel.Image
	TargetX int
	TargetY int
	Clock   animation.Clock
	Logger  *slog.Logger
}

// Machine drives the surface through configure, redraw and close.
type Machine struct {
	layer  Layer
	output OutputSource
	pool   *shmpool.Pool
	image  *pixel.Image
	clock  animation.Clock
	logger *slog.Logger

	state     State
	placement Placement
	geometry  Geometry
	margins   Margins

	presented int
	dropped   int
}

// NewMachine creates a machine for a surface initially sized to the image.
func NewMachine(opts Options) *Machine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Machine{
		layer:  opts.Layer,
		output: opts.Output,
		pool:   opts.Pool,
		image:  opts.Image,
		clock:  opts.Clock,
		logger: opts.Logger,
		geometry: Geometry{
			Width:   opts.Image.Width,
			Height:  opts.Image.Height,
			TargetX: opts.TargetX,
			TargetY: opts.TargetY,
		},
	}
}

// State returns the lifecycle state.
func (m *Machine) State() State { return m.state }

// Placement returns whether margins have been applied.
func (m *Machine) Placement() Placement { return m.placement }

// Geometry returns the current surface geometry.
func (m *Machine) Geometry() Geometry { return m.geometry }

// Margins returns the last applied margins.
func (m *Machine) Margins() Margins { return m.margins }

// Closed reports whether the surface reached its terminal state.
func (m *Machine) Closed() bool { return m.state == StateClosed }

// Presented returns the number of frames successfully presented.
func (m *Machine) Presented() int { return m.presented }

// Dropped returns the number of frames skipped because of buffer errors.
func (m *Machine) Dropped() int { return m.dropped }

// HandleEvent routes one compositor event to its transition. Events after
// close are ignored.
func (m *Machine) HandleEvent(ev Event) {
	if m.state == StateClosed {
		m.logger.Debug("ignoring event on closed surface", "event", fmt.Sprintf("%T", ev))
		return
	}

	switch e := ev.(type) {
	case ConfigureEvent:
		m.configure(e)
	case FrameReadyEvent:
		m.frameReady()
	case OutputInfoEvent:
		m.outputChanged(e)
	case ImageReplacedEvent:
		m.replaceImage(e)
	case ClosedEvent:
		m.logger.Info("surface closed by compositor")
		m.state = StateClosed
	default:
		m.logger.Warn("unhandled surface event", "event", fmt.Sprintf("%T", ev))
	}
}

func (m *Machine) configure(e ConfigureEvent) {
	newW, newH := e.Width, e.Height
	if newW == 0 {
		newW = m.geometry.Width
	}
	if newH == 0 {
		newH = m.geometry.Height
	}

	previous := m.geometry.Width * m.geometry.Height * 4
	if err := m.pool.EnsureCapacity(newW*newH*4, previous); err != nil {
		m.logger.Error("failed to resize shm pool", "error", err)
	}

	sizeChanged := newW != m.geometry.Width || newH != m.geometry.Height
	m.geometry.Width = newW
	m.geometry.Height = newH

	m.reposition()

	first := m.state == StateAwaitingFirstConfigure
	m.state = StateConfigured

	m.logger.Debug("surface configured",
		"width", newW,
		"height", newH,
		"first", first,
		"size_changed", sizeChanged,
		"placement", m.placement,
	)

	if first || sizeChanged {
		if m.placement == Unpositioned {
			// Commit so the surface maps at its default placement.
			m.layer.Commit()
		}
		m.draw()
	}
}

// reposition anchors the surface top-left and offsets it so the target
// pixel lands at the centre of the output. It reports whether an output
// was known.
func (m *Machine) reposition() bool {
	if m.output == nil {
		return false
	}
	outW, outH, ok := m.output.LogicalSize()
	if !ok {
		return false
	}

	margins := Margins{
		Top:  outH/2 - m.geometry.TargetY,
		Left: outW/2 - m.geometry.TargetX,
	}

	m.layer.SetAnchor(EdgeTop | EdgeLeft)
	m.layer.SetMargins(margins.Top, 0, 0, margins.Left)
	m.margins = margins
	m.placement = Positioned
	m.layer.Commit()

	m.logger.Debug("surface positioned",
		"output_width", outW,
		"output_height", outH,
		"margin_top", margins.Top,
		"margin_left", margins.Left,
	)
	return true
}

func (m *Machine) outputChanged(e OutputInfoEvent) {
	m.logger.Debug("output info", "width", e.Width, "height", e.Height)
	if m.state != StateConfigured {
		// Positioning happens on the first configure.
		return
	}
	m.reposition()
}

func (m *Machine) frameReady() {
	if !m.image.Animated() {
		return
	}

	if m.image.Animation.OnFrameReady(m.clock()) {
		m.logger.Debug("animation advanced", "frame", m.image.Animation.Current)
	}
	m.draw()
}

func (m *Machine) replaceImage(e ImageReplacedEvent) {
	if e.Image == nil {
		return
	}

	wasAnimated := m.image.Animated()
	m.image = e.Image
	m.logger.Info("image replaced",
		"width", e.Image.Width,
		"height", e.Image.Height,
		"frames", e.Image.FrameCount(),
	)

	if m.state != StateConfigured {
		return
	}

	if e.Image.Width != m.geometry.Width || e.Image.Height != m.geometry.Height {
		// The compositor answers with a configure that triggers the redraw.
		m.layer.SetSize(e.Image.Width, e.Image.Height)
		m.layer.Commit()
		return
	}

	// An animation already running has a frame callback pending; drawing
	// here would request a second one.
	if wasAnimated && e.Image.Animated() {
		return
	}
	m.draw()
}

// draw presents the current frame, logging and counting failures. The
// machine stays configured either way.
func (m *Machine) draw() {
	if err := m.redraw(); err != nil {
		m.dropped++
		m.logger.Error("failed to draw frame", "error", err)
		return
	}
	m.presented++
}

func (m *Machine) redraw() error {
	width := m.geometry.Width
	height := m.geometry.Height
	stride := width * 4

	buf, err := m.pool.Acquire(width, height, stride, shmpool.FormatARGB8888)
	if err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}
	defer buf.Release()

	// Clear to transparent, then copy the image span. A surface larger
	// than the image leaves the remainder transparent.
	clear(buf.Data)
	copy(buf.Data, m.image.CurrentData())

	m.layer.Damage(0, 0, width, height)

	if err := m.layer.Attach(buf); err != nil {
		return fmt.Errorf("activate buffer: %w", err)
	}

	if m.image.Animated() {
		m.layer.RequestFrame()
	}
	m.layer.Commit()
	return nil
}
