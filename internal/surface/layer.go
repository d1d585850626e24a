package surface

import "github.com/jmylchreest/reticle/internal/shmpool"

// Edge is a set of screen edges a layer surface is anchored to.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether e includes edge.
func (e Edge) Has(edge Edge) bool {
	return e&edge != 0
}

// Layer is the presentation side of the compositor client: a single layer
// surface that accepts pooled buffers.
//
//go:generate mockgen -destination=mocks/layer_mock.go -package=mocks github.com/jmylchreest/reticle/internal/surface Layer,OutputSource
type Layer interface {
	// SetSize requests a new surface size from the compositor.
	SetSize(width, height int)

	// SetAnchor anchors the surface to the given edges and releases others.
	SetAnchor(edges Edge)

	// SetMargins sets the distance from each anchored edge.
	SetMargins(top, right, bottom, left int)

	// Commit applies pending surface state.
	Commit()

	// Attach hands a filled buffer to the compositor for the next commit.
	Attach(buf *shmpool.Buffer) error

	// Damage marks a region of the surface as changed.
	Damage(x, y, width, height int)

	// RequestFrame asks for a FrameReadyEvent after the next presentation.
	RequestFrame()
}

// OutputSource exposes the logical size of the output the overlay is
// centred on. Only the first output is ever considered.
type OutputSource interface {
	// LogicalSize returns the output size in logical pixels. ok is false
	// while no output is known.
	LogicalSize() (width, height int, ok bool)
}
