// Package params decides the overlay parameters for an image from command
// line overrides, the parameter cache and configured defaults.
package params

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jmylchreest/reticle/internal/cache"
)

// ErrOpacityRange is returned when an opacity override is outside [0, 1].
var ErrOpacityRange = errors.New("opacity must be between 0 and 1")

// ErrNegativeTarget is returned when a target coordinate override is negative.
var ErrNegativeTarget = errors.New("target coordinates must not be negative")

// Overrides holds values given explicitly on the command line. A nil field
// was not given.
type Overrides struct {
	TargetX *int
	TargetY *int
	Opacity *float64
}

// Validate checks override ranges.
func (o Overrides) Validate() error {
	if o.Opacity != nil {
		op := *o.Opacity
		if math.IsNaN(op) || op < 0 || op > 1 {
			return fmt.Errorf("%w: %v", ErrOpacityRange, op)
		}
	}
	if o.TargetX != nil && *o.TargetX < 0 {
		return fmt.Errorf("%w: x=%d", ErrNegativeTarget, *o.TargetX)
	}
	if o.TargetY != nil && *o.TargetY < 0 {
		return fmt.Errorf("%w: y=%d", ErrNegativeTarget, *o.TargetY)
	}
	return nil
}

// Params are the effective overlay parameters.
type Params struct {
	TargetX int
	TargetY int
	Opacity float64
}

// ResolveOpacity picks the opacity: override, then cached, then def.
// Decoding needs the opacity before the image size is known, so it is
// resolved separately from the target.
func ResolveOpacity(o Overrides, cached *cache.CachedParams, def float64) float64 {
	switch {
	case o.Opacity != nil:
		return *o.Opacity
	case cached != nil:
		return cached.Opacity
	default:
		return def
	}
}

// Resolve returns the full parameter set for an image of imgW x imgH.
// Each target coordinate falls back to the image center.
func Resolve(o Overrides, cached *cache.CachedParams, imgW, imgH int, defaultOpacity float64) Params {
	p := Params{
		TargetX: imgW / 2,
		TargetY: imgH / 2,
		Opacity: ResolveOpacity(o, cached, defaultOpacity),
	}

	if cached != nil {
		p.TargetX = cached.TargetX
		p.TargetY = cached.TargetY
	}
	if o.TargetX != nil {
		p.TargetX = *o.TargetX
	}
	if o.TargetY != nil {
		p.TargetY = *o.TargetY
	}
	return p
}

// Cached converts p into a cache record for the image at path.
func (p Params) Cached(path string, now time.Time) cache.CachedParams {
	return cache.CachedParams{
		PathForReadability: path,
		TargetX:            p.TargetX,
		TargetY:            p.TargetY,
		Opacity:            p.Opacity,
		UpdatedAt:          now,
	}
}
