package animation

import (
	"errors"
	"time"
)

// ErrNoFrames is returned when an animation is created without frames.
var ErrNoFrames = errors.New("animation has no frames")

// Frame is a single premultiplied animation frame.
type Frame struct {
	Data  []byte        // BGRA, premultiplied, width*height*4 bytes
	Delay time.Duration // How long the frame stays on screen
}

// Clock returns the current wall-clock time.
type Clock func() time.Time

// State is the run-time playback state of an animated image.
// Only OnFrameReady mutates it.
type State struct {
	Frames      []Frame
	Current     int
	LastAdvance time.Time
}

// NewState creates playback state positioned on the first frame.
func NewState(frames []Frame, now time.Time) (*State, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return &State{
		Frames:      frames,
		Current:     0,
		LastAdvance: now,
	}, nil
}

// Frame returns the frame that should currently be displayed.
func (s *State) Frame() Frame {
	return s.Frames[s.Current]
}

// Len returns the number of frames.
func (s *State) Len() int {
	return len(s.Frames)
}

// OnFrameReady advances to the next frame if the current one has been
// shown for at least its delay. It reports whether the index changed.
// Callers redraw regardless of the result.
func (s *State) OnFrameReady(now time.Time) bool {
	elapsed := now.Sub(s.LastAdvance)
	if elapsed < s.Frames[s.Current].Delay {
		return false
	}

	s.Current = (s.Current + 1) % len(s.Frames)
	s.LastAdvance = now
	return true
}

// TotalDuration returns the length of one full loop.
func (s *State) TotalDuration() time.Duration {
	var total time.Duration
	for _, f := range s.Frames {
		total += f.Delay
	}
	return total
}
