// Package shmpool manages the shared memory region that backs presented
// frames. The region only ever grows; one buffer is in flight at a time.
package shmpool

import (
	"fmt"
	"log/slog"
)

// Format is a pixel format code understood by the compositor.
type Format uint32

// FormatARGB8888 is 32-bit ARGB stored little-endian (B, G, R, A in memory)
// with premultiplied alpha.
const FormatARGB8888 Format = 0

func (f Format) String() string {
	if f == FormatARGB8888 {
		return "argb8888"
	}
	return fmt.Sprintf("format(%d)", uint32(f))
}

// Segment is one backing allocation.
type Segment interface {
	// Bytes returns the writable mapping of the whole segment.
	Bytes() []byte
	// Close releases the allocation.
	Close() error
}

// Allocator creates backing segments.
type Allocator interface {
	Allocate(size int) (Segment, error)
}

// BufferError reports a failure to create or size a buffer. It is never
// fatal: the frame that needed the buffer is dropped.
type BufferError struct {
	Op   string
	Size int
	Err  error
}

func (e *BufferError) Error() string {
	msg := fmt.Sprintf("shm pool %s (%d bytes)", e.Op, e.Size)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *BufferError) Unwrap() error {
	return e.Err
}

// Buffer is a writable view into the pool, sized for one frame.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Format Format
	Data   []byte

	pool *Pool
}

// Release marks the buffer as no longer in flight.
func (b *Buffer) Release() {
	if b.pool != nil && b.pool.inFlight == b {
		b.pool.inFlight = nil
	}
}

// Pool owns a single growable shared memory segment.
type Pool struct {
	alloc    Allocator
	seg      Segment
	capacity int
	inFlight *Buffer
	logger   *slog.Logger
}

// New creates a pool with an initial capacity of size bytes.
func New(alloc Allocator, size int, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		return nil, &BufferError{Op: "create", Size: size, Err: fmt.Errorf("size must be positive")}
	}

	seg, err := alloc.Allocate(size)
	if err != nil {
		return nil, &BufferError{Op: "create", Size: size, Err: err}
	}

	return &Pool{
		alloc:    alloc,
		seg:      seg,
		capacity: size,
		logger:   logger,
	}, nil
}

// Capacity returns the size of the backing segment in bytes.
func (p *Pool) Capacity() int {
	return p.capacity
}

// EnsureCapacity grows the backing segment when needed exceeds the current
// capacity. The new size is max(needed, previous), where previous is the
// byte size of the surface before the resize that triggered the call.
// Old contents are discarded.
func (p *Pool) EnsureCapacity(needed, previous int) error {
	if needed <= p.capacity {
		return nil
	}

	target := max(needed, previous)
	seg, err := p.alloc.Allocate(target)
	if err != nil {
		return &BufferError{Op: "grow", Size: target, Err: err}
	}

	old := p.seg
	p.seg = seg
	p.capacity = target
	p.inFlight = nil

	if old != nil {
		if err := old.Close(); err != nil {
			p.logger.Warn("failed to release old shm segment", "error", err)
		}
	}

	p.logger.Debug("shm pool grown", "capacity", target)
	return nil
}

// Acquire returns a buffer for a frame of the given dimensions, growing the
// pool first if required.
func (p *Pool) Acquire(width, height, stride int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 || stride < width*4 {
		return nil, &BufferError{
			Op:   "acquire",
			Size: stride * height,
			Err:  fmt.Errorf("invalid buffer geometry %dx%d stride %d", width, height, stride),
		}
	}

	size := stride * height
	if err := p.EnsureCapacity(size, p.capacity); err != nil {
		return nil, err
	}

	if p.inFlight != nil {
		p.logger.Debug("reusing shm region while previous buffer is in flight")
	}

	buf := &Buffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
		Data:   p.seg.Bytes()[:size],
		pool:   p,
	}
	p.inFlight = buf
	return buf, nil
}

// InFlight reports whether a buffer is currently held for presentation.
func (p *Pool) InFlight() bool {
	return p.inFlight != nil
}

// Close releases the backing segment.
func (p *Pool) Close() error {
	if p.seg == nil {
		return nil
	}
	err := p.seg.Close()
	p.seg = nil
	p.capacity = 0
	p.inFlight = nil
	return err
}
