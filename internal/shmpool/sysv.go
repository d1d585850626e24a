//go:build linux

package shmpool

import (
	"fmt"

	"github.com/gen2brain/shm"
)

// SysVAllocator allocates System V shared memory segments. Each segment
// is marked for removal as soon as it is attached, so the kernel frees it
// when the process detaches or exits.
type SysVAllocator struct {
	Perm int // Permission bits, 0600 when zero
}

type sysvSegment struct {
	id   int
	data []byte
}

// DefaultAllocator returns the preferred allocator for this platform.
func DefaultAllocator() Allocator {
	return SysVAllocator{}
}

// Allocate creates and attaches a new private segment of size bytes.
func (a SysVAllocator) Allocate(size int) (Segment, error) {
	perm := a.Perm
	if perm == 0 {
		perm = 0600
	}

	id, err := shm.Get(shm.IPC_PRIVATE, size, shm.IPC_CREAT|perm)
	if err != nil {
		return nil, fmt.Errorf("shmget: %w", err)
	}

	data, err := shm.At(id, 0, 0)
	if err != nil {
		_ = shm.Rm(id)
		return nil, fmt.Errorf("shmat: %w", err)
	}

	if err := shm.Rm(id); err != nil {
		_ = shm.Dt(data)
		return nil, fmt.Errorf("shmctl rmid: %w", err)
	}

	return &sysvSegment{id: id, data: data[:size]}, nil
}

func (s *sysvSegment) Bytes() []byte { return s.data }

func (s *sysvSegment) Close() error {
	if s.data == nil {
		return nil
	}
	err := shm.Dt(s.data)
	s.data = nil
	return err
}
