package shmpool

// HeapAllocator allocates segments on the Go heap. It is used where SysV
// shared memory is unavailable and in tests.
type HeapAllocator struct{}

type heapSegment struct {
	data []byte
}

// Allocate returns a zeroed heap segment.
func (HeapAllocator) Allocate(size int) (Segment, error) {
	return &heapSegment{data: make([]byte, size)}, nil
}

func (s *heapSegment) Bytes() []byte { return s.data }

func (s *heapSegment) Close() error {
	s.data = nil
	return nil
}
