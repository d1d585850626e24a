//go:build !linux

package shmpool

// DefaultAllocator returns the preferred allocator for this platform.
// SysV shared memory is not available here, so frames live on the heap.
func DefaultAllocator() Allocator {
	return HeapAllocator{}
}
