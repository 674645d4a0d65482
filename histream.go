package histream

// Allocator provides the memory blocks a stream writer builds into.
//
// Alloc must return a block of exactly size bytes whose first byte is
// aligned on align, or an error when the request cannot be satisfied.
// Free releases a block previously returned by the same Allocator.
type Allocator interface {
	Alloc(size, align uint32) ([]byte, error)
	Free(buf []byte)
}
