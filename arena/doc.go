// Package arena provides the growable buffer a stream writer builds into.
//
// An Arena owns exactly one block obtained from a histream.Allocator. Space
// is handed out as offsets into that block, never as pointers, because the
// block moves whenever it has to grow. Every byte past the used length is
// zero, so a reservation can be filled later or left zeroed.
//
// Allocators:
//
//	HeapAllocator   Go heap blocks aligned by over-allocation
//	LimitAllocator  wraps another allocator with a byte budget
//
// Aligned copies an arbitrary buffer (for example one read from a file)
// into an aligned block so readers can return zero-copy typed views.
package arena
