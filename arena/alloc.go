package arena

import (
	stderrors "errors"
	"fmt"
	"unsafe"

	"github.com/wippyai/histream"
	"github.com/wippyai/histream/internal/layout"
)

// ErrLimitExceeded is returned by LimitAllocator when a request would go
// over its budget.
var ErrLimitExceeded = stderrors.New("arena: allocation limit exceeded")

// HeapAllocator allocates from the Go heap. Blocks are aligned by
// over-allocating and are reclaimed by the garbage collector, so Free is a
// no-op.
type HeapAllocator struct{}

var _ histream.Allocator = HeapAllocator{}

func (HeapAllocator) Alloc(size, align uint32) ([]byte, error) {
	if align == 0 {
		align = 1
	}
	if !layout.IsPowerOfTwo(align) {
		return nil, fmt.Errorf("arena: alignment %d is not a power of two", align)
	}
	raw := make([]byte, uint64(size)+uint64(align)-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((uintptr(align) - base&uintptr(align-1)) & uintptr(align-1))
	end := off + int(size)
	return raw[off:end:end], nil
}

func (HeapAllocator) Free([]byte) {}

// LimitAllocator enforces a byte budget on top of another allocator. Freed
// blocks return their capacity to the budget.
type LimitAllocator struct {
	// Allocator serves the requests; nil selects HeapAllocator.
	Allocator histream.Allocator
	// Limit is the largest number of bytes live at once.
	Limit uint64

	inUse uint64
	peak  uint64
}

var _ histream.Allocator = (*LimitAllocator)(nil)

func (l *LimitAllocator) Alloc(size, align uint32) ([]byte, error) {
	if l.inUse+uint64(size) > l.Limit {
		return nil, fmt.Errorf("%w: %d bytes in use, %d requested, limit %d",
			ErrLimitExceeded, l.inUse, size, l.Limit)
	}
	b, err := l.next().Alloc(size, align)
	if err != nil {
		return nil, err
	}
	l.inUse += uint64(cap(b))
	l.peak = max(l.peak, l.inUse)
	return b, nil
}

func (l *LimitAllocator) Free(b []byte) {
	l.inUse -= min(l.inUse, uint64(cap(b)))
	l.next().Free(b)
}

// InUse returns the bytes currently allocated.
func (l *LimitAllocator) InUse() uint64 { return l.inUse }

// Peak returns the largest InUse value observed.
func (l *LimitAllocator) Peak() uint64 { return l.peak }

func (l *LimitAllocator) next() histream.Allocator {
	if l.Allocator == nil {
		return HeapAllocator{}
	}
	return l.Allocator
}

// Aligned returns b itself when it already starts on a BlockAlign boundary
// and a copy in a fresh aligned block otherwise.
func Aligned(b []byte) []byte {
	if layout.Aligned(b, BlockAlign) {
		return b
	}
	nb, _ := HeapAllocator{}.Alloc(uint32(len(b)), BlockAlign)
	copy(nb, b)
	return nb
}
