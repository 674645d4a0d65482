package arena

import (
	"github.com/wippyai/histream"
	"github.com/wippyai/histream/errors"
	"github.com/wippyai/histream/internal/layout"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the growth granularity of an arena.
	DefaultPageSize = 16 * 1024
	// BlockAlign is the alignment requested for every arena block. It covers
	// the largest payload alignment the format allows.
	BlockAlign = layout.MaxDataAlign
)

// Arena is a single growable, zero-initialized byte buffer.
// It is not safe for concurrent use.
type Arena struct {
	alloc    histream.Allocator
	logger   *zap.Logger
	buf      []byte // whole block; len(buf) is the capacity
	used     uint32
	pageSize uint32
}

// New creates an empty arena. A nil allocator selects HeapAllocator, a zero
// page size selects DefaultPageSize and a nil logger discards output.
func New(alloc histream.Allocator, pageSize uint32, logger *zap.Logger) *Arena {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arena{alloc: alloc, logger: logger, pageSize: pageSize}
}

// Reserve rounds the used length up to align, appends n zero bytes and
// returns the offset of the first one. The backing block may move; slices
// obtained before the call must not be used afterwards.
func (a *Arena) Reserve(n, align uint32) (uint32, error) {
	start := layout.AlignTo64(uint64(a.used), uint64(align))
	need := start + uint64(n)
	if need > layout.MaxStreamSize {
		return 0, errors.New(errors.PhaseAlloc, errors.KindDataOverflow).
			Value(need).
			Detail("stream size %d exceeds %d bytes", need, uint64(layout.MaxStreamSize)).
			Build()
	}
	if need > uint64(len(a.buf)) {
		if err := a.grow(need); err != nil {
			return 0, err
		}
	}
	a.used = uint32(need)
	return uint32(start), nil
}

func (a *Arena) grow(need uint64) error {
	newCap := layout.AlignTo64(need, uint64(a.pageSize))
	if newCap > layout.MaxStreamSize {
		newCap = need
	}
	nb, err := a.alloc.Alloc(uint32(newCap), BlockAlign)
	if err != nil {
		return errors.AllocationFailed(newCap, BlockAlign, err)
	}
	if uint64(len(nb)) < newCap {
		return errors.New(errors.PhaseAlloc, errors.KindNoMem).
			Value(newCap).
			Detail("allocator returned %d bytes, want %d", len(nb), newCap).
			Build()
	}
	nb = nb[:newCap]
	copy(nb, a.buf[:a.used])
	clear(nb[a.used:])

	a.logger.Debug("arena grown",
		zap.Int("old_cap", len(a.buf)),
		zap.Uint64("new_cap", newCap),
		zap.Uint32("used", a.used))

	if a.buf != nil {
		a.alloc.Free(a.buf)
	}
	a.buf = nb
	return nil
}

// Bytes returns the used portion of the buffer.
func (a *Arena) Bytes() []byte {
	return a.buf[:a.used]
}

// Slice returns n bytes starting at off. The range must lie within the used
// portion.
func (a *Arena) Slice(off, n uint32) []byte {
	return a.buf[off : off+n : off+n]
}

// Len returns the number of bytes in use.
func (a *Arena) Len() uint32 { return a.used }

// Cap returns the size of the current block.
func (a *Arena) Cap() uint32 { return uint32(len(a.buf)) }

// Allocator returns the allocator backing the arena.
func (a *Arena) Allocator() histream.Allocator { return a.alloc }

// Take hands the used portion of the buffer to the caller and leaves the
// arena empty. The caller owns the block and releases it with the same
// allocator's Free. The returned slice keeps the block's full capacity.
func (a *Arena) Take() []byte {
	b := a.buf[:a.used]
	a.buf = nil
	a.used = 0
	return b
}

// Release frees the block and leaves the arena empty.
func (a *Arena) Release() {
	if a.buf != nil {
		a.alloc.Free(a.buf)
	}
	a.buf = nil
	a.used = 0
}
