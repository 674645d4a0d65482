package arena

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/histream/errors"
	"github.com/wippyai/histream/internal/layout"
)

// dirtyAllocator hands out blocks filled with 0xAA and records every call.
type dirtyAllocator struct {
	allocs   int
	frees    int
	failFrom int // 1-based allocation that starts failing; 0 never fails
	sizes    []uint32
	aligns   []uint32
}

var errInjected = stderrors.New("injected failure")

func (d *dirtyAllocator) Alloc(size, align uint32) ([]byte, error) {
	d.allocs++
	if d.failFrom > 0 && d.allocs >= d.failFrom {
		return nil, errInjected
	}
	d.sizes = append(d.sizes, size)
	d.aligns = append(d.aligns, align)
	b, err := HeapAllocator{}.Alloc(size, align)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] = 0xAA
	}
	return b, nil
}

func (d *dirtyAllocator) Free([]byte) { d.frees++ }

func TestReserveAlignsAndGrows(t *testing.T) {
	alloc := &dirtyAllocator{}
	a := New(alloc, 64, nil)

	off, err := a.Reserve(3, 1)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if off != 0 {
		t.Errorf("first offset: got %d, want 0", off)
	}

	off, err = a.Reserve(8, 8)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if off != 8 {
		t.Errorf("aligned offset: got %d, want 8", off)
	}
	if a.Len() != 16 {
		t.Errorf("len: got %d, want 16", a.Len())
	}
	if a.Cap() != 64 {
		t.Errorf("cap: got %d, want 64", a.Cap())
	}

	// Crossing the page boundary forces a second block.
	if _, err := a.Reserve(100, 4); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if a.Cap() != 128 {
		t.Errorf("cap after growth: got %d, want 128", a.Cap())
	}
	if alloc.allocs != 2 || alloc.frees != 1 {
		t.Errorf("allocs/frees: got %d/%d, want 2/1", alloc.allocs, alloc.frees)
	}
	for i, al := range alloc.aligns {
		if al != BlockAlign {
			t.Errorf("alloc %d align: got %d, want %d", i, al, BlockAlign)
		}
	}
}

func TestZeroTailAcrossGrowth(t *testing.T) {
	a := New(&dirtyAllocator{}, 32, nil)

	off, err := a.Reserve(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	copy(a.Slice(off, 4), []byte{1, 2, 3, 4})

	for i := 0; i < 10; i++ {
		if _, err := a.Reserve(13, 1); err != nil {
			t.Fatal(err)
		}
		full := a.buf
		for j := a.Len(); j < uint32(len(full)); j++ {
			if full[j] != 0 {
				t.Fatalf("byte %d past used length is %#x after growth %d", j, full[j], i)
			}
		}
	}

	got := a.Bytes()[:4]
	if got[0] != 1 || got[3] != 4 {
		t.Errorf("existing bytes not preserved: % x", got)
	}
	for _, b := range a.Bytes()[4:] {
		if b != 0 {
			t.Fatalf("reserved bytes must be zero, found %#x", b)
		}
	}
}

func TestReserveAllocatorFailure(t *testing.T) {
	alloc := &dirtyAllocator{failFrom: 2}
	a := New(alloc, 16, nil)

	if _, err := a.Reserve(16, 1); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	_, err := a.Reserve(1, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrNoMem) {
		t.Errorf("got %v, want no_mem", err)
	}
	if !errors.Is(err, errInjected) {
		t.Error("allocator error should be the cause")
	}
	if a.Len() != 16 {
		t.Errorf("failed reserve changed length to %d", a.Len())
	}
}

func TestReserveTooLarge(t *testing.T) {
	a := New(&dirtyAllocator{}, 0, nil)
	if _, err := a.Reserve(8, 1); err != nil {
		t.Fatal(err)
	}
	_, err := a.Reserve(layout.MaxStreamSize, 1)
	if !errors.Is(err, errors.ErrDataOverflow) {
		t.Errorf("got %v, want data_overflow", err)
	}
}

func TestTakeAndRelease(t *testing.T) {
	alloc := &dirtyAllocator{}
	a := New(alloc, 0, nil)
	if _, err := a.Reserve(10, 1); err != nil {
		t.Fatal(err)
	}

	b := a.Take()
	if len(b) != 10 {
		t.Errorf("taken length: got %d, want 10", len(b))
	}
	if cap(b) != DefaultPageSize {
		t.Errorf("taken capacity: got %d, want %d", cap(b), DefaultPageSize)
	}
	if a.Len() != 0 || a.Cap() != 0 {
		t.Error("arena should be empty after Take")
	}

	a.Release()
	if alloc.frees != 0 {
		t.Errorf("release after take freed %d blocks", alloc.frees)
	}

	if _, err := a.Reserve(1, 1); err != nil {
		t.Fatal(err)
	}
	a.Release()
	if alloc.frees != 1 {
		t.Errorf("frees: got %d, want 1", alloc.frees)
	}
}

func TestHeapAllocator(t *testing.T) {
	for _, align := range []uint32{1, 2, 4, 8, 16, 32, 64} {
		for _, size := range []uint32{0, 1, 7, 100} {
			b, err := HeapAllocator{}.Alloc(size, align)
			if err != nil {
				t.Fatalf("Alloc(%d, %d): %v", size, align, err)
			}
			if len(b) != int(size) || cap(b) != int(size) {
				t.Errorf("Alloc(%d, %d): len/cap %d/%d", size, align, len(b), cap(b))
			}
			if !layout.Aligned(b, align) {
				t.Errorf("Alloc(%d, %d) is not aligned", size, align)
			}
		}
	}
	if _, err := (HeapAllocator{}).Alloc(8, 3); err == nil {
		t.Error("alignment 3 should be rejected")
	}
}

func TestLimitAllocator(t *testing.T) {
	l := &LimitAllocator{Limit: 100}

	b1, err := l.Alloc(60, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Alloc(50, 8); !stderrors.Is(err, ErrLimitExceeded) {
		t.Fatalf("got %v, want ErrLimitExceeded", err)
	}
	l.Free(b1)
	if l.InUse() != 0 {
		t.Errorf("in use after free: got %d", l.InUse())
	}
	if _, err := l.Alloc(50, 8); err != nil {
		t.Errorf("alloc after free: %v", err)
	}
	if l.Peak() != 60 {
		t.Errorf("peak: got %d, want 60", l.Peak())
	}
}

func TestArenaWithLimitAllocator(t *testing.T) {
	l := &LimitAllocator{Limit: 256}
	a := New(l, 128, nil)

	if _, err := a.Reserve(100, 1); err != nil {
		t.Fatal(err)
	}
	// Growing needs the old and the new block live at once.
	_, err := a.Reserve(100, 1)
	if !errors.Is(err, errors.ErrNoMem) {
		t.Fatalf("got %v, want no_mem", err)
	}
	if !stderrors.Is(err, ErrLimitExceeded) {
		t.Error("limit error should be the cause")
	}
}

func TestAligned(t *testing.T) {
	block, _ := HeapAllocator{}.Alloc(65, BlockAlign)
	for i := range block {
		block[i] = byte(i)
	}

	if got := Aligned(block[:64]); &got[0] != &block[0] {
		t.Error("aligned input should be returned as is")
	}

	got := Aligned(block[1:])
	if !layout.Aligned(got, BlockAlign) {
		t.Error("copy is not aligned")
	}
	if len(got) != 64 || got[0] != 1 || got[63] != 64 {
		t.Errorf("copy content mismatch: len %d", len(got))
	}
}
