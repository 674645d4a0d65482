package layout

import (
	"math"
	"unsafe"
)

// Fixed header geometry.
const (
	MagicSize          = 8
	StreamHeaderSize   = 16
	NodeHeaderSize     = 20
	AttrHeaderSize     = 4
	AttrHeaderLongSize = 12
	HeaderAlign        = 4
	LayoutElementSize  = 2
	TagSize            = 4
)

// Limits of the encoding.
const (
	// LengthSentinel in a short header's length byte marks a long header.
	LengthSentinel = 255
	// MaxShortOffset is the largest next-attribute distance a short header holds.
	MaxShortOffset = math.MaxUint8
	// MaxDataAlign is the largest alignment a data payload may request.
	MaxDataAlign = 64
	// MaxLayoutElements is the largest number of fields in a record layout.
	MaxLayoutElements = 254
	// MaxAttrSize bounds the encoded size of a single attribute.
	MaxAttrSize = math.MaxUint32 - AttrHeaderLongSize
	// MaxStreamSize bounds the whole buffer; every offset is a uint32.
	MaxStreamSize = math.MaxUint32
)

// AlignTo rounds offset up to the next multiple of align. align must be a
// power of two; 0 leaves offset unchanged.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// AlignTo64 is AlignTo for sizes that may exceed 32 bits before validation.
func AlignTo64(offset, align uint64) uint64 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether x is a non-zero power of two.
func IsPowerOfTwo(x uint32) bool {
	return x != 0 && x&(x-1) == 0
}

// SafeAddU32 returns a+b, or false when the sum overflows.
func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// SafeMulU32 returns a*b, or false when the product overflows.
func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

// Field is one entry of a packed record: Count primitives of Size bytes each.
type Field struct {
	Size  uint32
	Count uint32
}

// Info describes a packed record.
type Info struct {
	Size  uint32
	Align uint32
}

// Record computes the size and minimum alignment of a packed record. Fields
// are laid out back to back; the record alignment is the largest primitive
// size among its fields.
func Record(fields []Field) Info {
	info := Info{Align: 1}
	for _, f := range fields {
		info.Size += f.Size * f.Count
		if f.Size > info.Align {
			info.Align = f.Size
		}
	}
	return info
}

// NativeLittleEndian reports whether the host stores integers little-endian,
// which is the byte order of every histream buffer.
var NativeLittleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// Aligned reports whether the first byte of b sits on an align boundary in
// memory. An empty slice is always aligned.
func Aligned(b []byte, align uint32) bool {
	if len(b) == 0 || align <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))&uintptr(align-1) == 0
}
