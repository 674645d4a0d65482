package stream

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/wippyai/histream/internal/layout"
)

// Number is the set of scalar element types an attribute can carry.
type Number interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

var le = binary.LittleEndian

func sizeOf[T Number]() uint32 {
	var z T
	return uint32(unsafe.Sizeof(z))
}

func putScalar[T Number](b []byte, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[0] = x
	case int8:
		b[0] = uint8(x)
	case uint16:
		le.PutUint16(b, x)
	case int16:
		le.PutUint16(b, uint16(x))
	case uint32:
		le.PutUint32(b, x)
	case int32:
		le.PutUint32(b, uint32(x))
	case uint64:
		le.PutUint64(b, x)
	case int64:
		le.PutUint64(b, uint64(x))
	case float32:
		le.PutUint32(b, math.Float32bits(x))
	case float64:
		le.PutUint64(b, math.Float64bits(x))
	}
}

func getScalar[T Number](b []byte) T {
	var z T
	switch any(z).(type) {
	case uint8:
		return T(b[0])
	case int8:
		return T(int8(b[0]))
	case uint16:
		return T(le.Uint16(b))
	case int16:
		return T(int16(le.Uint16(b)))
	case uint32:
		return T(le.Uint32(b))
	case int32:
		return T(int32(le.Uint32(b)))
	case uint64:
		return T(le.Uint64(b))
	case int64:
		return T(int64(le.Uint64(b)))
	case float32:
		return T(math.Float32frombits(le.Uint32(b)))
	case float64:
		return T(math.Float64frombits(le.Uint64(b)))
	}
	return z
}

// view reinterprets b as a slice of T without copying. It returns nil when
// the host is big-endian or b is misaligned for T.
func view[T Number](b []byte) []T {
	size := sizeOf[T]()
	n := uint32(len(b)) / size
	if n == 0 {
		return []T{}
	}
	if size > 1 && (!layout.NativeLittleEndian || !layout.Aligned(b, size)) {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// decode returns b as a slice of T: a view when possible, a decoded copy
// otherwise.
func decode[T Number](b []byte) []T {
	if v := view[T](b); v != nil {
		return v
	}
	size := sizeOf[T]()
	out := make([]T, uint32(len(b))/size)
	for i := range out {
		out[i] = getScalar[T](b[uint32(i)*size:])
	}
	return out
}

// encode writes vals into dst in little-endian order.
func encode[T Number](dst []byte, vals []T) {
	size := sizeOf[T]()
	if size == 1 || layout.NativeLittleEndian {
		src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), uint32(len(vals))*size)
		copy(dst, src)
		return
	}
	for i, v := range vals {
		putScalar(dst[uint32(i)*size:], v)
	}
}
