package stream

import "github.com/wippyai/histream/tag"

// AddU8 adds a uint8 attribute.
func (w *Writer) AddU8(t tag.Tag, v uint8) {
	addScalar(w, t, TypeU8, v)
}

// AddS8 adds a int8 attribute.
func (w *Writer) AddS8(t tag.Tag, v int8) {
	addScalar(w, t, TypeS8, v)
}

// AddU16 adds a uint16 attribute.
func (w *Writer) AddU16(t tag.Tag, v uint16) {
	addScalar(w, t, TypeU16, v)
}

// AddS16 adds a int16 attribute.
func (w *Writer) AddS16(t tag.Tag, v int16) {
	addScalar(w, t, TypeS16, v)
}

// AddU32 adds a uint32 attribute.
func (w *Writer) AddU32(t tag.Tag, v uint32) {
	addScalar(w, t, TypeU32, v)
}

// AddS32 adds a int32 attribute.
func (w *Writer) AddS32(t tag.Tag, v int32) {
	addScalar(w, t, TypeS32, v)
}

// AddU64 adds a uint64 attribute.
func (w *Writer) AddU64(t tag.Tag, v uint64) {
	addScalar(w, t, TypeU64, v)
}

// AddS64 adds a int64 attribute.
func (w *Writer) AddS64(t tag.Tag, v int64) {
	addScalar(w, t, TypeS64, v)
}

// AddFloat adds a float32 attribute.
func (w *Writer) AddFloat(t tag.Tag, v float32) {
	addScalar(w, t, TypeFloat, v)
}

// AddDouble adds a float64 attribute.
func (w *Writer) AddDouble(t tag.Tag, v float64) {
	addScalar(w, t, TypeDouble, v)
}

// Array attributes return a writable view of the stored elements, which is
// nil on big-endian hosts for multi-byte elements.

// AddU8Array adds a copy of vals as a uint8 array.
func (w *Writer) AddU8Array(t tag.Tag, vals []uint8) []uint8 {
	return addArray(w, t, TypeU8Array, vals, len(vals))
}

// ReserveU8Array adds a zeroed uint8 array of n elements for the caller to fill.
func (w *Writer) ReserveU8Array(t tag.Tag, n int) []uint8 {
	return addArray[uint8](w, t, TypeU8Array, nil, n)
}

// AddS8Array adds a copy of vals as a int8 array.
func (w *Writer) AddS8Array(t tag.Tag, vals []int8) []int8 {
	return addArray(w, t, TypeS8Array, vals, len(vals))
}

// ReserveS8Array adds a zeroed int8 array of n elements for the caller to fill.
func (w *Writer) ReserveS8Array(t tag.Tag, n int) []int8 {
	return addArray[int8](w, t, TypeS8Array, nil, n)
}

// AddU16Array adds a copy of vals as a uint16 array.
func (w *Writer) AddU16Array(t tag.Tag, vals []uint16) []uint16 {
	return addArray(w, t, TypeU16Array, vals, len(vals))
}

// ReserveU16Array adds a zeroed uint16 array of n elements for the caller to fill.
func (w *Writer) ReserveU16Array(t tag.Tag, n int) []uint16 {
	return addArray[uint16](w, t, TypeU16Array, nil, n)
}

// AddS16Array adds a copy of vals as a int16 array.
func (w *Writer) AddS16Array(t tag.Tag, vals []int16) []int16 {
	return addArray(w, t, TypeS16Array, vals, len(vals))
}

// ReserveS16Array adds a zeroed int16 array of n elements for the caller to fill.
func (w *Writer) ReserveS16Array(t tag.Tag, n int) []int16 {
	return addArray[int16](w, t, TypeS16Array, nil, n)
}

// AddU32Array adds a copy of vals as a uint32 array.
func (w *Writer) AddU32Array(t tag.Tag, vals []uint32) []uint32 {
	return addArray(w, t, TypeU32Array, vals, len(vals))
}

// ReserveU32Array adds a zeroed uint32 array of n elements for the caller to fill.
func (w *Writer) ReserveU32Array(t tag.Tag, n int) []uint32 {
	return addArray[uint32](w, t, TypeU32Array, nil, n)
}

// AddS32Array adds a copy of vals as a int32 array.
func (w *Writer) AddS32Array(t tag.Tag, vals []int32) []int32 {
	return addArray(w, t, TypeS32Array, vals, len(vals))
}

// ReserveS32Array adds a zeroed int32 array of n elements for the caller to fill.
func (w *Writer) ReserveS32Array(t tag.Tag, n int) []int32 {
	return addArray[int32](w, t, TypeS32Array, nil, n)
}

// AddU64Array adds a copy of vals as a uint64 array.
func (w *Writer) AddU64Array(t tag.Tag, vals []uint64) []uint64 {
	return addArray(w, t, TypeU64Array, vals, len(vals))
}

// ReserveU64Array adds a zeroed uint64 array of n elements for the caller to fill.
func (w *Writer) ReserveU64Array(t tag.Tag, n int) []uint64 {
	return addArray[uint64](w, t, TypeU64Array, nil, n)
}

// AddS64Array adds a copy of vals as a int64 array.
func (w *Writer) AddS64Array(t tag.Tag, vals []int64) []int64 {
	return addArray(w, t, TypeS64Array, vals, len(vals))
}

// ReserveS64Array adds a zeroed int64 array of n elements for the caller to fill.
func (w *Writer) ReserveS64Array(t tag.Tag, n int) []int64 {
	return addArray[int64](w, t, TypeS64Array, nil, n)
}

// AddFloatArray adds a copy of vals as a float32 array.
func (w *Writer) AddFloatArray(t tag.Tag, vals []float32) []float32 {
	return addArray(w, t, TypeFloatArray, vals, len(vals))
}

// ReserveFloatArray adds a zeroed float32 array of n elements for the caller to fill.
func (w *Writer) ReserveFloatArray(t tag.Tag, n int) []float32 {
	return addArray[float32](w, t, TypeFloatArray, nil, n)
}

// AddDoubleArray adds a copy of vals as a float64 array.
func (w *Writer) AddDoubleArray(t tag.Tag, vals []float64) []float64 {
	return addArray(w, t, TypeDoubleArray, vals, len(vals))
}

// ReserveDoubleArray adds a zeroed float64 array of n elements for the caller to fill.
func (w *Writer) ReserveDoubleArray(t tag.Tag, n int) []float64 {
	return addArray[float64](w, t, TypeDoubleArray, nil, n)
}

// AddStringU8 adds a NUL-terminated string followed by a uint8, stored
// under one header.
func (w *Writer) AddStringU8(t tag.Tag, s string, v uint8) {
	addStringScalar(w, t, TypeStringU8, s, v)
}

// AddStringS8 adds a NUL-terminated string followed by a int8, stored
// under one header.
func (w *Writer) AddStringS8(t tag.Tag, s string, v int8) {
	addStringScalar(w, t, TypeStringS8, s, v)
}

// AddStringU16 adds a NUL-terminated string followed by a uint16, stored
// under one header.
func (w *Writer) AddStringU16(t tag.Tag, s string, v uint16) {
	addStringScalar(w, t, TypeStringU16, s, v)
}

// AddStringS16 adds a NUL-terminated string followed by a int16, stored
// under one header.
func (w *Writer) AddStringS16(t tag.Tag, s string, v int16) {
	addStringScalar(w, t, TypeStringS16, s, v)
}

// AddStringU32 adds a NUL-terminated string followed by a uint32, stored
// under one header.
func (w *Writer) AddStringU32(t tag.Tag, s string, v uint32) {
	addStringScalar(w, t, TypeStringU32, s, v)
}

// AddStringS32 adds a NUL-terminated string followed by a int32, stored
// under one header.
func (w *Writer) AddStringS32(t tag.Tag, s string, v int32) {
	addStringScalar(w, t, TypeStringS32, s, v)
}

// AddStringU64 adds a NUL-terminated string followed by a uint64, stored
// under one header.
func (w *Writer) AddStringU64(t tag.Tag, s string, v uint64) {
	addStringScalar(w, t, TypeStringU64, s, v)
}

// AddStringS64 adds a NUL-terminated string followed by a int64, stored
// under one header.
func (w *Writer) AddStringS64(t tag.Tag, s string, v int64) {
	addStringScalar(w, t, TypeStringS64, s, v)
}

// AddStringFloat adds a NUL-terminated string followed by a float32, stored
// under one header.
func (w *Writer) AddStringFloat(t tag.Tag, s string, v float32) {
	addStringScalar(w, t, TypeStringFloat, s, v)
}

// AddStringDouble adds a NUL-terminated string followed by a float64, stored
// under one header.
func (w *Writer) AddStringDouble(t tag.Tag, s string, v float64) {
	addStringScalar(w, t, TypeStringDouble, s, v)
}
