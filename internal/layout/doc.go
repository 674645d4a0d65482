// Package layout provides the byte-level layout rules of a histream buffer.
//
// This package computes alignment padding, packed record sizes and the fixed
// sizes of every on-disk header. The writer and the reader both derive
// positions from these rules, so any change here changes the format.
//
// # Layout Rules
//
//   - All headers are 4-byte aligned; multi-byte fields are little-endian.
//   - Scalars and array elements are naturally aligned (size == alignment).
//   - Data payloads are aligned on a caller-chosen power of two up to 64.
//   - Records described by a data layout are packed: no padding between
//     fields, alignment equals the largest field primitive.
//
// This package is internal to histream.
package layout
