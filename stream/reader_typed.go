package stream

// AsU8 returns the value of a U8 attribute, or 0 for any other type.
func (a Attribute) AsU8() uint8 {
	return scalarOf[uint8](a, TypeU8)
}

// AsS8 returns the value of a S8 attribute, or 0 for any other type.
func (a Attribute) AsS8() int8 {
	return scalarOf[int8](a, TypeS8)
}

// AsU16 returns the value of a U16 attribute, or 0 for any other type.
func (a Attribute) AsU16() uint16 {
	return scalarOf[uint16](a, TypeU16)
}

// AsS16 returns the value of a S16 attribute, or 0 for any other type.
func (a Attribute) AsS16() int16 {
	return scalarOf[int16](a, TypeS16)
}

// AsU32 returns the value of a U32 attribute, or 0 for any other type.
func (a Attribute) AsU32() uint32 {
	return scalarOf[uint32](a, TypeU32)
}

// AsS32 returns the value of a S32 attribute, or 0 for any other type.
func (a Attribute) AsS32() int32 {
	return scalarOf[int32](a, TypeS32)
}

// AsU64 returns the value of a U64 attribute, or 0 for any other type.
func (a Attribute) AsU64() uint64 {
	return scalarOf[uint64](a, TypeU64)
}

// AsS64 returns the value of a S64 attribute, or 0 for any other type.
func (a Attribute) AsS64() int64 {
	return scalarOf[int64](a, TypeS64)
}

// AsFloat returns the value of a Float attribute, or 0 for any other type.
func (a Attribute) AsFloat() float32 {
	return scalarOf[float32](a, TypeFloat)
}

// AsDouble returns the value of a Double attribute, or 0 for any other type.
func (a Attribute) AsDouble() float64 {
	return scalarOf[float64](a, TypeDouble)
}

// Array accessors return a view of the buffer when the host is
// little-endian and the payload is aligned in memory, and a decoded copy
// otherwise.

// AsU8Array returns the elements of a U8Array attribute, or nil for
// any other type.
func (a Attribute) AsU8Array() []uint8 {
	return arrayOf[uint8](a, TypeU8Array)
}

// AsS8Array returns the elements of a S8Array attribute, or nil for
// any other type.
func (a Attribute) AsS8Array() []int8 {
	return arrayOf[int8](a, TypeS8Array)
}

// AsU16Array returns the elements of a U16Array attribute, or nil for
// any other type.
func (a Attribute) AsU16Array() []uint16 {
	return arrayOf[uint16](a, TypeU16Array)
}

// AsS16Array returns the elements of a S16Array attribute, or nil for
// any other type.
func (a Attribute) AsS16Array() []int16 {
	return arrayOf[int16](a, TypeS16Array)
}

// AsU32Array returns the elements of a U32Array attribute, or nil for
// any other type.
func (a Attribute) AsU32Array() []uint32 {
	return arrayOf[uint32](a, TypeU32Array)
}

// AsS32Array returns the elements of a S32Array attribute, or nil for
// any other type.
func (a Attribute) AsS32Array() []int32 {
	return arrayOf[int32](a, TypeS32Array)
}

// AsU64Array returns the elements of a U64Array attribute, or nil for
// any other type.
func (a Attribute) AsU64Array() []uint64 {
	return arrayOf[uint64](a, TypeU64Array)
}

// AsS64Array returns the elements of a S64Array attribute, or nil for
// any other type.
func (a Attribute) AsS64Array() []int64 {
	return arrayOf[int64](a, TypeS64Array)
}

// AsFloatArray returns the elements of a FloatArray attribute, or nil for
// any other type.
func (a Attribute) AsFloatArray() []float32 {
	return arrayOf[float32](a, TypeFloatArray)
}

// AsDoubleArray returns the elements of a DoubleArray attribute, or nil for
// any other type.
func (a Attribute) AsDoubleArray() []float64 {
	return arrayOf[float64](a, TypeDoubleArray)
}

// AsStringU8 returns the string and uint8 of a StringU8 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringU8() (string, uint8) {
	return stringScalarOf[uint8](a, TypeStringU8)
}

// AsStringS8 returns the string and int8 of a StringS8 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringS8() (string, int8) {
	return stringScalarOf[int8](a, TypeStringS8)
}

// AsStringU16 returns the string and uint16 of a StringU16 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringU16() (string, uint16) {
	return stringScalarOf[uint16](a, TypeStringU16)
}

// AsStringS16 returns the string and int16 of a StringS16 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringS16() (string, int16) {
	return stringScalarOf[int16](a, TypeStringS16)
}

// AsStringU32 returns the string and uint32 of a StringU32 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringU32() (string, uint32) {
	return stringScalarOf[uint32](a, TypeStringU32)
}

// AsStringS32 returns the string and int32 of a StringS32 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringS32() (string, int32) {
	return stringScalarOf[int32](a, TypeStringS32)
}

// AsStringU64 returns the string and uint64 of a StringU64 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringU64() (string, uint64) {
	return stringScalarOf[uint64](a, TypeStringU64)
}

// AsStringS64 returns the string and int64 of a StringS64 attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringS64() (string, int64) {
	return stringScalarOf[int64](a, TypeStringS64)
}

// AsStringFloat returns the string and float32 of a StringFloat attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringFloat() (string, float32) {
	return stringScalarOf[float32](a, TypeStringFloat)
}

// AsStringDouble returns the string and float64 of a StringDouble attribute, or
// zero values for any other type. The string aliases the buffer.
func (a Attribute) AsStringDouble() (string, float64) {
	return stringScalarOf[float64](a, TypeStringDouble)
}
