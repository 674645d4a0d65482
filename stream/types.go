package stream

// Type identifies how an attribute payload is encoded. The numeric values
// are part of the binary format.
type Type uint8

const (
	TypeInvalid Type = iota

	TypeU8
	TypeS8
	TypeU16
	TypeS16
	TypeU32
	TypeS32
	TypeU64
	TypeS64
	TypeFloat
	TypeDouble
	TypeString

	TypeU8Array
	TypeS8Array
	TypeU16Array
	TypeS16Array
	TypeU32Array
	TypeS32Array
	TypeU64Array
	TypeS64Array
	TypeFloatArray
	TypeDoubleArray

	TypeStringU8
	TypeStringS8
	TypeStringU16
	TypeStringS16
	TypeStringU32
	TypeStringS32
	TypeStringU64
	TypeStringS64
	TypeStringFloat
	TypeStringDouble

	TypeData
	TypeDataWithLayout

	typeCount
)

var typeNames = [typeCount]string{
	"Invalid",
	"U8", "S8", "U16", "S16", "U32", "S32", "U64", "S64", "Float", "Double", "String",
	"U8Array", "S8Array", "U16Array", "S16Array", "U32Array", "S32Array", "U64Array", "S64Array",
	"FloatArray", "DoubleArray",
	"StringU8", "StringS8", "StringU16", "StringS16", "StringU32", "StringS32", "StringU64", "StringS64",
	"StringFloat", "StringDouble",
	"Data", "DataWithLayout",
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, typeCount)
	for i, n := range typeNames {
		m[n] = Type(i)
	}
	return m
}()

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return "Invalid"
}

// ParseType returns the type with the given name, or TypeInvalid.
func ParseType(name string) Type {
	return typeByName[name]
}

// IsScalar reports whether t is a single fixed-size value.
func (t Type) IsScalar() bool { return t >= TypeU8 && t <= TypeDouble }

// IsArray reports whether t is an array of scalars.
func (t Type) IsArray() bool { return t >= TypeU8Array && t <= TypeDoubleArray }

// IsStringScalar reports whether t is a string followed by one scalar.
func (t Type) IsStringScalar() bool { return t >= TypeStringU8 && t <= TypeStringDouble }

// IsData reports whether t is one of the opaque payload kinds. These always
// use the long header.
func (t Type) IsData() bool { return t == TypeData || t == TypeDataWithLayout }

// ElementSize returns the size in bytes of the scalar carried by t: the
// value itself, one array element or the trailing scalar of a string pair.
// It is 1 for strings and the data kinds and 0 for invalid types.
func (t Type) ElementSize() uint32 {
	switch {
	case t.IsScalar():
		return scalarSizes[t-TypeU8]
	case t.IsArray():
		return scalarSizes[t-TypeU8Array]
	case t.IsStringScalar():
		return scalarSizes[t-TypeStringU8]
	case t == TypeString || t.IsData():
		return 1
	}
	return 0
}

// u8, s8, u16, s16, u32, s32, u64, s64, float, double
var scalarSizes = [10]uint32{1, 1, 2, 2, 4, 4, 8, 8, 4, 8}

// DataType is a primitive field type inside a data layout.
type DataType uint8

const (
	DataInvalid DataType = iota
	DataU8
	DataS8
	DataU16
	DataS16
	DataU32
	DataS32
	DataU64
	DataS64
	DataFloat
	DataDouble

	dataTypeCount
)

var dataTypeNames = [dataTypeCount]string{
	"Invalid", "U8", "S8", "U16", "S16", "U32", "S32", "U64", "S64", "Float", "Double",
}

func (d DataType) String() string {
	if d < dataTypeCount {
		return dataTypeNames[d]
	}
	return "Invalid"
}

// ParseDataType returns the data type with the given name, or DataInvalid.
func ParseDataType(name string) DataType {
	for i, n := range dataTypeNames {
		if n == name {
			return DataType(i)
		}
	}
	return DataInvalid
}

// Size returns the size in bytes of one field of type d, 0 when invalid.
func (d DataType) Size() uint32 {
	if d == DataInvalid || d >= dataTypeCount {
		return 0
	}
	return scalarSizes[d-DataU8]
}

// DataLayoutElement describes Count consecutive fields of one primitive type
// inside a record.
type DataLayoutElement struct {
	Type  DataType
	Count uint8
}
