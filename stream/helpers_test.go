package stream

import (
	"testing"

	"github.com/wippyai/histream/tag"
)

type decodedAttr struct {
	Tag   string
	Type  string
	Value any
}

type decodedNode struct {
	Tag      string
	Attrs    []decodedAttr
	Children []decodedNode
}

type stringPair struct {
	S string
	V any
}

type layoutData struct {
	Layout []DataLayoutElement
	Align  uint32
	Bytes  []byte
}

func attrValue(a Attribute) any {
	switch a.Type() {
	case TypeU8:
		return a.AsU8()
	case TypeS8:
		return a.AsS8()
	case TypeU16:
		return a.AsU16()
	case TypeS16:
		return a.AsS16()
	case TypeU32:
		return a.AsU32()
	case TypeS32:
		return a.AsS32()
	case TypeU64:
		return a.AsU64()
	case TypeS64:
		return a.AsS64()
	case TypeFloat:
		return a.AsFloat()
	case TypeDouble:
		return a.AsDouble()
	case TypeString:
		return a.AsString()
	case TypeU8Array:
		return append([]uint8(nil), a.AsU8Array()...)
	case TypeS8Array:
		return append([]int8(nil), a.AsS8Array()...)
	case TypeU16Array:
		return append([]uint16(nil), a.AsU16Array()...)
	case TypeS16Array:
		return append([]int16(nil), a.AsS16Array()...)
	case TypeU32Array:
		return append([]uint32(nil), a.AsU32Array()...)
	case TypeS32Array:
		return append([]int32(nil), a.AsS32Array()...)
	case TypeU64Array:
		return append([]uint64(nil), a.AsU64Array()...)
	case TypeS64Array:
		return append([]int64(nil), a.AsS64Array()...)
	case TypeFloatArray:
		return append([]float32(nil), a.AsFloatArray()...)
	case TypeDoubleArray:
		return append([]float64(nil), a.AsDoubleArray()...)
	case TypeStringU8:
		s, v := a.AsStringU8()
		return stringPair{s, v}
	case TypeStringS8:
		s, v := a.AsStringS8()
		return stringPair{s, v}
	case TypeStringU16:
		s, v := a.AsStringU16()
		return stringPair{s, v}
	case TypeStringS16:
		s, v := a.AsStringS16()
		return stringPair{s, v}
	case TypeStringU32:
		s, v := a.AsStringU32()
		return stringPair{s, v}
	case TypeStringS32:
		s, v := a.AsStringS32()
		return stringPair{s, v}
	case TypeStringU64:
		s, v := a.AsStringU64()
		return stringPair{s, v}
	case TypeStringS64:
		s, v := a.AsStringS64()
		return stringPair{s, v}
	case TypeStringFloat:
		s, v := a.AsStringFloat()
		return stringPair{s, v}
	case TypeStringDouble:
		s, v := a.AsStringDouble()
		return stringPair{s, v}
	case TypeData, TypeDataWithLayout:
		return layoutData{
			Layout: append([]DataLayoutElement(nil), a.DataLayout()...),
			Align:  a.DataAlignment(),
			Bytes:  append([]byte(nil), a.Data()...),
		}
	}
	return nil
}

func decodeNode(n Node) decodedNode {
	d := decodedNode{Tag: n.Tag().String()}
	for a := range n.Attributes() {
		d.Attrs = append(d.Attrs, decodedAttr{Tag: a.Tag().String(), Type: a.Type().String(), Value: attrValue(a)})
	}
	for c := range n.Children() {
		d.Children = append(d.Children, decodeNode(c))
	}
	return d
}

func decodeBuffer(t *testing.T, buf []byte) decodedNode {
	t.Helper()
	s, err := Open(buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return decodeNode(s.Root())
}

func finish(t *testing.T, w *Writer) []byte {
	t.Helper()
	w.End()
	if err := w.Err(); err != nil {
		t.Fatalf("writer error: %v", err)
	}
	return w.TakeBuffer()
}

// sampleRecord is a packed record matching sampleLayout: 48 bytes, no
// padding between fields.
var sampleLayout = []DataLayoutElement{
	{DataU64, 1}, {DataS64, 1}, {DataDouble, 1}, {DataFloat, 2},
	{DataU16, 1}, {DataS16, 1}, {DataU32, 1}, {DataS32, 1},
	{DataU8, 2}, {DataS8, 2},
}

func sampleRecords(n int) []byte {
	rec := make([]byte, 48)
	putScalar(rec[0:], uint64(1000))
	putScalar(rec[8:], int64(-10000))
	putScalar(rec[16:], 3.14)
	putScalar(rec[24:], float32(1.5))
	putScalar(rec[28:], float32(2.3))
	putScalar(rec[32:], uint16(3))
	putScalar(rec[34:], int16(-4))
	putScalar(rec[36:], uint32(0xbaadc0de))
	putScalar(rec[40:], int32(-16))
	copy(rec[44:], "abcd")
	out := make([]byte, 0, 48*n)
	for range n {
		out = append(out, rec...)
	}
	return out
}

func fill[T Number](n int, start T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)
	}
	return out
}

// writeSample writes a stream that uses every attribute kind.
func writeSample(w *Writer) {
	w.Begin()

	w.PushChild(tag.Must("nod1"))
	w.AddU8(tag.Must("u8te"), 11)
	w.AddS8(tag.Must("s8te"), -11)
	w.AddU16(tag.Must("u16t"), 2222)
	w.AddS16(tag.Must("s16t"), -2222)
	w.AddU32(tag.Must("u32t"), 333333)
	w.AddS32(tag.Must("s32t"), -333333)
	w.AddU64(tag.Must("u64t"), 0xdeadbeef00)
	w.AddS64(tag.Must("s64t"), -0xF000000000)
	w.AddFloat(tag.Must("flot"), 99.5)
	w.AddDouble(tag.Must("dobt"), 109.5)
	w.AddString(tag.Must("strt"), "sampleString")
	w.PopChild()

	w.PushChild(tag.Must("nod2"))
	w.AddU8Array(tag.Must("u8ar"), fill[uint8](8, 1))
	w.AddS8Array(tag.Must("s8ar"), fill[int8](8, 2))
	w.AddU16Array(tag.Must("u16a"), fill[uint16](8, 3))
	w.AddS16Array(tag.Must("s16a"), fill[int16](8, 4))
	w.AddU32Array(tag.Must("u32a"), fill[uint32](8, 5))
	w.AddS32Array(tag.Must("s32a"), fill[int32](8, 6))
	w.AddU64Array(tag.Must("u64a"), fill[uint64](8, 7))
	w.AddS64Array(tag.Must("s64a"), fill[int64](8, 8))
	w.AddFloatArray(tag.Must("farr"), fill[float32](8, 3.14))
	w.AddDoubleArray(tag.Must("darr"), fill[float64](8, 99.5))

	w.PushChild(tag.Must("nod3"))
	w.AddStringU8(tag.Must("su8t"), "u8", 8)
	w.AddStringS8(tag.Must("ss8t"), "s8", -8)
	w.AddStringU16(tag.Must("su16"), "u16", 16)
	w.AddStringS16(tag.Must("ss16"), "s16", -16)
	w.AddStringU32(tag.Must("su32"), "u32", 32)
	w.AddStringS32(tag.Must("ss32"), "s32", -32)
	w.AddStringU64(tag.Must("su64"), "u64", 64)
	w.AddStringS64(tag.Must("ss64"), "s64", -64)
	w.AddStringFloat(tag.Must("sflo"), "float", 3.14)
	w.AddStringDouble(tag.Must("sdob"), "double", -95.5)
	w.AddDataWithLayout(tag.Must("dawl"), sampleLayout, sampleRecords(2), 16)
	w.AddData(tag.Must("data"), sampleRecords(2), 16)
	w.PopChild()

	w.PopChild()
	w.End()
}
