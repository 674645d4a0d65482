package stream

import "testing"

func TestTypeNames(t *testing.T) {
	for typ := TypeInvalid; typ < typeCount; typ++ {
		name := typ.String()
		if got := ParseType(name); got != typ {
			t.Errorf("ParseType(%q): got %v, want %v", name, got, typ)
		}
	}
	if ParseType("Bogus") != TypeInvalid {
		t.Error("unknown name should parse as Invalid")
	}
	if Type(200).String() != "Invalid" {
		t.Error("out of range type should print as Invalid")
	}
	if TypeDataWithLayout.String() != "DataWithLayout" || TypeStringFloat.String() != "StringFloat" {
		t.Error("unexpected type names")
	}
}

func TestTypeClasses(t *testing.T) {
	tests := []struct {
		typ                       Type
		scalar, array, pair, data bool
		elem                      uint32
	}{
		{TypeU8, true, false, false, false, 1},
		{TypeDouble, true, false, false, false, 8},
		{TypeString, false, false, false, false, 1},
		{TypeS16Array, false, true, false, false, 2},
		{TypeFloatArray, false, true, false, false, 4},
		{TypeStringU64, false, false, true, false, 8},
		{TypeStringS8, false, false, true, false, 1},
		{TypeData, false, false, false, true, 1},
		{TypeDataWithLayout, false, false, false, true, 1},
		{TypeInvalid, false, false, false, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if tc.typ.IsScalar() != tc.scalar || tc.typ.IsArray() != tc.array ||
				tc.typ.IsStringScalar() != tc.pair || tc.typ.IsData() != tc.data {
				t.Errorf("classification mismatch for %v", tc.typ)
			}
			if got := tc.typ.ElementSize(); got != tc.elem {
				t.Errorf("element size: got %d, want %d", got, tc.elem)
			}
		})
	}
}

func TestDataTypes(t *testing.T) {
	sizes := map[DataType]uint32{
		DataInvalid: 0, DataU8: 1, DataS8: 1, DataU16: 2, DataS16: 2,
		DataU32: 4, DataS32: 4, DataU64: 8, DataS64: 8, DataFloat: 4, DataDouble: 8,
	}
	for d, want := range sizes {
		if got := d.Size(); got != want {
			t.Errorf("%v size: got %d, want %d", d, got, want)
		}
		if ParseDataType(d.String()) != d {
			t.Errorf("ParseDataType(%q) does not round-trip", d.String())
		}
	}
	if DataType(99).Size() != 0 {
		t.Error("out of range data type should have size 0")
	}
}
