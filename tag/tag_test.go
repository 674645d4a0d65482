package tag

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"root", 0x726f6f74},
		{"nod1", 0x6e6f6431},
		{"u8te", 0x75387465},
		{"\x00\x00\x00\x01", 1},
		{"\xff\xff\xff\xff", 0xffffffff},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %#x, want %#x", uint32(got), uint32(tc.want))
			}
			if got.String() != tc.in {
				t.Errorf("String: got %q, want %q", got.String(), tc.in)
			}
		})
	}
}

func TestParse_WrongLength(t *testing.T) {
	for _, in := range []string{"", "abc", "abcde", "日本"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		} else if !strings.Contains(err.Error(), "exactly 4") {
			t.Errorf("unexpected error text: %v", err)
		}
	}
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on a 3-character tag")
		}
	}()
	Must("abc")
}

func TestOrderMatchesText(t *testing.T) {
	a, b := Must("aaaz"), Must("aaba")
	if !(a < b) {
		t.Errorf("numeric order should follow byte order: %s >= %s", a, b)
	}
}

func TestFromBytes(t *testing.T) {
	want := Must("strt")
	if got := FromBytes([4]byte{'s', 't', 'r', 't'}); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got := FromBytes(want.Bytes()); got != want {
		t.Errorf("Bytes round trip: got %s, want %s", got, want)
	}
}
