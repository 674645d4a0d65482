// Package tag packs 4-character identifiers into 32-bit integers.
//
// The first character lands in the most significant byte, so the numeric
// order of two tags equals the byte-wise order of their text. No
// normalization is applied: tags are compared and stored as raw bytes.
package tag

import (
	"encoding/binary"
	"fmt"
)

// Size is the number of characters in a tag.
const Size = 4

// Tag is a 4-character identifier packed big-endian into a uint32.
type Tag uint32

// Parse packs s into a Tag. It fails unless s is exactly 4 bytes long.
func Parse(s string) (Tag, error) {
	if len(s) != Size {
		return 0, fmt.Errorf("tag %q: must be exactly %d characters, got %d", s, Size, len(s))
	}
	return Tag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])), nil
}

// Must is like Parse but panics on malformed input. It is intended for
// package-level tag declarations.
func Must(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromBytes packs a 4-byte array into a Tag.
func FromBytes(b [Size]byte) Tag {
	return Tag(binary.BigEndian.Uint32(b[:]))
}

// Bytes returns the tag's four characters.
func (t Tag) Bytes() [Size]byte {
	var b [Size]byte
	binary.BigEndian.PutUint32(b[:], uint32(t))
	return b
}

// String returns the tag's four characters as text.
func (t Tag) String() string {
	b := t.Bytes()
	return string(b[:])
}
