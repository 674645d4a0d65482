package layout

import "encoding/binary"

var le = binary.LittleEndian

// StreamHeader is the fixed header at byte 0 of every stream.
type StreamHeader struct {
	Magic       [MagicSize]byte
	RemapOffset uint32 // absolute
	RemapCount  uint32
}

func (h StreamHeader) Encode(b []byte) {
	_ = b[StreamHeaderSize-1]
	copy(b[:MagicSize], h.Magic[:])
	le.PutUint32(b[8:], h.RemapOffset)
	le.PutUint32(b[12:], h.RemapCount)
}

func DecodeStreamHeader(b []byte) StreamHeader {
	_ = b[StreamHeaderSize-1]
	var h StreamHeader
	copy(h.Magic[:], b[:MagicSize])
	h.RemapOffset = le.Uint32(b[8:])
	h.RemapCount = le.Uint32(b[12:])
	return h
}

// NodeHeader field offsets, relative to the start of the node.
const (
	NodeTagOffset         = 0
	NodeNextSiblingOffset = 4
	NodeFirstChildOffset  = 8
	NodeChildCountOffset  = 12
	NodeAttrCountOffset   = 16
)

// NodeHeader precedes the attributes of a node. NextSibling and FirstChild
// are distances from the start of this node; 0 means none.
type NodeHeader struct {
	Tag         uint32
	NextSibling uint32
	FirstChild  uint32
	ChildCount  uint32
	AttrCount   uint32
}

func (h NodeHeader) Encode(b []byte) {
	_ = b[NodeHeaderSize-1]
	le.PutUint32(b[NodeTagOffset:], h.Tag)
	le.PutUint32(b[NodeNextSiblingOffset:], h.NextSibling)
	le.PutUint32(b[NodeFirstChildOffset:], h.FirstChild)
	le.PutUint32(b[NodeChildCountOffset:], h.ChildCount)
	le.PutUint32(b[NodeAttrCountOffset:], h.AttrCount)
}

func DecodeNodeHeader(b []byte) NodeHeader {
	_ = b[NodeHeaderSize-1]
	return NodeHeader{
		Tag:         le.Uint32(b[NodeTagOffset:]),
		NextSibling: le.Uint32(b[NodeNextSiblingOffset:]),
		FirstChild:  le.Uint32(b[NodeFirstChildOffset:]),
		ChildCount:  le.Uint32(b[NodeChildCountOffset:]),
		AttrCount:   le.Uint32(b[NodeAttrCountOffset:]),
	}
}

// PutU32 patches the little-endian field at off in place.
func PutU32(b []byte, off, v uint32) {
	le.PutUint32(b[off:], v)
}

// U32 reads the little-endian field at off.
func U32(b []byte, off uint32) uint32 {
	return le.Uint32(b[off:])
}

// Form is the physical width of an attribute header.
type Form uint8

const (
	FormShort Form = iota
	FormLong
)

func (f Form) String() string {
	if f == FormLong {
		return "long"
	}
	return "short"
}

// Size returns the encoded header size for the form.
func (f Form) Size() uint32 {
	if f == FormLong {
		return AttrHeaderLongSize
	}
	return AttrHeaderSize
}

// AttrHeader is the decoded attribute header, whichever width it was stored
// in. For the data kinds, LayoutCount and Align carry the layout element
// count and payload alignment; for every other kind they are zero.
type AttrHeader struct {
	Form        Form
	TagIndex    uint8
	Type        uint8
	Length      uint32
	Next        uint32
	LayoutCount uint8
	Align       uint8
}

// Encode writes h at the start of b using h.Form. A long header stores the
// length sentinel in byte 2; use EncodeData for the data kinds.
func (h AttrHeader) Encode(b []byte) {
	b[0] = h.TagIndex
	b[1] = h.Type
	if h.Form == FormShort {
		_ = b[AttrHeaderSize-1]
		b[2] = uint8(h.Length)
		b[3] = uint8(h.Next)
		return
	}
	_ = b[AttrHeaderLongSize-1]
	b[2] = LengthSentinel
	b[3] = 0
	le.PutUint32(b[4:], h.Length)
	le.PutUint32(b[8:], h.Next)
}

// EncodeData writes a long header for one of the data kinds, where byte 2
// holds the layout count (0 for plain data) and byte 3 the payload alignment.
func (h AttrHeader) EncodeData(b []byte) {
	_ = b[AttrHeaderLongSize-1]
	b[0] = h.TagIndex
	b[1] = h.Type
	b[2] = h.LayoutCount
	b[3] = h.Align
	le.PutUint32(b[4:], h.Length)
	le.PutUint32(b[8:], h.Next)
}

// DecodeAttrHeader reads the header at the start of b. dataKind must be set
// when the type byte names one of the data kinds, which are always long.
func DecodeAttrHeader(b []byte, dataKind bool) AttrHeader {
	h := AttrHeader{TagIndex: b[0], Type: b[1]}
	switch {
	case dataKind:
		h.Form = FormLong
		h.LayoutCount = b[2]
		h.Align = b[3]
		h.Length = le.Uint32(b[4:])
		h.Next = le.Uint32(b[8:])
	case b[2] == LengthSentinel:
		h.Form = FormLong
		h.Length = le.Uint32(b[4:])
		h.Next = le.Uint32(b[8:])
	default:
		h.Form = FormShort
		h.Length = uint32(b[2])
		h.Next = uint32(b[3])
	}
	return h
}

// PatchNext rewrites the next-attribute distance of the header at the start
// of b, which must have been encoded with the given form.
func PatchNext(b []byte, form Form, next uint32) {
	if form == FormShort {
		b[3] = uint8(next)
		return
	}
	le.PutUint32(b[8:], next)
}
