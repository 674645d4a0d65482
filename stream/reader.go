package stream

import (
	"iter"
	"unsafe"

	"github.com/wippyai/histream/internal/layout"
	"github.com/wippyai/histream/tag"
)

// Stream is a read-only view over a finished stream buffer.
//
// Open checks only that the buffer holds a header. Traversal trusts the
// producer: offsets and lengths are followed as stored, and a malformed
// buffer may panic with an index out of range.
//
// Typed array and string accessors alias the buffer, which must stay
// unmodified while they are in use. A Stream is safe for concurrent reads.
type Stream struct {
	buf []byte
	hdr Header
}

// Open returns a view over buf.
func Open(buf []byte) (*Stream, error) {
	h, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	return &Stream{buf: buf, hdr: h}, nil
}

// Header returns the stream header.
func (s *Stream) Header() Header { return s.hdr }

// Size returns the size of the buffer in bytes.
func (s *Stream) Size() int { return len(s.buf) }

// Bytes returns the underlying buffer.
func (s *Stream) Bytes() []byte { return s.buf }

// Root returns the root node, or a zero Node when the buffer ends before it.
func (s *Stream) Root() Node {
	if len(s.buf) < layout.StreamHeaderSize+layout.NodeHeaderSize {
		return Node{}
	}
	return Node{s: s, off: layout.StreamHeaderSize}
}

// AttributeTags returns the remap table: the attribute tags in interned
// index order.
func (s *Stream) AttributeTags() []tag.Tag {
	n := s.remapCount()
	tags := make([]tag.Tag, n)
	for i := range tags {
		tags[i] = tag.Tag(layout.U32(s.buf, s.hdr.RemapOffset+uint32(i)*layout.TagSize))
	}
	return tags
}

// remapCount returns the number of remap entries that lie inside the buffer.
func (s *Stream) remapCount() uint32 {
	off := uint64(s.hdr.RemapOffset)
	if off > uint64(len(s.buf)) {
		return 0
	}
	avail := (uint64(len(s.buf)) - off) / layout.TagSize
	return uint32(min(avail, uint64(s.hdr.RemapCount)))
}

func (s *Stream) attrTag(index uint8) tag.Tag {
	if uint32(index) >= s.remapCount() {
		return 0
	}
	return tag.Tag(layout.U32(s.buf, s.hdr.RemapOffset+uint32(index)*layout.TagSize))
}

// Node is a node of a stream. The zero Node has no tag, children or
// attributes.
type Node struct {
	s   *Stream
	off uint32
}

// IsZero reports whether n is the zero Node.
func (n Node) IsZero() bool { return n.s == nil }

func (n Node) header() layout.NodeHeader {
	if n.s == nil {
		return layout.NodeHeader{}
	}
	return layout.DecodeNodeHeader(n.s.buf[n.off:])
}

// Tag returns the node tag.
func (n Node) Tag() tag.Tag { return tag.Tag(n.header().Tag) }

// NumChildren returns the number of direct children.
func (n Node) NumChildren() uint32 { return n.header().ChildCount }

// NumAttributes returns the number of attributes.
func (n Node) NumAttributes() uint32 { return n.header().AttrCount }

// Children iterates the direct children in insertion order.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		h := n.header()
		if h.ChildCount == 0 {
			return
		}
		cur := n.off + h.FirstChild
		for i := uint32(0); i < h.ChildCount; i++ {
			child := Node{s: n.s, off: cur}
			if !yield(child) {
				return
			}
			cur += layout.U32(n.s.buf, cur+layout.NodeNextSiblingOffset)
		}
	}
}

// Attributes iterates the attributes in insertion order.
func (n Node) Attributes() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		h := n.header()
		cur := n.off + layout.NodeHeaderSize
		for i := uint32(0); i < h.AttrCount; i++ {
			a := n.s.attributeAt(cur)
			if !yield(a) {
				return
			}
			cur += a.hdr.Next
		}
	}
}

// Child returns the first direct child with tag t.
func (n Node) Child(t tag.Tag) (Node, bool) {
	for c := range n.Children() {
		if c.Tag() == t {
			return c, true
		}
	}
	return Node{}, false
}

// Attribute returns the first attribute with tag t.
func (n Node) Attribute(t tag.Tag) (Attribute, bool) {
	for a := range n.Attributes() {
		if a.Tag() == t {
			return a, true
		}
	}
	return Attribute{}, false
}

func (s *Stream) attributeAt(off uint32) Attribute {
	b := s.buf[off:]
	return Attribute{
		s:   s,
		off: off,
		hdr: layout.DecodeAttrHeader(b, Type(b[1]).IsData()),
	}
}

// Attribute is one attribute of a node.
//
// Typed accessors are permissive: calling one that does not match Type
// returns the zero value of its result.
type Attribute struct {
	s   *Stream
	off uint32
	hdr layout.AttrHeader
}

// Type returns the stored attribute type.
func (a Attribute) Type() Type { return Type(a.hdr.Type) }

// Tag returns the attribute tag resolved through the remap table.
func (a Attribute) Tag() tag.Tag {
	if a.s == nil {
		return 0
	}
	return a.s.attrTag(a.hdr.TagIndex)
}

// TagIndex returns the interned tag index stored in the header.
func (a Attribute) TagIndex() uint8 { return a.hdr.TagIndex }

// IsLong reports whether the attribute is stored with the long header.
func (a Attribute) IsLong() bool { return a.hdr.Form == layout.FormLong }

// ArrayLength returns the element count of an array, the byte length of a
// string or string pair, 1 for scalars and 0 for the data kinds.
func (a Attribute) ArrayLength() uint32 {
	if a.Type().IsData() {
		return 0
	}
	return a.hdr.Length
}

// payload returns the offset of the first byte after the header and any
// layout descriptor, aligned on align.
func (a Attribute) payload(align uint32) uint32 {
	start := a.off + a.hdr.Form.Size() + uint32(a.hdr.LayoutCount)*layout.LayoutElementSize
	return layout.AlignTo(start, align)
}

func scalarOf[T Number](a Attribute, typ Type) T {
	if a.s == nil || a.Type() != typ {
		var z T
		return z
	}
	return getScalar[T](a.s.buf[a.payload(sizeOf[T]()):])
}

func arrayOf[T Number](a Attribute, typ Type) []T {
	if a.s == nil || a.Type() != typ {
		return nil
	}
	size := sizeOf[T]()
	p := a.payload(size)
	end, ok := a.end(p, a.hdr.Length, size)
	if !ok {
		return nil
	}
	return decode[T](a.s.buf[p:end])
}

// end returns the offset just past n elements of size bytes starting at p,
// or false when it does not fit the 32-bit offset space.
func (a Attribute) end(p, n, size uint32) (uint32, bool) {
	bytes, ok := layout.SafeMulU32(n, size)
	if !ok {
		return 0, false
	}
	return layout.SafeAddU32(p, bytes)
}

func (a Attribute) str(at, n uint32) string {
	if n == 0 {
		return ""
	}
	return unsafe.String(&a.s.buf[at], n)
}

func stringScalarOf[T Number](a Attribute, typ Type) (string, T) {
	var z T
	if a.s == nil || a.Type() != typ {
		return "", z
	}
	size := sizeOf[T]()
	p := a.payload(size)
	v := layout.AlignTo(p+a.hdr.Length+1, size)
	return a.str(p, a.hdr.Length), getScalar[T](a.s.buf[v:])
}

// AsString returns the value of a String attribute.
func (a Attribute) AsString() string {
	if a.s == nil || a.Type() != TypeString {
		return ""
	}
	return a.str(a.payload(1), a.hdr.Length)
}

// DataSize returns the payload size of a data attribute in bytes.
func (a Attribute) DataSize() uint32 {
	if !a.Type().IsData() {
		return 0
	}
	return a.hdr.Length
}

// DataAlignment returns the payload alignment of a data attribute.
func (a Attribute) DataAlignment() uint32 {
	if !a.Type().IsData() {
		return 0
	}
	return uint32(a.hdr.Align)
}

// DataLayoutCount returns the number of layout elements of a
// DataWithLayout attribute.
func (a Attribute) DataLayoutCount() int {
	if a.Type() != TypeDataWithLayout {
		return 0
	}
	return int(a.hdr.LayoutCount)
}

// DataLayout returns the record layout of a DataWithLayout attribute. The
// slice aliases the buffer.
func (a Attribute) DataLayout() []DataLayoutElement {
	if a.s == nil || a.Type() != TypeDataWithLayout || a.hdr.LayoutCount == 0 {
		return nil
	}
	at := a.off + layout.AttrHeaderLongSize
	return unsafe.Slice((*DataLayoutElement)(unsafe.Pointer(&a.s.buf[at])), a.hdr.LayoutCount)
}

// Data returns the payload of a Data or DataWithLayout attribute. The slice
// aliases the buffer and starts on DataAlignment relative to the buffer.
func (a Attribute) Data() []byte {
	if a.s == nil || !a.Type().IsData() {
		return nil
	}
	p := a.payload(uint32(max(a.hdr.Align, 1)))
	end, ok := a.end(p, a.hdr.Length, 1)
	if !ok {
		return nil
	}
	return a.s.buf[p:end:end]
}
