// Package stream writes and reads histream buffers.
//
// A stream is one contiguous buffer:
//
//	[header 16B][root node subtree][attribute tag remap table]
//
// Nodes carry a full 4-byte tag, child and attribute counts, and relative
// offsets to their first child and next sibling. Attributes follow their
// node's header and precede its children. Each attribute stores an interned
// tag index, a Type and a length, in one of two header widths:
//
//	short  4B   tagIndex u8, type u8, len u8, next u8
//	long   12B  tagIndex u8, type u8, 255 u8, 0 u8, len u32, next u32
//
// Data kinds always use the long header; byte 2 holds the layout element
// count and byte 3 the payload alignment.
//
// # Writing
//
//	w := stream.NewWriterWithDefaults()
//	w.Begin()
//	w.PushChild(tag.Must("mesh"))
//	w.AddU32(tag.Must("nvtx"), 3)
//	w.AddFloatArray(tag.Must("posn"), positions)
//	w.PopChild()
//	w.End()
//	if err := w.Err(); err != nil { ... }
//	buf := w.TakeBuffer()
//
// # Reading
//
//	s, err := stream.Open(buf)
//	for node := range s.Root().Children() {
//		for attr := range node.Attributes() {
//			fmt.Println(attr.Tag(), attr.Type())
//		}
//	}
package stream
