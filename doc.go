// Package histream provides a compact, self-describing, hierarchical binary
// container format together with an incremental writer and a zero-copy reader.
//
// A stream is a single contiguous byte buffer holding a fixed header, a tree
// of tagged nodes with typed attributes, and a trailing attribute tag table.
// Every link inside the tree is a relative byte distance, so the writer can
// grow and relocate its buffer mid-construction without patching links, and
// the reader can walk a finished buffer without a parse pass or allocation.
//
// # Architecture Overview
//
//	histream/            Root package with the Allocator interface
//	├── tag/             4-character tag codec
//	├── arena/           Growable, zero-filled, aligned byte arena
//	├── stream/          Writer, attribute tag interner, reader, header probe
//	├── errors/          Structured error types for writer and reader failures
//	└── cmd/histream/    Inspector CLI (probe, stats, inspect, sample)
//
// # Quick Start
//
// Build a stream:
//
//	w := stream.NewWriterWithDefaults()
//	w.Begin()
//	w.PushChild(tag.Must("nod1"))
//	w.AddU8(tag.Must("u8te"), 11)
//	w.AddString(tag.Must("strt"), "sampleString")
//	w.PopChild()
//	w.End()
//	if err := w.Err(); err != nil {
//	    log.Fatal(err)
//	}
//	buf := w.TakeBuffer()
//
// Read it back:
//
//	s, err := stream.Open(buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for child := range s.Root().Children() {
//	    for attr := range child.Attributes() {
//	        fmt.Println(attr.Tag(), attr.Type())
//	    }
//	}
//
// # Error Model
//
// The writer never panics on bad input. The first failure is latched and
// every later call becomes a no-op; check Writer.Err once the session ends.
// Readers trust their producer: a malformed buffer is not detected at open
// time.
//
// # Thread Safety
//
// A Writer is NOT safe for concurrent use. A finished buffer is immutable and
// can be shared by any number of readers without synchronization.
package histream
