package stream

import (
	"github.com/wippyai/histream"
	"github.com/wippyai/histream/arena"
	"github.com/wippyai/histream/errors"
	"github.com/wippyai/histream/internal/layout"
	"github.com/wippyai/histream/tag"
	"go.uber.org/zap"
)

// RootTag is the tag of the node every stream starts with.
var RootTag = tag.Must("root")

type writerState uint8

const (
	stateIdle writerState = iota
	stateBuilding
	stateFinalized
)

func (s writerState) String() string {
	switch s {
	case stateBuilding:
		return "building"
	case stateFinalized:
		return "finalized"
	}
	return "idle"
}

// frame is one open node on the writer stack. Offsets are absolute; 0 means
// none because offset 0 always holds the stream header.
type frame struct {
	node      uint32
	lastChild uint32
	lastAttr  uint32
	lastForm  layout.Form
	tag       tag.Tag
}

// Writer builds a stream into an arena.
//
// Usage: Begin, then any sequence of PushChild/PopChild and Add calls, then
// End. All attributes of a node must be added before its first child.
//
// The first failure is latched: Err returns it and every later call does
// nothing. Slices returned by Add and Reserve methods alias the arena and
// are valid only until the next call on the writer.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	opts  Options
	log   *zap.Logger
	arena *arena.Arena
	stack []frame
	tags  interner
	err   *errors.Error
	state writerState
}

// NewWriter creates a writer. No memory is allocated until Begin.
func NewWriter(opts Options) *Writer {
	opts = opts.withDefaults()
	return &Writer{
		opts:  opts,
		log:   opts.Logger,
		arena: arena.New(opts.Allocator, opts.PageSize, opts.Logger),
		stack: make([]frame, 0, opts.MaxDepth),
	}
}

// NewWriterWithDefaults creates a writer with DefaultOptions.
func NewWriterWithDefaults() *Writer {
	return NewWriter(DefaultOptions())
}

// Options returns the writer configuration.
func (w *Writer) Options() Options { return w.opts }

// Allocator returns the allocator that owns the writer's buffer.
func (w *Writer) Allocator() histream.Allocator { return w.arena.Allocator() }

// Err returns the first error that occurred, or nil.
func (w *Writer) Err() error {
	if w.err == nil {
		return nil
	}
	return w.err
}

// ErrorText returns the message of the first error, or "".
func (w *Writer) ErrorText() string {
	if w.err == nil {
		return ""
	}
	return w.err.Error()
}

// Depth returns the number of open nodes, root included.
func (w *Writer) Depth() int { return len(w.stack) }

// Buffer returns the bytes written so far. The slice aliases the arena.
func (w *Writer) Buffer() []byte { return w.arena.Bytes() }

// BufferSize returns the number of bytes written so far.
func (w *Writer) BufferSize() int { return int(w.arena.Len()) }

// TakeBuffer hands the buffer to the caller, who releases it with the
// writer's Allocator. The writer is reset and may begin a new stream.
func (w *Writer) TakeBuffer() []byte {
	b := w.arena.Take()
	w.reset()
	return b
}

// Release frees the buffer and resets the writer.
func (w *Writer) Release() {
	w.arena.Release()
	w.reset()
}

func (w *Writer) reset() {
	w.stack = w.stack[:0]
	w.tags.reset()
	w.err = nil
	w.state = stateIdle
}

func (w *Writer) fail(err *errors.Error) {
	fields := make([]zap.Field, 0, 5)
	fields = append(fields, zap.String("kind", string(err.Kind)), zap.String("phase", string(err.Phase)))
	if err.Node != 0 {
		fields = append(fields, zap.String("node", err.Node.String()))
	}
	if err.Attr != 0 {
		fields = append(fields, zap.String("attr", err.Attr.String()))
	}
	fields = append(fields, zap.Error(err))
	w.log.Error("histream write failed", fields...)

	if w.err == nil {
		w.err = err
	}
}

// failAlloc latches an arena failure with the node and attribute involved.
func (w *Writer) failAlloc(err error, node, attr tag.Tag) {
	var e *errors.Error
	if !errors.As(err, &e) {
		e = errors.Wrap(errors.PhaseAlloc, errors.KindNoMem, err, "arena reserve failed")
	}
	if e.Node == 0 {
		e.Node = node
	}
	if e.Attr == 0 {
		e.Attr = attr
	}
	w.fail(e)
}

// ready reports whether a building-phase call may proceed.
func (w *Writer) ready(op string) bool {
	if w.err != nil {
		w.log.Debug("writer call skipped after error",
			zap.String("op", op),
			zap.String("kind", string(w.err.Kind)))
		return false
	}
	if w.state != stateBuilding {
		w.fail(errors.HierarchyCorrupted(errors.PhaseWrite, 0, op+" called while writer is "+w.state.String()))
		return false
	}
	return true
}

func (w *Writer) top() *frame {
	return &w.stack[len(w.stack)-1]
}

// Begin writes the stream header and opens the root node.
func (w *Writer) Begin() {
	if w.err != nil {
		w.log.Debug("writer call skipped after error", zap.String("op", "Begin"))
		return
	}
	if w.state != stateIdle {
		w.fail(errors.HierarchyCorrupted(errors.PhaseWrite, 0, "Begin called while writer is "+w.state.String()))
		return
	}
	off, err := w.arena.Reserve(layout.StreamHeaderSize, layout.HeaderAlign)
	if err != nil {
		w.failAlloc(err, 0, 0)
		return
	}
	var h layout.StreamHeader
	copy(h.Magic[:], Magic)
	h.Encode(w.arena.Slice(off, layout.StreamHeaderSize))

	node, ok := w.newNode(RootTag)
	if !ok {
		return
	}
	w.stack = append(w.stack, frame{node: node, tag: RootTag})
	w.state = stateBuilding
}

func (w *Writer) newNode(t tag.Tag) (uint32, bool) {
	off, err := w.arena.Reserve(layout.NodeHeaderSize, layout.HeaderAlign)
	if err != nil {
		w.failAlloc(err, t, 0)
		return 0, false
	}
	layout.NodeHeader{Tag: uint32(t)}.Encode(w.arena.Slice(off, layout.NodeHeaderSize))
	return off, true
}

// PushChild appends a node as the last child of the current node and makes
// it the current node.
func (w *Writer) PushChild(t tag.Tag) {
	if !w.ready("PushChild") {
		return
	}
	if len(w.stack) >= w.opts.MaxDepth {
		w.fail(errors.HierarchyOverflow(t, w.opts.MaxDepth))
		return
	}
	off, ok := w.newNode(t)
	if !ok {
		return
	}

	parent := w.top()
	buf := w.arena.Bytes()
	if parent.lastChild == 0 {
		layout.PutU32(buf, parent.node+layout.NodeFirstChildOffset, off-parent.node)
	} else {
		layout.PutU32(buf, parent.lastChild+layout.NodeNextSiblingOffset, off-parent.lastChild)
	}
	count := layout.U32(buf, parent.node+layout.NodeChildCountOffset)
	layout.PutU32(buf, parent.node+layout.NodeChildCountOffset, count+1)
	parent.lastChild = off

	w.stack = append(w.stack, frame{node: off, tag: t})
}

// PopChild closes the current node and makes its parent current.
func (w *Writer) PopChild() {
	if !w.ready("PopChild") {
		return
	}
	if len(w.stack) <= 1 {
		w.fail(errors.HierarchyCorrupted(errors.PhaseWrite, RootTag, "PopChild called on the root node"))
		return
	}
	w.stack = w.stack[:len(w.stack)-1]
}

// End closes the root node, appends the attribute tag remap table and
// patches the stream header. Every pushed child must have been popped.
func (w *Writer) End() {
	if !w.ready("End") {
		return
	}
	if len(w.stack) > 1 {
		w.fail(errors.HierarchyCorrupted(errors.PhaseFinalize, w.top().tag,
			"End called with unpopped child nodes"))
		return
	}
	w.stack = w.stack[:0]

	tags := w.tags.tags()
	off, err := w.arena.Reserve(uint32(len(tags))*layout.TagSize, layout.HeaderAlign)
	if err != nil {
		w.failAlloc(err, RootTag, 0)
		return
	}
	buf := w.arena.Bytes()
	for i, t := range tags {
		layout.PutU32(buf, off+uint32(i)*layout.TagSize, uint32(t))
	}
	layout.PutU32(buf, layout.MagicSize, off)
	layout.PutU32(buf, layout.MagicSize+4, uint32(len(tags)))

	w.state = stateFinalized
	w.log.Debug("stream finalized",
		zap.Uint32("size", w.arena.Len()),
		zap.Int("attr_tags", len(tags)))
}
