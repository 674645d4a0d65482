package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/histream/tag"
)

// Phase names the stage of writing or reading that failed.
type Phase string

const (
	PhaseAlloc    Phase = "alloc"    // arena growth
	PhaseWrite    Phase = "write"    // node/attribute construction
	PhaseFinalize Phase = "finalize" // end of stream
	PhaseRead     Phase = "read"     // header probe and open
)

// Kind is the failure category callers match on.
type Kind string

const (
	KindNoMem              Kind = "no_mem"
	KindDataOverflow       Kind = "data_overflow"
	KindAttrChildOrder     Kind = "attr_child_order"
	KindHierarchyOverflow  Kind = "hierarchy_overflow"
	KindHierarchyCorrupted Kind = "hierarchy_corrupted"
	KindBadLayout          Kind = "bad_layout"
	KindTagOverflow        Kind = "tag_overflow"
	KindBadAlign           Kind = "bad_align"
	KindHeaderTooSmall     Kind = "header_too_small"
	KindMagicMismatch      Kind = "magic_mismatch"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrNoMem              = &Error{Kind: KindNoMem}
	ErrDataOverflow       = &Error{Kind: KindDataOverflow}
	ErrAttrChildOrder     = &Error{Kind: KindAttrChildOrder}
	ErrHierarchyOverflow  = &Error{Kind: KindHierarchyOverflow}
	ErrHierarchyCorrupted = &Error{Kind: KindHierarchyCorrupted}
	ErrBadLayout          = &Error{Kind: KindBadLayout}
	ErrTagOverflow        = &Error{Kind: KindTagOverflow}
	ErrBadAlign           = &Error{Kind: KindBadAlign}
	ErrHeaderTooSmall     = &Error{Kind: KindHeaderTooSmall}
	ErrMagicMismatch      = &Error{Kind: KindMagicMismatch}
)

// Error carries the phase, kind and tags involved in a histream failure.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Node   tag.Tag
	Attr   tag.Tag
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Node != 0 || e.Attr != 0 {
		b.WriteString(" (")
		if e.Node != 0 {
			b.WriteString("node=")
			b.WriteString(e.Node.String())
		}
		if e.Attr != 0 {
			if e.Node != 0 {
				b.WriteByte(' ')
			}
			b.WriteString("attr=")
			b.WriteString(e.Attr.String())
		}
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder assembles an Error field by field.
type Builder struct {
	err Error
}

// New starts a Builder for the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Node sets the tag of the node being written
func (b *Builder) Node(t tag.Tag) *Builder {
	b.err.Node = t
	return b
}

// Attr sets the tag of the attribute being written
func (b *Builder) Attr(t tag.Tag) *Builder {
	b.err.Attr = t
	return b
}

// Value records the value that was rejected.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause records the error that triggered this one.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the message, formatting it when args are given.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the assembled Error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Constructors for the failures the writer and reader report.

// AllocationFailed creates an out-of-memory error
func AllocationFailed(size uint64, align uint32, cause error) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindNoMem,
		Detail: fmt.Sprintf("couldn't allocate %d bytes (align %d)", size, align),
		Value:  size,
		Cause:  cause,
	}
}

// AttributeOverflow creates an error for an attribute whose encoded size
// exceeds what a long header can describe
func AttributeOverflow(node, attr tag.Tag, size uint64, limit uint64) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindDataOverflow,
		Node:   node,
		Attr:   attr,
		Detail: fmt.Sprintf("attribute size %d overflows limit of %d bytes", size, limit),
		Value:  size,
	}
}

// OffsetOverflow creates an error for a link distance that does not fit its field
func OffsetOverflow(node tag.Tag, what string, distance uint64, limit uint64) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindDataOverflow,
		Node:   node,
		Detail: fmt.Sprintf("%s offset %d overflows limit of %d bytes", what, distance, limit),
		Value:  distance,
	}
}

// AttrChildOrder creates an error for an attribute added after a child node
func AttrChildOrder(node, attr tag.Tag) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindAttrChildOrder,
		Node:   node,
		Attr:   attr,
		Detail: "attributes must be added before child nodes",
	}
}

// HierarchyOverflow creates an error for a push beyond the maximum depth
func HierarchyOverflow(node tag.Tag, maxDepth int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindHierarchyOverflow,
		Node:   node,
		Detail: fmt.Sprintf("hierarchy is too deep (max depth is %d)", maxDepth),
		Value:  maxDepth,
	}
}

// HierarchyCorrupted creates a push/pop or writer state mismatch error
func HierarchyCorrupted(phase Phase, node tag.Tag, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindHierarchyCorrupted,
		Node:   node,
		Detail: detail,
	}
}

// BadLayout creates an invalid record layout error
func BadLayout(node, attr tag.Tag, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindBadLayout,
		Node:   node,
		Attr:   attr,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// BadAlign creates an invalid alignment error
func BadAlign(node, attr tag.Tag, align uint32, detail string) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindBadAlign,
		Node:   node,
		Attr:   attr,
		Detail: detail,
		Value:  align,
	}
}

// TagOverflow creates an error for too many distinct attribute tags
func TagOverflow(node, attr tag.Tag, limit int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindTagOverflow,
		Node:   node,
		Attr:   attr,
		Detail: fmt.Sprintf("too many unique attribute tags (max %d)", limit),
		Value:  limit,
	}
}

// HeaderTooSmall creates a reader error for a buffer shorter than the stream header
func HeaderTooSmall(size, want int) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindHeaderTooSmall,
		Detail: fmt.Sprintf("buffer holds %d bytes, header needs %d", size, want),
		Value:  size,
	}
}

// MagicMismatch creates a reader error for a foreign buffer
func MagicMismatch(got []byte) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindMagicMismatch,
		Detail: fmt.Sprintf("unexpected magic %q", got),
	}
}

// Wrap attaches phase and kind to an error from outside the package.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
