package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/histream/tag"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindBadAlign,
				Node:   tag.Must("nod1"),
				Attr:   tag.Must("data"),
				Detail: "alignment must be a power of two",
			},
			contains: []string{"[write]", "bad_align", "node=nod1", "attr=data", "power of two"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFinalize,
				Kind:  KindHierarchyCorrupted,
			},
			contains: []string{"[finalize]", "hierarchy_corrupted"},
		},
		{
			name: "attr only",
			err: &Error{
				Phase: PhaseWrite,
				Kind:  KindTagOverflow,
				Attr:  tag.Must("t255"),
			},
			contains: []string{"(attr=t255)"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindNoMem,
				Detail: "arena full",
				Cause:  stderrors.New("budget exhausted"),
			},
			contains: []string{"[alloc]", "no_mem", "arena full", "caused by", "budget exhausted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := AllocationFailed(1024, 64, cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if Unwrap(err) != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := BadLayout(tag.Must("nod1"), tag.Must("dawl"), "record size %d", 12)

	if !Is(err, ErrBadLayout) {
		t.Error("Is should match the kind sentinel")
	}
	if Is(err, ErrBadAlign) {
		t.Error("Is should not match a different kind")
	}
	if !err.Is(&Error{Phase: PhaseWrite, Kind: KindBadLayout}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseRead, Kind: KindBadLayout}) {
		t.Error("Is should not match a different phase")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !stderrors.Is(wrapped, ErrBadLayout) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(HierarchyOverflow(tag.Must("deep"), 24)); got != KindHierarchyOverflow {
		t.Errorf("got %q, want %q", got, KindHierarchyOverflow)
	}
	if got := KindOf(stderrors.New("plain")); got != "" {
		t.Errorf("got %q for a foreign error, want empty", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("got %q for nil, want empty", got)
	}
}

func TestBuilder(t *testing.T) {
	cause := stderrors.New("root")
	err := New(PhaseWrite, KindDataOverflow).
		Node(tag.Must("nod2")).
		Attr(tag.Must("u64a")).
		Value(uint64(1) << 33).
		Cause(cause).
		Detail("distance %d too large", 300).
		Build()

	if err.Phase != PhaseWrite {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseWrite)
	}
	if err.Kind != KindDataOverflow {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDataOverflow)
	}
	if err.Node != tag.Must("nod2") || err.Attr != tag.Must("u64a") {
		t.Errorf("tags = %s/%s, want nod2/u64a", err.Node, err.Attr)
	}
	if err.Detail != "distance 300 too large" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("Cause not set")
	}

	plain := New(PhaseRead, KindMagicMismatch).Detail("foreign {magic} header").Build()
	if plain.Detail != "foreign {magic} header" {
		t.Errorf("Detail without args should be kept verbatim, got %q", plain.Detail)
	}

	percent := New(PhaseRead, KindMagicMismatch).Detail("%s", "100% foreign").Build()
	if percent.Detail != "100% foreign" {
		t.Errorf("Detail with args: got %q", percent.Detail)
	}
}

func TestConstructors(t *testing.T) {
	n, a := tag.Must("node"), tag.Must("attr")
	tests := []struct {
		err  *Error
		kind Kind
	}{
		{AllocationFailed(1, 1, nil), KindNoMem},
		{AttributeOverflow(n, a, 1<<33, 1<<32), KindDataOverflow},
		{OffsetOverflow(n, "sibling", 1<<33, 1<<32), KindDataOverflow},
		{AttrChildOrder(n, a), KindAttrChildOrder},
		{HierarchyOverflow(n, 24), KindHierarchyOverflow},
		{HierarchyCorrupted(PhaseFinalize, n, "pushChild/popChild mismatch"), KindHierarchyCorrupted},
		{BadLayout(n, a, "too many layout items"), KindBadLayout},
		{BadAlign(n, a, 3, "not a power of two"), KindBadAlign},
		{TagOverflow(n, a, 256), KindTagOverflow},
		{HeaderTooSmall(3, 16), KindHeaderTooSmall},
		{MagicMismatch([]byte("garbage!")), KindMagicMismatch},
		{Wrap(PhaseAlloc, KindNoMem, nil, "grow"), KindNoMem},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("got %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}
