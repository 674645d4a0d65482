package stream

import (
	"github.com/wippyai/histream"
	"github.com/wippyai/histream/arena"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the default bound on the node stack, root included.
const DefaultMaxDepth = 24

// Options configures a Writer. Zero fields fall back to DefaultOptions.
type Options struct {
	// Allocator provides the arena blocks. The caller releases a taken
	// buffer through the same allocator.
	Allocator histream.Allocator
	// Logger receives error and debug records. Defaults to the package logger.
	Logger *zap.Logger
	// PageSize is the arena growth granularity in bytes.
	PageSize uint32
	// MaxDepth bounds node nesting, counting the root node.
	MaxDepth int
}

// DefaultOptions returns the default writer configuration.
func DefaultOptions() Options {
	return Options{
		Allocator: arena.HeapAllocator{},
		PageSize:  arena.DefaultPageSize,
		MaxDepth:  DefaultMaxDepth,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Allocator == nil {
		o.Allocator = d.Allocator
	}
	if o.PageSize == 0 {
		o.PageSize = d.PageSize
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = d.MaxDepth
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	return o
}
