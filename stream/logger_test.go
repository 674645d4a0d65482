package stream

import (
	"testing"

	"github.com/wippyai/histream/tag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriterLogsFirstErrorAndSkips(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWriter(Options{Logger: zap.New(core)})

	w.Begin()
	w.PushChild(tag.Must("prnt"))
	w.PushChild(tag.Must("chld"))
	w.PopChild()
	w.AddU8(tag.Must("late"), 1)
	w.AddU8(tag.Must("skip"), 2)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("error entries: got %d, want 1", len(errs))
	}
	fields := errs[0].ContextMap()
	if fields["kind"] != "attr_child_order" || fields["node"] != "prnt" || fields["attr"] != "late" {
		t.Errorf("error fields: got %v", fields)
	}

	skipped := logs.FilterMessage("writer call skipped after error").All()
	if len(skipped) != 1 {
		t.Fatalf("skip entries: got %d, want 1", len(skipped))
	}
	if skipped[0].ContextMap()["op"] != "AddU8" {
		t.Errorf("skipped op: got %v", skipped[0].ContextMap()["op"])
	}
}

func TestArenaGrowthIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWriter(Options{Logger: zap.New(core), PageSize: 64})
	w.Begin()
	w.AddU8Array(tag.Must("u8ar"), make([]uint8, 200))
	w.End()

	if n := logs.FilterMessage("arena grown").Len(); n < 2 {
		t.Errorf("growth entries: got %d, want at least 2", n)
	}
	if logs.FilterMessage("stream finalized").Len() != 1 {
		t.Error("finalize should be logged once")
	}
}

func TestPackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	w := NewWriterWithDefaults()
	w.PopChild()
	if logs.Len() != 1 {
		t.Errorf("package logger entries: got %d, want 1", logs.Len())
	}
}
