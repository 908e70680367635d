package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := sonic.UnmarshalString(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept", "player", "Stephen Curry", "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0]["msg"] != "kept" {
		t.Fatalf("unexpected msg: %v", lines[0]["msg"])
	}
	if lines[0]["player"] != "Stephen Curry" {
		t.Fatalf("unexpected player field: %v", lines[0]["player"])
	}
	if lines[0]["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", lines[0]["error"])
	}
}

func TestLogContext_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "with trace")
	logger.InfoContext(context.Background(), "without trace")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["trace_id"] != traceID.String() || lines[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", lines[0])
	}
	if _, ok := lines[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace_id without span: %v", lines[1])
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields(LevelInfo, []any{"a", 1, 2, "b", "dangling"})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("non-string key should fall back to arg, got %q", fields[1].Key)
	}
	if fields[2].Key != "dangling" {
		t.Fatalf("expected dangling key, got %q", fields[2].Key)
	}
}

func TestDefault_NilResetsToNop(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)
	if Default() == nil {
		t.Fatalf("default logger must never be nil")
	}
	var nilLogger *Logger
	nilLogger.Info("no panic")
}

// joinedError mimics an engine error that wraps a sentinel and a cause.
type joinedError struct {
	cause error
}

func (e *joinedError) Error() string   { return "engine: " + e.cause.Error() }
func (e *joinedError) Unwrap() []error { return []error{errors.New("sentinel"), e.cause} }

func TestErrorFields_StackOnlyAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)
	err := &joinedError{cause: crerr.WithStack(errors.New("row 12 unreadable"))}

	logger.Warn("warned", "error", err)
	logger.Error("failed", "error", err)

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["error"] != "engine: row 12 unreadable" {
		t.Fatalf("unexpected error field: %v", lines[0]["error"])
	}
	if _, ok := lines[0]["error_stack"]; ok {
		t.Fatalf("warn line must not carry a stack: %v", lines[0])
	}

	stack, ok := lines[1]["error_stack"].(string)
	if !ok {
		t.Fatalf("error line missing error_stack: %v", lines[1])
	}
	if !strings.Contains(stack, "row 12 unreadable") || !strings.Contains(stack, "logger_test.go") {
		t.Fatalf("stack does not point at the origin: %s", stack)
	}
}

func TestErrorFields_PlainErrorHasNoStack(t *testing.T) {
	fields := errorFields(LevelError, "error", errors.New("plain"))
	if len(fields) != 1 {
		t.Fatalf("expected only the message field, got %d", len(fields))
	}
}
