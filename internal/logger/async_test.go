package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a goroutine-safe bytes.Buffer for capturing log output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncHandlerDeliversRecords(t *testing.T) {
	var buf syncBuffer
	inner := slog.NewJSONHandler(&buf, nil)
	h := NewAsyncHandler(inner, 16, 1)

	l := slog.New(h)
	l.Info("hello", "k", "v")
	h.Close()

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected record in output, got %q", out)
	}
	if h.DroppedCount() != 0 {
		t.Errorf("expected no drops, got %d", h.DroppedCount())
	}
}

func TestAsyncHandlerDropsWhenFull(t *testing.T) {
	var buf syncBuffer
	inner := slog.NewJSONHandler(&buf, nil)

	// Zero workers: nothing drains, so a full channel must drop.
	h := NewAsyncHandler(inner, 1, 0)

	rec := slog.Record{Level: slog.LevelInfo, Message: "m"}
	_ = h.Handle(context.Background(), rec)
	_ = h.Handle(context.Background(), rec)

	if h.DroppedCount() != 1 {
		t.Errorf("expected 1 dropped record, got %d", h.DroppedCount())
	}
	close(h.ch)
}

func TestAsyncHandlerWithAttrsSharesChannel(t *testing.T) {
	var buf syncBuffer
	inner := slog.NewJSONHandler(&buf, nil)
	h := NewAsyncHandler(inner, 16, 1)

	child, ok := h.WithAttrs([]slog.Attr{slog.String("svc", "test")}).(*AsyncHandler)
	if !ok {
		t.Fatal("expected *AsyncHandler from WithAttrs")
	}

	slog.New(child).Info("attributed")
	h.Close()

	out := buf.String()
	if !strings.Contains(out, "attributed") || !strings.Contains(out, "svc") {
		t.Errorf("expected attributed record, got %q", out)
	}
}
