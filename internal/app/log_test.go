package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSvmHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		op      string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			op:      "add",
			level:   slog.LevelInfo,
			message: "student added",
			want:    "2024-06-15T14:30:45Z\tINFO\tadd\tstudent added\n",
		},
		{
			name:    "warn level",
			op:      "list",
			level:   slog.LevelWarn,
			message: "loading document failed, seeding sample data",
			want:    "2024-06-15T14:30:45Z\tWARN\tlist\tloading document failed, seeding sample data\n",
		},
		{
			name:    "with record attrs",
			op:      "delete",
			level:   slog.LevelInfo,
			message: "student deleted",
			attrs:   []slog.Attr{slog.String("id", "SV003"), slog.Int("remaining", 9)},
			want:    "2024-06-15T14:30:45Z\tINFO\tdelete\tstudent deleted\tid=SV003\tremaining=9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &svmHandler{w: &buf, op: tt.op}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestSvmHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &svmHandler{w: &buf, op: "add"}

	// Add pre-set attrs
	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "store")}).(*svmHandler)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "document saved", 0)
	r.AddAttrs(slog.String("count", "10"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=store") {
		t.Errorf("expected pre-set attr component=store, got: %q", got)
	}
	if !strings.Contains(got, "count=10") {
		t.Errorf("expected record attr count=10, got: %q", got)
	}
}

func TestSvmHandler_WithAttrs_doesNotMutateOriginal(t *testing.T) {
	var buf bytes.Buffer
	h := &svmHandler{w: &buf, op: "add", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*svmHandler)

	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}
	if len(h2.attrs) != 2 {
		t.Errorf("new handler attrs: got %d, want 2", len(h2.attrs))
	}
}

func TestSvmHandler_Enabled(t *testing.T) {
	h := &svmHandler{}
	// All levels should be enabled
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false, want true", level)
		}
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := newLogger(dir, "list")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	if logger == nil {
		t.Fatal("newLogger() returned nil logger")
	}
	if f == nil {
		t.Fatal("newLogger() returned nil file")
	}
}
