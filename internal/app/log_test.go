package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLineHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		runID   string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			runID:   "run-123",
			level:   slog.LevelInfo,
			message: "post created",
			want:    "2024-06-15T14:30:45Z\tINFO\trun-123\tpost created\n",
		},
		{
			name:    "debug level",
			runID:   "run-456",
			level:   slog.LevelDebug,
			message: "checking window",
			want:    "2024-06-15T14:30:45Z\tDEBUG\trun-456\tchecking window\n",
		},
		{
			name:    "with record attrs",
			runID:   "run-789",
			level:   slog.LevelInfo,
			message: "vote recorded",
			attrs:   []slog.Attr{slog.Int64("post", 7), slog.Int("trend", 10)},
			want:    "2024-06-15T14:30:45Z\tINFO\trun-789\tvote recorded\tpost=7\ttrend=10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newLineHandler(tt.runID, logSink{w: &buf, min: slog.LevelDebug})

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

func TestLineHandler_SinkLevels(t *testing.T) {
	var all, warn bytes.Buffer
	h := newLineHandler("run-1",
		logSink{w: &all, min: slog.LevelDebug},
		logSink{w: &warn, min: slog.LevelWarn},
	)
	logger := slog.New(h)

	logger.Info("routine")
	logger.Warn("media cleanup failed", "key", "posts/a.png")

	if n := strings.Count(all.String(), "\n"); n != 2 {
		t.Errorf("debug sink got %d lines, want 2: %q", n, all.String())
	}
	if strings.Contains(warn.String(), "routine") {
		t.Errorf("warn sink received info record: %q", warn.String())
	}
	if !strings.Contains(warn.String(), "key=posts/a.png") {
		t.Errorf("warn sink missing warning: %q", warn.String())
	}
}

func TestLineHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := newLineHandler("run-1", logSink{w: &buf, min: slog.LevelDebug})

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "media")}).(*lineHandler)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "upload", 0)
	r.AddAttrs(slog.String("key", "abc"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=media") {
		t.Errorf("expected pre-set attr component=media, got: %q", got)
	}
	if !strings.Contains(got, "key=abc") {
		t.Errorf("expected record attr key=abc, got: %q", got)
	}

	if len(h.attrs) != 0 {
		t.Errorf("original handler attrs modified: got %d, want 0", len(h.attrs))
	}
}

func TestLineHandler_Enabled(t *testing.T) {
	h := newLineHandler("run-1", logSink{w: &bytes.Buffer{}, min: slog.LevelInfo})

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(DEBUG) = true, want false")
	}
	for _, level := range []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false, want true", level)
		}
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := newLogger(dir, "test-run")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	logger.Info("hello", "user", "alice")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "test-run\thello\tuser=alice") {
		t.Errorf("log file = %q, want line with run id and attrs", data)
	}
}
