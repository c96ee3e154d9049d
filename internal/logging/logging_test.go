// Package logging provides tests for session logs and tail output.
package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// TestNewRunLogger tests creating a new run logger.
func TestNewRunLogger(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		logger, err := NewRunLogger(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer logger.Close()

		if logger.RunID == "" {
			t.Error("expected RunID to be set")
		}
		if !strings.HasSuffix(logger.LogPath, LogExt) {
			t.Errorf("expected %s suffix, got %s", LogExt, logger.LogPath)
		}
		if _, err := os.Stat(logger.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewRunLogger("")
		if err == nil {
			t.Fatal("expected error for empty base dir, got nil")
		}
		if !strings.Contains(err.Error(), "empty") {
			t.Errorf("expected empty dir error, got %v", err)
		}
	})

	t.Run("creates log directory if missing", func(t *testing.T) {
		newLogDir := filepath.Join(t.TempDir(), "new-logs", "nested")

		logger, err := NewRunLogger(newLogDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(newLogDir); err != nil {
			t.Errorf("log directory not created: %v", err)
		}
	})
}

// TestRunLoggerWriter tests writing through a charmbracelet logger into the run log.
func TestRunLoggerWriter(t *testing.T) {
	runLog, err := NewRunLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer runLog.Close()

	opts := OptionsFromConfig("debug", "json", false, false)
	logger := New(runLog.Writer(), opts)
	logger.Debug("intent applied", "kind", "add", "tasks", 1)

	content, err := os.ReadFile(runLog.LogPath)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, want := range []string{`"msg":"intent applied"`, `"kind":"add"`} {
		if !bytes.Contains(content, []byte(want)) {
			t.Errorf("expected log to contain %s, got %s", want, content)
		}
	}
}

// TestRunLoggerClose tests closing the logger.
func TestRunLoggerClose(t *testing.T) {
	t.Run("close valid logger", func(t *testing.T) {
		logger, err := NewRunLogger(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if err := logger.Close(); err != nil {
			t.Errorf("close failed: %v", err)
		}
	})

	t.Run("close nil logger", func(t *testing.T) {
		var logger *RunLogger
		if err := logger.Close(); err != nil {
			t.Errorf("close nil logger failed: %v", err)
		}
	})

	t.Run("close logger with nil file", func(t *testing.T) {
		logger := &RunLogger{file: nil}
		if err := logger.Close(); err != nil {
			t.Errorf("close logger with nil file failed: %v", err)
		}
	})
}

func TestRunID(t *testing.T) {
	id := runID()
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected timestamp-time-pid, got %q", id)
	}
	if len(parts[0]) != 8 || len(parts[1]) != 6 {
		t.Errorf("unexpected timestamp layout in %q", id)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"chatty", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		in   string
		want log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"", log.TextFormatter},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormatter(tt.in); got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, OptionsFromConfig("warn", "logfmt", false, false))
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}

	Discard().Error("nothing")
}

func writeLog(t *testing.T, dir, name, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindLatestLog(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		got, err := FindLatestLog(filepath.Join(t.TempDir(), "nope"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})

	t.Run("picks newest log file", func(t *testing.T) {
		dir := t.TempDir()
		now := time.Now()
		writeLog(t, dir, "20240101-000000-1.log", "old\n", now.Add(-2*time.Hour))
		newest := writeLog(t, dir, "20240102-000000-2.log", "new\n", now.Add(-time.Hour))
		writeLog(t, dir, "notes.txt", "ignored\n", now)
		if err := os.Mkdir(filepath.Join(dir, "sub.log"), 0755); err != nil {
			t.Fatal(err)
		}

		got, err := FindLatestLog(dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != newest {
			t.Errorf("got %q, want %q", got, newest)
		}

		logs, err := ListLogs(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) != 2 {
			t.Fatalf("expected 2 logs, got %d", len(logs))
		}
		if logs[0].Size != int64(len("new\n")) {
			t.Errorf("unexpected size %d", logs[0].Size)
		}
	})
}

func TestTailLog(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "run.log", "one\ntwo\nthree\nfour\n", time.Now())

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"all lines", 0, "one\ntwo\nthree\nfour\n"},
		{"last two", 2, "three\nfour\n"},
		{"more than available", 10, "one\ntwo\nthree\nfour\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := TailLog(context.Background(), &buf, path, tt.n, false); err != nil {
				t.Fatalf("TailLog: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := TailLog(context.Background(), &bytes.Buffer{}, filepath.Join(dir, "gone.log"), 0, false)
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

// lockedBuffer is a bytes.Buffer safe for one writer and one reader.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTailLogFollow(t *testing.T) {
	orig := pollInterval
	pollInterval = 5 * time.Millisecond
	t.Cleanup(func() { pollInterval = orig })

	path := writeLog(t, t.TempDir(), "run.log", "first\n", time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &lockedBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- TailLog(ctx, out, path, 0, true)
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "second") {
		if time.Now().After(deadline) {
			t.Fatalf("followed output never picked up appended line: %q", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("TailLog returned %v after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TailLog did not stop after cancel")
	}

	if got := out.String(); got != "first\nsecond\n" {
		t.Errorf("got %q", got)
	}
}
