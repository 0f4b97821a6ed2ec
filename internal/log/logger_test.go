package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_WritesWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("state file unreadable", "path", "grade_level_data.yml")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "state file unreadable") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestDebug_DroppedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("tokenized", "sentences", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if strings.Contains(buf.String(), "tokenized") {
		t.Errorf("expected no debug output, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	if err := l.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
