package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("info")

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn) = %v", err)
	}

	InfoLog.Printf("hidden %d\n", 1)
	WarnLog.Printf("shown %d\n", 2)
	ErrLog.Println("also", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}

	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "also shown") {
		t.Errorf("missing warn/error lines: %q", out)
	}

	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestWithKeyvals(t *testing.T) {

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	InfoLog.With("resized", "width", 800, "height", 600)

	out := buf.String()
	if !strings.Contains(out, "width=800") || !strings.Contains(out, "height=600") {
		t.Errorf("keyvals missing from %q", out)
	}
}

func TestSetLevelInvalid(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
