package hotreload

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewErrors(t *testing.T) {

	if _, err := New(nil, 0, func() {}); err == nil {
		t.Error("expected error with no paths")
	}

	if _, err := New([]string{"a.glsl"}, 0, nil); err == nil {
		t.Error("expected error with nil callback")
	}

	missing := filepath.Join(t.TempDir(), "nope", "a.glsl")
	if _, err := New([]string{missing}, 0, func() {}); err == nil {
		t.Error("expected error watching a missing directory")
	}
}

func TestChangeIsReported(t *testing.T) {

	dir := t.TempDir()
	vert := filepath.Join(dir, "pyramid.vert.glsl")
	writeFile(t, vert, "v1")

	changed := make(chan struct{}, 8)
	w, err := New([]string{vert}, 20*time.Millisecond, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, vert, "v2")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestBurstIsDebounced(t *testing.T) {

	dir := t.TempDir()
	frag := filepath.Join(dir, "pyramid.frag.glsl")
	writeFile(t, frag, "f0")

	var calls atomic.Int32
	w, err := New([]string{frag}, 200*time.Millisecond, func() { calls.Add(1) })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		writeFile(t, frag, "f")
	}

	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	// Give a second callback room to show up if the burst wasn't coalesced
	time.Sleep(400 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("got %d callbacks for one burst, want 1", got)
	}
}

func TestUnwatchedFileIsIgnored(t *testing.T) {

	dir := t.TempDir()
	vert := filepath.Join(dir, "pyramid.vert.glsl")
	other := filepath.Join(dir, "notes.txt")
	writeFile(t, vert, "v1")

	var calls atomic.Int32
	w, err := New([]string{vert}, 20*time.Millisecond, func() { calls.Add(1) })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, other, "hello")
	time.Sleep(300 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("got %d callbacks for an unwatched file, want 0", got)
	}
}

func TestCloseTwice(t *testing.T) {

	dir := t.TempDir()
	vert := filepath.Join(dir, "a.glsl")
	writeFile(t, vert, "v")

	w, err := New([]string{vert}, 0, func() {})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
