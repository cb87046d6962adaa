package backend

import (
	"io"
	"testing"
)

var _ Backend = (*NullBackend)(nil)

func TestNullBackendStartStop(t *testing.T) {
	b := NewNullBackend(24, 80)
	if err := b.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !b.Started() {
		t.Error("expected started")
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if b.Started() {
		t.Error("expected stopped")
	}

	rows, cols, err := b.Size()
	if err != nil || rows != 24 || cols != 80 {
		t.Errorf("expected size (24, 80), got (%d, %d, %v)", rows, cols, err)
	}
}

func TestNullBackendRead(t *testing.T) {
	b := NewNullBackend(24, 80, "ab", "cde")

	p := make([]byte, 2)
	want := []string{"ab", "cd", "e"}
	for _, w := range want {
		n, err := b.Read(p)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if got := string(p[:n]); got != w {
			t.Errorf("expected %q, got %q", w, got)
		}
	}

	if _, err := b.Read(p); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNullBackendWrites(t *testing.T) {
	b := NewNullBackend(24, 80)
	buf := []byte("frame1")
	b.Write(buf)
	buf[0] = 'X'
	b.Write([]byte("frame2"))

	writes := b.Writes()
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writes))
	}
	if string(writes[0]) != "frame1" {
		t.Errorf("write was not copied: %q", writes[0])
	}
	if got := b.Output(); got != "frame1frame2" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(24, 80)

	called := 0
	b.OnResize(func() { called++ })
	b.Resize(30, 100)

	if called != 1 {
		t.Errorf("expected resize callback once, got %d", called)
	}
	rows, cols, _ := b.Size()
	if rows != 30 || cols != 100 {
		t.Errorf("expected size (30, 100), got (%d, %d)", rows, cols)
	}
}
