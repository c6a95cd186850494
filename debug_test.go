package tilt

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewSurface("child", 10, 10)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	child := NewSurface("child", 10, 10)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_OffNoPanic(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(false)

	child := NewSurface("child", 10, 10)
	child.Dispose()
	// Without debug mode the disposed node is added silently.
	s.Root().AddChild(child)
}

// captureStderr runs fn and returns what it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_TickLog(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)
	if _, err := Attach(s, card); err != nil {
		t.Fatal(err)
	}

	output := captureStderr(t, func() {
		s.InjectMove(50, 50)
		s.Step(0.25)
	})
	if !strings.Contains(output, "[tilt]") || !strings.Contains(output, "hover: card") {
		t.Errorf("expected tick log in stderr, got: %q", output)
	}
	if !strings.Contains(output, "frames: 1") {
		t.Errorf("expected one frame in tick log, got: %q", output)
	}
}

func TestDebugMode_IdleTickSilent(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		s.Step(0.25)
	})
	if output != "" {
		t.Errorf("idle tick should not log, got: %q", output)
	}
}

func TestDebugMode_SubscribeNonNodeWarns(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		s.Subscribe(&fakeSurface{}, EventPointerEnter, func(PointerEvent) {})
	})
	if !strings.Contains(output, "not a scene node") {
		t.Errorf("expected warning, got: %q", output)
	}
}
