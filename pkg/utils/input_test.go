package utils

import (
	"testing"
)

func TestPointerTrackerMouse(t *testing.T) {
	tracker := NewPointerTracker()

	steps := []struct {
		name   string
		sample PointerSample
		want   PointerEvent
	}{
		{"悬停", PointerSample{X: 5, Y: 5}, PointerEvent{Phase: PointerIdle, X: 5, Y: 5}},
		{"按下", PointerSample{Pressed: true, X: 10, Y: 20}, PointerEvent{Phase: PointerDown, X: 10, Y: 20}},
		{"按住不动", PointerSample{Pressed: true, X: 10, Y: 20}, PointerEvent{Phase: PointerIdle, X: 10, Y: 20}},
		{"移动", PointerSample{Pressed: true, X: 15, Y: 22}, PointerEvent{Phase: PointerMove, X: 15, Y: 22}},
		{"释放", PointerSample{X: 16, Y: 23}, PointerEvent{Phase: PointerUp, X: 16, Y: 23}},
		{"释放后悬停", PointerSample{X: 30, Y: 30}, PointerEvent{Phase: PointerIdle, X: 30, Y: 30}},
	}

	for _, step := range steps {
		got := tracker.Feed(step.sample)
		if got != step.want {
			t.Errorf("%s: got %+v, want %+v", step.name, got, step.want)
		}
	}
}

func TestPointerTrackerTouchReleaseUsesLastPosition(t *testing.T) {
	tracker := NewPointerTracker()

	tracker.Feed(PointerSample{Pressed: true, X: 100, Y: 200, Touch: true, TouchID: 3})
	tracker.Feed(PointerSample{Pressed: true, X: 120, Y: 210, Touch: true, TouchID: 3})

	if !tracker.IsDown() {
		t.Fatal("Expected tracker to be down")
	}

	// 触摸释放时采样位置为 0
	got := tracker.Feed(PointerSample{Touch: true, TouchID: 3})
	want := PointerEvent{Phase: PointerUp, X: 120, Y: 210}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if tracker.IsDown() {
		t.Error("Expected tracker to be released")
	}
}

func TestPointerTrackerReset(t *testing.T) {
	tracker := NewPointerTracker()
	tracker.Feed(PointerSample{Pressed: true, X: 1, Y: 1})
	tracker.Reset()

	if tracker.IsDown() {
		t.Error("Expected tracker to be idle after reset")
	}
	got := tracker.Feed(PointerSample{Pressed: true, X: 2, Y: 2})
	if got.Phase != PointerDown {
		t.Errorf("Expected PointerDown after reset, got %v", got.Phase)
	}
}
