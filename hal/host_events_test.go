package hal

import (
	"context"
	"testing"
	"time"

	"arcade/event"
)

func TestEventQueueDrainFIFO(t *testing.T) {
	q := newHostEventQueue()
	if got := q.Drain(nil); len(got) != 0 {
		t.Fatalf("Drain on empty queue = %v, want empty", got)
	}

	q.push(RawEvent{Kind: RawQuit})
	q.push(RawEvent{Kind: RawKeyDown, Key: HIDKeyEscape})
	q.push(RawEvent{Kind: RawTextInput, Text: "a"})

	got := q.Drain(nil)
	want := []RawEventKind{RawQuit, RawKeyDown, RawTextInput}
	if len(got) != len(want) {
		t.Fatalf("Drain() len = %d, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("Drain()[%d].Kind = %d, want %d", i, got[i].Kind, k)
		}
	}
	if again := q.Drain(nil); len(again) != 0 {
		t.Fatalf("second Drain() = %v, want empty", again)
	}
}

func TestEventQueueDropsOldestWhenFull(t *testing.T) {
	q := newHostEventQueue()
	for i := 0; i < hostEventQueueCap+3; i++ {
		q.push(RawEvent{Kind: RawMouseMotion, X: i})
	}
	got := q.Drain(nil)
	if len(got) != hostEventQueueCap {
		t.Fatalf("Drain() len = %d, want %d", len(got), hostEventQueueCap)
	}
	if got[0].X != 3 {
		t.Fatalf("oldest kept X = %d, want 3", got[0].X)
	}
	if q.droppedCount() != 3 {
		t.Fatalf("droppedCount() = %d, want 3", q.droppedCount())
	}
}

func TestHIDKeyTable(t *testing.T) {
	tests := []struct {
		code int
		want event.KeyCode
	}{
		{HIDKeyEscape, event.KeyEscape},
		{HIDKeyA, event.KeyA},
		{HIDKeyA + 25, event.KeyZ},
		{HIDKey1, event.KeyNum1},
		{HIDKey0, event.KeyNum0},
		{HIDKeyF1 + 11, event.KeyF12},
		{HIDKeyUp, event.KeyUp},
	}
	table := HIDKeyTable()
	for _, tt := range tests {
		if got := table[tt.code]; got != tt.want {
			t.Errorf("HIDKeyTable()[%#x] = %v, want %v", tt.code, got, tt.want)
		}
	}
	if _, ok := table[HIDKeyLeftShift]; ok {
		t.Errorf("left shift should not be mapped")
	}
}

func TestMemoryHost(t *testing.T) {
	m := NewMemory(8, 8)
	m.Push(RawEvent{Kind: RawQuit}, RawEvent{Kind: RawFocusLost})
	if got := m.Input().Events().Drain(nil); len(got) != 2 {
		t.Fatalf("Drain() len = %d, want 2", len(got))
	}

	if m.Front() != nil {
		t.Fatal("Front() before Present should be nil")
	}
	fb := m.Display().Framebuffer()
	fb.ClearRGB(5, 6, 7)
	_ = fb.Present()
	if m.Presents() != 1 {
		t.Fatalf("Presents() = %d, want 1", m.Presents())
	}
	if front := m.Front(); front == nil || front[0] != 5 {
		t.Fatalf("Front()[0] = %v, want 5", front)
	}

	m.Window().Resize(3, 2)
	if w, h := m.Window().Size(); w != 3 || h != 2 {
		t.Fatalf("Size() after Resize = %dx%d, want 3x2", w, h)
	}
	if fb := m.Display().Framebuffer(); fb.Width() != 3 {
		t.Fatalf("framebuffer width after Resize = %d, want 3", fb.Width())
	}
}

func TestRunHeadlessStopsOnQuit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	steps := 0
	err := RunHeadless(ctx, func(h HAL) func() error {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessTickLimit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	steps := 0
	err := RunHeadless(ctx, func(h HAL) func() error {
		if w, _ := h.Window().Size(); w != 800 {
			t.Errorf("default width = %d, want 800", w)
		}
		return func() error { steps++; return nil }
	}, HeadlessConfig{Hz: 1000, Ticks: 4})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 4 {
		t.Fatalf("steps = %d, want 4", steps)
	}
}
