package hal

import "arcade/event"

// RawEventKind identifies a host event.
type RawEventKind uint8

const (
	RawQuit RawEventKind = iota + 1
	RawKeyDown
	RawKeyUp
	RawResize
	RawTextInput
	RawMouseMotion
	RawMouseButtonDown
	RawMouseButtonUp
	RawMouseWheel

	// Emitted by hosts but not part of the normalized stream.
	RawFocusGained
	RawFocusLost
	RawExposed
)

// RawEvent is a host event as it comes off the queue. Only the fields
// meaningful to Kind are set.
type RawEvent struct {
	Kind RawEventKind

	Key         int
	Scancode    int
	HasScancode bool
	Mod         event.Mod
	Repeat      bool

	Width, Height int

	Text string

	X, Y   int
	DX, DY int
	Button int

	WheelX, WheelY int
}
