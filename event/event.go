// Package event defines the normalized, platform-independent input events
// produced by the input port once per poll.
//
// Event is a closed set of variants. Consumers switch on the concrete type
// (or on Type()) and never look at host-specific event shapes.
package event

// Type identifies an event variant.
type Type uint8

const (
	TypeQuit Type = iota + 1
	TypeKeyDown
	TypeKeyUp
	TypeWindowResized
	TypeTextInput
	TypeMouseMotion
	TypeMouseButtonDown
	TypeMouseButtonUp
	TypeMouseWheel
)

var typeNames = [...]string{
	TypeQuit:            "quit",
	TypeKeyDown:         "keydown",
	TypeKeyUp:           "keyup",
	TypeWindowResized:   "windowresized",
	TypeTextInput:       "textinput",
	TypeMouseMotion:     "mousemotion",
	TypeMouseButtonDown: "mousebuttondown",
	TypeMouseButtonUp:   "mousebuttonup",
	TypeMouseWheel:      "mousewheel",
}

func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "unknown"
}

// Event is implemented only by the variants in this package.
type Event interface {
	Type() Type
	sealed()
}

// Quit asks the game loop to terminate.
type Quit struct{}

// Key is a key press or release.
//
// Key is KeyNone when the raw code has no logical mapping; Code always
// carries the host key code so unmapped keys stay observable.
type Key struct {
	Down        bool
	Key         KeyCode
	Code        int
	Scancode    int
	HasScancode bool
	Mod         Mod
	Repeat      bool
}

// WindowResized reports the new window size in physical pixels.
type WindowResized struct {
	Width  int
	Height int
}

// TextInput carries committed text.
type TextInput struct {
	Text string
}

// MouseMotion carries the absolute cursor position and the delta since the
// previous motion event.
type MouseMotion struct {
	X, Y   int
	DX, DY int
}

// MouseButton is a button press or release at a position.
type MouseButton struct {
	Down   bool
	Button int
	X, Y   int
}

// MouseWheel carries a scroll delta.
type MouseWheel struct {
	X, Y int
}

func (Quit) Type() Type          { return TypeQuit }
func (WindowResized) Type() Type { return TypeWindowResized }
func (TextInput) Type() Type     { return TypeTextInput }
func (MouseMotion) Type() Type   { return TypeMouseMotion }
func (MouseWheel) Type() Type    { return TypeMouseWheel }

func (k Key) Type() Type {
	if k.Down {
		return TypeKeyDown
	}
	return TypeKeyUp
}

func (b MouseButton) Type() Type {
	if b.Down {
		return TypeMouseButtonDown
	}
	return TypeMouseButtonUp
}

func (Quit) sealed()          {}
func (Key) sealed()           {}
func (WindowResized) sealed() {}
func (TextInput) sealed()     {}
func (MouseMotion) sealed()   {}
func (MouseButton) sealed()   {}
func (MouseWheel) sealed()    {}
