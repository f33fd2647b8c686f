//go:build cgo

package hal

import (
	"arcade/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyboard turns ebiten's polled input state into raw events, once per
// tick. Despite the name it also covers the mouse and window state.
type hostKeyboard struct {
	q *hostEventQueue

	repeatDelay    int
	repeatInterval int

	keys  []ebiten.Key
	chars []rune

	havePos      bool
	lastX, lastY int
	wheelX       float64
	wheelY       float64

	focused bool
	closing bool
}

func newHostKeyboard(q *hostEventQueue, cfg WindowConfig) *hostKeyboard {
	return &hostKeyboard{
		q:              q,
		repeatDelay:    cfg.KeyRepeatDelay,
		repeatInterval: cfg.KeyRepeatInterval,
		focused:        true,
	}
}

var hostMouseButtons = [...]struct {
	b  ebiten.MouseButton
	id int
}{
	{ebiten.MouseButtonLeft, 1},
	{ebiten.MouseButtonMiddle, 2},
	{ebiten.MouseButtonRight, 3},
}

func (k *hostKeyboard) poll() {
	if ebiten.IsWindowBeingClosed() && !k.closing {
		k.closing = true
		k.q.push(RawEvent{Kind: RawQuit})
	}

	if focused := ebiten.IsFocused(); focused != k.focused {
		k.focused = focused
		if focused {
			k.q.push(RawEvent{Kind: RawFocusGained})
		} else {
			k.q.push(RawEvent{Kind: RawFocusLost})
		}
	}

	mod := currentMod()

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		k.q.push(RawEvent{Kind: RawKeyDown, Key: int(key), Mod: mod})
	}

	if k.repeatDelay > 0 {
		k.keys = inpututil.AppendPressedKeys(k.keys[:0])
		for _, key := range k.keys {
			d := inpututil.KeyPressDuration(key)
			if d > k.repeatDelay && (d-k.repeatDelay)%k.repeatInterval == 0 {
				k.q.push(RawEvent{Kind: RawKeyDown, Key: int(key), Mod: mod, Repeat: true})
			}
		}
	}

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		k.q.push(RawEvent{Kind: RawKeyUp, Key: int(key), Mod: mod})
	}

	k.chars = ebiten.AppendInputChars(k.chars[:0])
	if len(k.chars) > 0 {
		k.q.push(RawEvent{Kind: RawTextInput, Text: string(k.chars)})
	}

	x, y := ebiten.CursorPosition()
	if !k.havePos {
		k.havePos = true
	} else if x != k.lastX || y != k.lastY {
		k.q.push(RawEvent{Kind: RawMouseMotion, X: x, Y: y, DX: x - k.lastX, DY: y - k.lastY})
	}
	k.lastX, k.lastY = x, y

	for _, mb := range hostMouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.b) {
			k.q.push(RawEvent{Kind: RawMouseButtonDown, Button: mb.id, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(mb.b) {
			k.q.push(RawEvent{Kind: RawMouseButtonUp, Button: mb.id, X: x, Y: y})
		}
	}

	// Touchpads report fractional wheel steps; carry the remainder.
	wx, wy := ebiten.Wheel()
	k.wheelX += wx
	k.wheelY += wy
	stepX, stepY := int(k.wheelX), int(k.wheelY)
	if stepX != 0 || stepY != 0 {
		k.wheelX -= float64(stepX)
		k.wheelY -= float64(stepY)
		k.q.push(RawEvent{Kind: RawMouseWheel, WheelX: stepX, WheelY: stepY})
	}
}

func currentMod() event.Mod {
	var m event.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= event.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= event.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= event.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= event.ModMeta
	}
	return m
}

func ebitenKeyTable() KeyTable {
	t := KeyTable{
		int(ebiten.KeyEscape):     event.KeyEscape,
		int(ebiten.KeyEnter):      event.KeyEnter,
		int(ebiten.KeySpace):      event.KeySpace,
		int(ebiten.KeyTab):        event.KeyTab,
		int(ebiten.KeyBackspace):  event.KeyBackspace,
		int(ebiten.KeyArrowUp):    event.KeyUp,
		int(ebiten.KeyArrowDown):  event.KeyDown,
		int(ebiten.KeyArrowLeft):  event.KeyLeft,
		int(ebiten.KeyArrowRight): event.KeyRight,

		int(ebiten.KeyF1):  event.KeyF1,
		int(ebiten.KeyF2):  event.KeyF2,
		int(ebiten.KeyF3):  event.KeyF3,
		int(ebiten.KeyF4):  event.KeyF4,
		int(ebiten.KeyF5):  event.KeyF5,
		int(ebiten.KeyF6):  event.KeyF6,
		int(ebiten.KeyF7):  event.KeyF7,
		int(ebiten.KeyF8):  event.KeyF8,
		int(ebiten.KeyF9):  event.KeyF9,
		int(ebiten.KeyF10): event.KeyF10,
		int(ebiten.KeyF11): event.KeyF11,
		int(ebiten.KeyF12): event.KeyF12,

		int(ebiten.KeyDigit0): event.KeyNum0,
		int(ebiten.KeyDigit1): event.KeyNum1,
		int(ebiten.KeyDigit2): event.KeyNum2,
		int(ebiten.KeyDigit3): event.KeyNum3,
		int(ebiten.KeyDigit4): event.KeyNum4,
		int(ebiten.KeyDigit5): event.KeyNum5,
		int(ebiten.KeyDigit6): event.KeyNum6,
		int(ebiten.KeyDigit7): event.KeyNum7,
		int(ebiten.KeyDigit8): event.KeyNum8,
		int(ebiten.KeyDigit9): event.KeyNum9,
	}

	letters := [...]ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
		ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
		ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
		ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
		ebiten.KeyY, ebiten.KeyZ,
	}
	for i, key := range letters {
		t[int(key)] = event.Letter(byte('a' + i))
	}
	return t
}
