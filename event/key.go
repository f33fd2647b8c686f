package event

import "strconv"

// KeyCode is a logical key.
type KeyCode uint16

const (
	KeyNone KeyCode = iota

	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	keyCount
)

var specialKeyNames = map[KeyCode]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

func (k KeyCode) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + int(k-KeyA)))
	case k >= KeyNum0 && k <= KeyNum9:
		return string(rune('0' + int(k-KeyNum0)))
	}
	return "unknown"
}

// Valid reports whether k names a logical key other than KeyNone.
func (k KeyCode) Valid() bool { return k > KeyNone && k < keyCount }

// Letter returns the logical key for an ASCII letter (either case).
func Letter(c byte) KeyCode {
	switch {
	case c >= 'a' && c <= 'z':
		return KeyA + KeyCode(c-'a')
	case c >= 'A' && c <= 'Z':
		return KeyA + KeyCode(c-'A')
	}
	return KeyNone
}

// Digit returns the logical key for a decimal digit 0-9.
func Digit(n int) KeyCode {
	if n < 0 || n > 9 {
		return KeyNone
	}
	return KeyNum0 + KeyCode(n)
}

// Function returns the logical key for F1-F12.
func Function(n int) KeyCode {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + KeyCode(n-1)
}

// Mod is a modifier mask.
type Mod uint16

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
	ModCaps
	ModNone Mod = 0
)

func (m Mod) Has(bit Mod) bool { return m&bit != 0 }
