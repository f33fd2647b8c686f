package hal

import "arcade/event"

// USB HID keyboard usage IDs. The headless and memory hosts use these as
// their raw key codes.
const (
	HIDKeyA         = 0x04
	HIDKey1         = 0x1E
	HIDKey0         = 0x27
	HIDKeyEnter     = 0x28
	HIDKeyEscape    = 0x29
	HIDKeyBackspace = 0x2A
	HIDKeyTab       = 0x2B
	HIDKeySpace     = 0x2C
	HIDKeyF1        = 0x3A
	HIDKeyRight     = 0x4F
	HIDKeyLeft      = 0x50
	HIDKeyDown      = 0x51
	HIDKeyUp        = 0x52
	HIDKeyLeftShift = 0xE1
)

var hidKeyTable = buildHIDKeyTable()

func buildHIDKeyTable() KeyTable {
	t := KeyTable{
		HIDKeyEscape:    event.KeyEscape,
		HIDKeyEnter:     event.KeyEnter,
		HIDKeySpace:     event.KeySpace,
		HIDKeyTab:       event.KeyTab,
		HIDKeyBackspace: event.KeyBackspace,
		HIDKeyUp:        event.KeyUp,
		HIDKeyDown:      event.KeyDown,
		HIDKeyLeft:      event.KeyLeft,
		HIDKeyRight:     event.KeyRight,
	}
	for i := 0; i < 26; i++ {
		t[HIDKeyA+i] = event.Letter(byte('a' + i))
	}
	// HID orders digits 1..9 then 0.
	for i := 1; i <= 9; i++ {
		t[HIDKey1+i-1] = event.Digit(i)
	}
	t[HIDKey0] = event.KeyNum0
	for i := 1; i <= 12; i++ {
		t[HIDKeyF1+i-1] = event.Function(i)
	}
	return t
}

// HIDKeyTable returns the key table used by the headless and memory hosts.
func HIDKeyTable() KeyTable { return hidKeyTable }
