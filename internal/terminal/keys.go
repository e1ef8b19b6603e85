package terminal

import (
	"github.com/charmbracelet/x/input"
)

// KeyType distinguishes plain bytes from decoded cursor keys.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
)

// Key is one decoded keypress. Byte is set for KeyRune only.
type Key struct {
	Type KeyType
	Byte byte
}

// KeyFromEvent maps a key press reported by the input reader to a Key.
// Plain arrows become cursor keys. Single-byte characters and Ctrl+letter
// become the byte the terminal sent for them. Modified arrows, alt
// combinations, function keys and non-key events are not reported.
func KeyFromEvent(ev input.Event) (Key, bool) {
	kp, ok := ev.(input.KeyPressEvent)
	if !ok {
		return Key{}, false
	}
	k := kp.Key()

	if k.Mod == 0 {
		switch k.Code {
		case input.KeyUp:
			return Key{Type: KeyUp}, true
		case input.KeyDown:
			return Key{Type: KeyDown}, true
		case input.KeyRight:
			return Key{Type: KeyRight}, true
		case input.KeyLeft:
			return Key{Type: KeyLeft}, true
		case input.KeyEscape:
			return Key{Type: KeyRune, Byte: 0x1b}, true
		case input.KeyEnter:
			return Key{Type: KeyRune, Byte: '\r'}, true
		case input.KeyTab:
			return Key{Type: KeyRune, Byte: '\t'}, true
		case input.KeyBackspace:
			return Key{Type: KeyRune, Byte: 0x7f}, true
		}
	}

	if k.Mod == input.ModCtrl && k.Code >= 'a' && k.Code <= 'z' {
		return Key{Type: KeyRune, Byte: byte(k.Code-'a') + 1}, true
	}
	if len(k.Text) == 1 {
		return Key{Type: KeyRune, Byte: k.Text[0]}, true
	}
	return Key{}, false
}
