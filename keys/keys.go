// Package keys defines portable identifiers for physical keyboard keys,
// plus name lookup and the string parsing used by shortcut flags.
//
// A Key stands for a physical key position, not a character: KeyA is the
// key labelled A on a US layout regardless of the active layout. Platform
// codes with no portable name are carried through the Unknown range so
// every observed key stays representable and comparable.
package keys

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies a physical keyboard key. Keys are comparable and usable
// as map keys.
type Key uint32

const (
	KeyNone Key = iota

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

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

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

	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta

	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyCapsLock

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyDot
	KeySlash

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyNumLock
	KeyMenu

	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpEnter
	KeyKpPlus
	KeyKpMinus
	KeyKpMultiply
	KeyKpDivide
	KeyKpDot
)

// unknownBase marks the range for platform codes without a named constant.
const unknownBase Key = 0x10000

// Unknown wraps a raw platform key code that has no portable name.
// Unknown keys compare equal when their raw codes match, so they can be
// registered in shortcuts like any named key.
func Unknown(raw uint16) Key { return unknownBase | Key(raw) }

// IsUnknown reports whether k came from the Unknown range.
func (k Key) IsUnknown() bool { return k >= unknownBase }

// Raw returns the platform code of an Unknown key. For named keys it
// returns the constant's own value and is not meaningful.
func (k Key) Raw() uint16 { return uint16(k & 0xffff) }

var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5",
	KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10",
	KeyF11: "f11", KeyF12: "f12",

	KeyLeftCtrl: "leftctrl", KeyRightCtrl: "rightctrl",
	KeyLeftShift: "leftshift", KeyRightShift: "rightshift",
	KeyLeftAlt: "leftalt", KeyRightAlt: "rightalt",
	KeyLeftMeta: "leftmeta", KeyRightMeta: "rightmeta",

	KeySpace: "space", KeyEnter: "enter", KeyEscape: "escape",
	KeyBackspace: "backspace", KeyTab: "tab", KeyCapsLock: "capslock",

	KeyUp: "up", KeyDown: "down", KeyLeft: "left", KeyRight: "right",

	KeyInsert: "insert", KeyDelete: "delete", KeyHome: "home",
	KeyEnd: "end", KeyPageUp: "pageup", KeyPageDown: "pagedown",

	KeyMinus: "minus", KeyEqual: "equal",
	KeyLeftBracket: "leftbracket", KeyRightBracket: "rightbracket",
	KeyBackslash: "backslash", KeySemicolon: "semicolon",
	KeyQuote: "quote", KeyBackquote: "backquote",
	KeyComma: "comma", KeyDot: "dot", KeySlash: "slash",

	KeyPrintScreen: "printscreen", KeyScrollLock: "scrolllock",
	KeyPause: "pause", KeyNumLock: "numlock", KeyMenu: "menu",

	KeyKp0: "kp0", KeyKp1: "kp1", KeyKp2: "kp2", KeyKp3: "kp3",
	KeyKp4: "kp4", KeyKp5: "kp5", KeyKp6: "kp6", KeyKp7: "kp7",
	KeyKp8: "kp8", KeyKp9: "kp9",
	KeyKpEnter: "kpenter", KeyKpPlus: "kpplus", KeyKpMinus: "kpminus",
	KeyKpMultiply: "kpmultiply", KeyKpDivide: "kpdivide", KeyKpDot: "kpdot",
}

// nameKeys inverts keyNames plus the common aliases users type in flags.
var nameKeys = map[string]Key{
	"ctrl":     KeyLeftCtrl,
	"control":  KeyLeftCtrl,
	"shift":    KeyLeftShift,
	"alt":      KeyLeftAlt,
	"option":   KeyLeftAlt,
	"meta":     KeyLeftMeta,
	"super":    KeyLeftMeta,
	"win":      KeyLeftMeta,
	"cmd":      KeyLeftMeta,
	"command":  KeyLeftMeta,
	"esc":      KeyEscape,
	"return":   KeyEnter,
	"period":   KeyDot,
	"grave":    KeyBackquote,
	"spacebar": KeySpace,
}

func init() {
	for k, name := range keyNames {
		nameKeys[name] = k
	}
}

// String returns the lowercase canonical name, "unknown(N)" for keys in
// the Unknown range, or "key(N)" for values outside both.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsUnknown() {
		return fmt.Sprintf("unknown(%d)", k.Raw())
	}
	return fmt.Sprintf("key(%d)", uint32(k))
}

// FromName resolves a key name or alias ("meta", "esc", "f5") to its Key.
// Names are case-insensitive. The form "unknown(N)" resolves to the
// Unknown key with raw code N.
func FromName(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameKeys[name]; ok {
		return k, true
	}
	if raw, ok := parseUnknown(name); ok {
		return Unknown(raw), true
	}
	return KeyNone, false
}

func parseUnknown(name string) (uint16, bool) {
	if !strings.HasPrefix(name, "unknown(") || !strings.HasSuffix(name, ")") {
		return 0, false
	}
	n, err := strconv.ParseUint(name[len("unknown("):len(name)-1], 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// ParseCombo parses a combination spec like "ctrl+shift+p" into its keys,
// preserving the order written.
func ParseCombo(spec string) ([]Key, error) {
	parts := strings.Split(spec, "+")
	ks := make([]Key, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty key in combo %q", spec)
		}
		k, ok := FromName(p)
		if !ok {
			return nil, fmt.Errorf("unknown key %q in combo %q", p, spec)
		}
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("empty combo spec")
	}
	return ks, nil
}

// ParseSuccession parses a double-press spec like "shift@300ms". The
// duration part is optional; when absent the returned duration is zero
// and the caller applies its default.
func ParseSuccession(spec string) (Key, time.Duration, error) {
	name, durSpec, hasDur := strings.Cut(spec, "@")
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyNone, 0, fmt.Errorf("missing key in succession %q", spec)
	}
	k, ok := FromName(name)
	if !ok {
		return KeyNone, 0, fmt.Errorf("unknown key %q in succession %q", name, spec)
	}
	if !hasDur {
		return k, 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(durSpec))
	if err != nil {
		return KeyNone, 0, fmt.Errorf("bad duration in succession %q: %w", spec, err)
	}
	return k, d, nil
}
