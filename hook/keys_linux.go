//go:build linux

package hook

import "keychord/keys"

// Linux input-event-codes for the keys with portable names. Codes not
// listed here pass through as keys.Unknown so they remain matchable.
var evdevKeys = map[uint16]keys.Key{
	1:  keys.KeyEscape,
	2:  keys.Key1,
	3:  keys.Key2,
	4:  keys.Key3,
	5:  keys.Key4,
	6:  keys.Key5,
	7:  keys.Key6,
	8:  keys.Key7,
	9:  keys.Key8,
	10: keys.Key9,
	11: keys.Key0,
	12: keys.KeyMinus,
	13: keys.KeyEqual,
	14: keys.KeyBackspace,
	15: keys.KeyTab,
	16: keys.KeyQ,
	17: keys.KeyW,
	18: keys.KeyE,
	19: keys.KeyR,
	20: keys.KeyT,
	21: keys.KeyY,
	22: keys.KeyU,
	23: keys.KeyI,
	24: keys.KeyO,
	25: keys.KeyP,
	26: keys.KeyLeftBracket,
	27: keys.KeyRightBracket,
	28: keys.KeyEnter,
	29: keys.KeyLeftCtrl,
	30: keys.KeyA,
	31: keys.KeyS,
	32: keys.KeyD,
	33: keys.KeyF,
	34: keys.KeyG,
	35: keys.KeyH,
	36: keys.KeyJ,
	37: keys.KeyK,
	38: keys.KeyL,
	39: keys.KeySemicolon,
	40: keys.KeyQuote,
	41: keys.KeyBackquote,
	42: keys.KeyLeftShift,
	43: keys.KeyBackslash,
	44: keys.KeyZ,
	45: keys.KeyX,
	46: keys.KeyC,
	47: keys.KeyV,
	48: keys.KeyB,
	49: keys.KeyN,
	50: keys.KeyM,
	51: keys.KeyComma,
	52: keys.KeyDot,
	53: keys.KeySlash,
	54: keys.KeyRightShift,
	55: keys.KeyKpMultiply,
	56: keys.KeyLeftAlt,
	57: keys.KeySpace,
	58: keys.KeyCapsLock,
	59: keys.KeyF1,
	60: keys.KeyF2,
	61: keys.KeyF3,
	62: keys.KeyF4,
	63: keys.KeyF5,
	64: keys.KeyF6,
	65: keys.KeyF7,
	66: keys.KeyF8,
	67: keys.KeyF9,
	68: keys.KeyF10,
	69: keys.KeyNumLock,
	70: keys.KeyScrollLock,
	71: keys.KeyKp7,
	72: keys.KeyKp8,
	73: keys.KeyKp9,
	74: keys.KeyKpMinus,
	75: keys.KeyKp4,
	76: keys.KeyKp5,
	77: keys.KeyKp6,
	78: keys.KeyKpPlus,
	79: keys.KeyKp1,
	80: keys.KeyKp2,
	81: keys.KeyKp3,
	82: keys.KeyKp0,
	83: keys.KeyKpDot,
	87: keys.KeyF11,
	88: keys.KeyF12,
	96: keys.KeyKpEnter,
	97: keys.KeyRightCtrl,
	98: keys.KeyKpDivide,
	99: keys.KeyPrintScreen, // KEY_SYSRQ
	100: keys.KeyRightAlt,
	102: keys.KeyHome,
	103: keys.KeyUp,
	104: keys.KeyPageUp,
	105: keys.KeyLeft,
	106: keys.KeyRight,
	107: keys.KeyEnd,
	108: keys.KeyDown,
	109: keys.KeyPageDown,
	110: keys.KeyInsert,
	111: keys.KeyDelete,
	119: keys.KeyPause,
	125: keys.KeyLeftMeta,
	126: keys.KeyRightMeta,
	127: keys.KeyMenu, // KEY_COMPOSE
}

func evdevKey(code uint16) keys.Key {
	if k, ok := evdevKeys[code]; ok {
		return k
	}
	return keys.Unknown(code)
}

// X11 keycodes are evdev codes offset by 8, so the gohook backend on
// Linux reuses the evdev table.
func gohookKey(raw uint16) keys.Key {
	if raw < 8 {
		return keys.Unknown(raw)
	}
	return evdevKey(raw - 8)
}
