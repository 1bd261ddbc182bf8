//go:build darwin

package hook

import "keychord/keys"

// macOS virtual keycodes (Carbon kVK_*), which gohook reports in Rawcode.
var darwinKeys = map[uint16]keys.Key{
	0x00: keys.KeyA,
	0x01: keys.KeyS,
	0x02: keys.KeyD,
	0x03: keys.KeyF,
	0x04: keys.KeyH,
	0x05: keys.KeyG,
	0x06: keys.KeyZ,
	0x07: keys.KeyX,
	0x08: keys.KeyC,
	0x09: keys.KeyV,
	0x0B: keys.KeyB,
	0x0C: keys.KeyQ,
	0x0D: keys.KeyW,
	0x0E: keys.KeyE,
	0x0F: keys.KeyR,
	0x10: keys.KeyY,
	0x11: keys.KeyT,
	0x12: keys.Key1,
	0x13: keys.Key2,
	0x14: keys.Key3,
	0x15: keys.Key4,
	0x16: keys.Key6,
	0x17: keys.Key5,
	0x18: keys.KeyEqual,
	0x19: keys.Key9,
	0x1A: keys.Key7,
	0x1B: keys.KeyMinus,
	0x1C: keys.Key8,
	0x1D: keys.Key0,
	0x1E: keys.KeyRightBracket,
	0x1F: keys.KeyO,
	0x20: keys.KeyU,
	0x21: keys.KeyLeftBracket,
	0x22: keys.KeyI,
	0x23: keys.KeyP,
	0x24: keys.KeyEnter,
	0x25: keys.KeyL,
	0x26: keys.KeyJ,
	0x27: keys.KeyQuote,
	0x28: keys.KeyK,
	0x29: keys.KeySemicolon,
	0x2A: keys.KeyBackslash,
	0x2B: keys.KeyComma,
	0x2C: keys.KeySlash,
	0x2D: keys.KeyN,
	0x2E: keys.KeyM,
	0x2F: keys.KeyDot,
	0x30: keys.KeyTab,
	0x31: keys.KeySpace,
	0x32: keys.KeyBackquote,
	0x33: keys.KeyBackspace,
	0x35: keys.KeyEscape,
	0x36: keys.KeyRightMeta,
	0x37: keys.KeyLeftMeta,
	0x38: keys.KeyLeftShift,
	0x39: keys.KeyCapsLock,
	0x3A: keys.KeyLeftAlt,
	0x3B: keys.KeyLeftCtrl,
	0x3C: keys.KeyRightShift,
	0x3D: keys.KeyRightAlt,
	0x3E: keys.KeyRightCtrl,
	0x41: keys.KeyKpDot,
	0x43: keys.KeyKpMultiply,
	0x45: keys.KeyKpPlus,
	0x47: keys.KeyNumLock, // keypad clear
	0x4B: keys.KeyKpDivide,
	0x4C: keys.KeyKpEnter,
	0x4E: keys.KeyKpMinus,
	0x52: keys.KeyKp0,
	0x53: keys.KeyKp1,
	0x54: keys.KeyKp2,
	0x55: keys.KeyKp3,
	0x56: keys.KeyKp4,
	0x57: keys.KeyKp5,
	0x58: keys.KeyKp6,
	0x59: keys.KeyKp7,
	0x5B: keys.KeyKp8,
	0x5C: keys.KeyKp9,
	0x60: keys.KeyF5,
	0x61: keys.KeyF6,
	0x62: keys.KeyF7,
	0x63: keys.KeyF3,
	0x64: keys.KeyF8,
	0x65: keys.KeyF9,
	0x67: keys.KeyF11,
	0x6D: keys.KeyF10,
	0x6F: keys.KeyF12,
	0x72: keys.KeyInsert, // help key on older boards
	0x73: keys.KeyHome,
	0x74: keys.KeyPageUp,
	0x75: keys.KeyDelete, // forward delete
	0x76: keys.KeyF4,
	0x77: keys.KeyEnd,
	0x78: keys.KeyF2,
	0x79: keys.KeyPageDown,
	0x7A: keys.KeyF1,
	0x7B: keys.KeyLeft,
	0x7C: keys.KeyRight,
	0x7D: keys.KeyDown,
	0x7E: keys.KeyUp,
}

func gohookKey(raw uint16) keys.Key {
	if k, ok := darwinKeys[raw]; ok {
		return k
	}
	return keys.Unknown(raw)
}
