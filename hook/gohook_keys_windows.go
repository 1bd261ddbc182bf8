//go:build windows

package hook

import "keychord/keys"

// Windows virtual-key codes. The low-level keyboard hook usually reports the
// side-specific codes (VK_LSHIFT etc.), but the generic ones are kept too
// since some layers collapse them.
var windowsKeys = map[uint16]keys.Key{
	0x08: keys.KeyBackspace,
	0x09: keys.KeyTab,
	0x0D: keys.KeyEnter,
	0x10: keys.KeyLeftShift, // generic VK_SHIFT
	0x11: keys.KeyLeftCtrl,  // generic VK_CONTROL
	0x12: keys.KeyLeftAlt,   // generic VK_MENU
	0x13: keys.KeyPause,
	0x14: keys.KeyCapsLock,
	0x1B: keys.KeyEscape,
	0x20: keys.KeySpace,
	0x21: keys.KeyPageUp,
	0x22: keys.KeyPageDown,
	0x23: keys.KeyEnd,
	0x24: keys.KeyHome,
	0x25: keys.KeyLeft,
	0x26: keys.KeyUp,
	0x27: keys.KeyRight,
	0x28: keys.KeyDown,
	0x2C: keys.KeyPrintScreen,
	0x2D: keys.KeyInsert,
	0x2E: keys.KeyDelete,
	0x30: keys.Key0,
	0x31: keys.Key1,
	0x32: keys.Key2,
	0x33: keys.Key3,
	0x34: keys.Key4,
	0x35: keys.Key5,
	0x36: keys.Key6,
	0x37: keys.Key7,
	0x38: keys.Key8,
	0x39: keys.Key9,
	0x41: keys.KeyA,
	0x42: keys.KeyB,
	0x43: keys.KeyC,
	0x44: keys.KeyD,
	0x45: keys.KeyE,
	0x46: keys.KeyF,
	0x47: keys.KeyG,
	0x48: keys.KeyH,
	0x49: keys.KeyI,
	0x4A: keys.KeyJ,
	0x4B: keys.KeyK,
	0x4C: keys.KeyL,
	0x4D: keys.KeyM,
	0x4E: keys.KeyN,
	0x4F: keys.KeyO,
	0x50: keys.KeyP,
	0x51: keys.KeyQ,
	0x52: keys.KeyR,
	0x53: keys.KeyS,
	0x54: keys.KeyT,
	0x55: keys.KeyU,
	0x56: keys.KeyV,
	0x57: keys.KeyW,
	0x58: keys.KeyX,
	0x59: keys.KeyY,
	0x5A: keys.KeyZ,
	0x5B: keys.KeyLeftMeta,
	0x5C: keys.KeyRightMeta,
	0x5D: keys.KeyMenu,
	0x60: keys.KeyKp0,
	0x61: keys.KeyKp1,
	0x62: keys.KeyKp2,
	0x63: keys.KeyKp3,
	0x64: keys.KeyKp4,
	0x65: keys.KeyKp5,
	0x66: keys.KeyKp6,
	0x67: keys.KeyKp7,
	0x68: keys.KeyKp8,
	0x69: keys.KeyKp9,
	0x6A: keys.KeyKpMultiply,
	0x6B: keys.KeyKpPlus,
	0x6D: keys.KeyKpMinus,
	0x6E: keys.KeyKpDot,
	0x6F: keys.KeyKpDivide,
	0x70: keys.KeyF1,
	0x71: keys.KeyF2,
	0x72: keys.KeyF3,
	0x73: keys.KeyF4,
	0x74: keys.KeyF5,
	0x75: keys.KeyF6,
	0x76: keys.KeyF7,
	0x77: keys.KeyF8,
	0x78: keys.KeyF9,
	0x79: keys.KeyF10,
	0x7A: keys.KeyF11,
	0x7B: keys.KeyF12,
	0x90: keys.KeyNumLock,
	0x91: keys.KeyScrollLock,
	0xA0: keys.KeyLeftShift,
	0xA1: keys.KeyRightShift,
	0xA2: keys.KeyLeftCtrl,
	0xA3: keys.KeyRightCtrl,
	0xA4: keys.KeyLeftAlt,
	0xA5: keys.KeyRightAlt,
	0xBA: keys.KeySemicolon,
	0xBB: keys.KeyEqual,
	0xBC: keys.KeyComma,
	0xBD: keys.KeyMinus,
	0xBE: keys.KeyDot,
	0xBF: keys.KeySlash,
	0xC0: keys.KeyBackquote,
	0xDB: keys.KeyLeftBracket,
	0xDC: keys.KeyBackslash,
	0xDD: keys.KeyRightBracket,
	0xDE: keys.KeyQuote,
}

func gohookKey(raw uint16) keys.Key {
	if k, ok := windowsKeys[raw]; ok {
		return k
	}
	return keys.Unknown(raw)
}
