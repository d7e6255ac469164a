//go:build windows

package key

import "syscall"

// ByteReader is the minimal source Decode needs: one blocking byte read at
// a time, matching the Windows console's _getch()-style byte stream in
// original_source/crossline.c.
type ByteReader interface {
	ReadByte() (byte, error)
}

var (
	kernel32        = syscall.NewLazyDLL("kernel32.dll")
	procGetKeyState = kernel32.NewProc("GetKeyState")
)

const vkMenu = 0x12 // VK_MENU, the ALT key

// altPressed reports whether ALT is currently held, queried directly from
// the console rather than inferred from the byte stream: the Windows
// console never wraps a plain printable byte in an escape prefix the way
// Unix terminals do, so the only way to see the ALT modifier on an
// otherwise ordinary keystroke is to ask the OS.
func altPressed() bool {
	ret, _, _ := procGetKeyState.Call(uintptr(vkMenu))
	return ret&0x8000 != 0
}

// Decode reads one normalized Key from r. Windows delivers special keys as
// a two-byte pair: a 0x00 or 0xE0 prefix followed by a scan code, instead
// of the ESC-prefixed escape sequences Unix terminals use. A plain ESC
// byte is folded onto the ALT variant of the key that follows it. Mirrors
// crossline_getkey's Windows branch.
func Decode(r ByteReader) (k Key, isEsc bool, err error) {
	c0, err := r.ReadByte()
	if err != nil {
		return Key{}, false, err
	}

	if c0 == 0x00 || c0 == 0xE0 {
		c1, err := r.ReadByte()
		if err != nil {
			return Key{}, true, err
		}
		return mapSynonym(scanCode(c1)), true, nil
	}

	if c0 == ESC {
		next, _, err := Decode(r)
		if err != nil {
			return Key{}, true, err
		}
		if next.Kind == KindChar {
			next = Alt(next.Byte)
		}
		return escToAlt(next), true, nil
	}

	plain := decodePlain(c0)
	if plain.Kind == KindChar && altPressed() {
		return mapSynonym(Alt(plain.Byte)), false, nil
	}
	return mapSynonym(plain), false, nil
}

func decodePlain(c0 byte) Key {
	switch {
	case c0 == NUL:
		return Key{}
	case c0 >= 1 && c0 <= 31:
		return Ctrl(c0)
	default:
		return Char(c0)
	}
}

// scanCode maps the extended scan code following a 0x00/0xE0 prefix onto a
// named key. Values follow the standard PC extended-keyboard scan codes
// the Windows console forwards for cursor/editing keys, as read by
// _getch() in original_source/crossline.c's Windows branch.
func scanCode(c1 byte) Key {
	switch c1 {
	case 72:
		return NamedKey(NamedUp)
	case 80:
		return NamedKey(NamedDown)
	case 75:
		return NamedKey(NamedLeft)
	case 77:
		return NamedKey(NamedRight)
	case 71:
		return NamedKey(NamedHome)
	case 79:
		return NamedKey(NamedEnd)
	case 82:
		return NamedKey(NamedInsert)
	case 83:
		return NamedKey(NamedDelete)
	case 73:
		return NamedKey(NamedPgUp)
	case 81:
		return NamedKey(NamedPgDn)
	case 59:
		return NamedKey(NamedF1)
	case 60:
		return NamedKey(NamedF2)
	case 61:
		return NamedKey(NamedF3)
	case 62:
		return NamedKey(NamedF4)
	case 141:
		return NamedKey(NamedCtrlUp)
	case 145:
		return NamedKey(NamedCtrlDown)
	case 115:
		return NamedKey(NamedCtrlLeft)
	case 116:
		return NamedKey(NamedCtrlRight)
	case 119:
		return NamedKey(NamedCtrlHome)
	case 117:
		return NamedKey(NamedCtrlEnd)
	case 147:
		return NamedKey(NamedCtrlDel)
	case 152:
		return NamedKey(NamedAltUp)
	case 160:
		return NamedKey(NamedAltDown)
	case 155:
		return NamedKey(NamedAltLeft)
	case 157:
		return NamedKey(NamedAltRight)
	case 151:
		return NamedKey(NamedAltHome)
	case 159:
		return NamedKey(NamedAltEnd)
	case 163:
		return NamedKey(NamedAltDel)
	}
	return Key{}
}
