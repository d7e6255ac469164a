//go:build !windows

package key

// ByteReader is the minimal source Decode needs: one blocking byte read at
// a time, exactly spec.md §4.1's get_char contract.
type ByteReader interface {
	ReadByte() (byte, error)
}

// Decode reads one normalized Key from r, folding VT100/xterm CSI and SS3
// escape sequences and ALT/ESC prefixes into the shared Key space. isEsc
// reports whether the key arrived via an ESC prefix. An ESC-prefixed
// sequence never decodes to a KindChar key (unrecognized ones come back as
// the zero Key), so the editor never inserts one as text. Mirrors crossline_getkey/crossline_get_esckey (Linux branch)
// in original_source/crossline.c.
func Decode(r ByteReader) (k Key, isEsc bool, err error) {
	c0, err := r.ReadByte()
	if err != nil {
		return Key{}, false, err
	}
	if c0 != ESC {
		return mapSynonym(decodePlain(c0)), false, nil
	}

	isEsc = true
	c1, err := r.ReadByte()
	if err != nil {
		return Key{}, isEsc, err
	}

	if c1 == ESC {
		// ESC-ESC-key: decode the tail, then fold it onto its ALT
		// variant so terminals that swallow the ALT modifier can
		// still be driven via a literal ESC prefix.
		k, err = decodeEscKey(0, r)
		if err != nil {
			return Key{}, isEsc, err
		}
		return escToAlt(mapSynonym(k)), isEsc, nil
	}

	k, err = decodeEscKey(c1, r)
	if err != nil {
		return Key{}, isEsc, err
	}
	return mapSynonym(k), isEsc, nil
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

// decodeEscKey parses the tail of an escape sequence, given the byte that
// followed ESC (or 0 to mean "read it"). Equivalent to
// crossline_get_esckey.
func decodeEscKey(ch byte, r ByteReader) (Key, error) {
	var err error
	if ch == 0 {
		if ch, err = r.ReadByte(); err != nil {
			return Key{}, err
		}
	}

	switch ch {
	case '[':
		c2, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		switch {
		case c2 >= '0' && c2 <= '6':
			c3, err := r.ReadByte()
			if err != nil {
				return Key{}, err
			}
			switch c3 {
			case '~':
				return csiTilde(c2), nil
			case ';':
				c4, err := r.ReadByte()
				if err != nil {
					return Key{}, err
				}
				if c4 != '5' && c4 != '3' {
					return Key{}, nil
				}
				c5, err := r.ReadByte()
				if err != nil {
					return Key{}, err
				}
				return csiModified(c2, c4, c5), nil
			default:
				return Key{}, nil
			}
		case c2 == '[':
			// Linux console F1-F4: Esc[[A .. Esc[[D
			c3, err := r.ReadByte()
			if err != nil {
				return Key{}, err
			}
			return csiLinuxFunction(c3), nil
		default:
			return csiLetter(c2), nil
		}
	case 'O':
		c2, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		return ss3(c2), nil
	default:
		return Alt(ch), nil
	}
}

func csiTilde(digit byte) Key {
	switch digit {
	case '1':
		return NamedKey(NamedHome)
	case '2':
		return NamedKey(NamedInsert)
	case '3':
		return NamedKey(NamedDelete)
	case '4':
		return NamedKey(NamedEnd)
	case '5':
		return NamedKey(NamedPgUp)
	case '6':
		return NamedKey(NamedPgDn)
	}
	return Key{}
}

// csiModified decodes xterm's Esc[<digit>;<mod><final> extended form used
// for Ctrl/Alt-modified directional and delete keys.
func csiModified(digit, mod, final byte) Key {
	ctrl := mod == '5'
	if digit == '3' && final == '~' {
		if ctrl {
			return NamedKey(NamedCtrlDel)
		}
		return NamedKey(NamedAltDel)
	}
	if digit != '1' {
		return Key{}
	}
	switch final {
	case 'A':
		if ctrl {
			return NamedKey(NamedCtrlUp)
		}
		return NamedKey(NamedAltUp)
	case 'B':
		if ctrl {
			return NamedKey(NamedCtrlDown)
		}
		return NamedKey(NamedAltDown)
	case 'C':
		if ctrl {
			return NamedKey(NamedCtrlRight)
		}
		return NamedKey(NamedAltRight)
	case 'D':
		if ctrl {
			return NamedKey(NamedCtrlLeft)
		}
		return NamedKey(NamedAltLeft)
	case 'H':
		if ctrl {
			return NamedKey(NamedCtrlHome)
		}
		return NamedKey(NamedAltHome)
	case 'F':
		if ctrl {
			return NamedKey(NamedCtrlEnd)
		}
		return NamedKey(NamedAltEnd)
	}
	return Key{}
}

func csiLinuxFunction(c byte) Key {
	switch c {
	case 'A':
		return NamedKey(NamedF1)
	case 'B':
		return NamedKey(NamedF2)
	case 'C':
		return NamedKey(NamedF3)
	case 'D':
		return NamedKey(NamedF4)
	}
	return Key{}
}

// csiLetter decodes the common 3-byte Esc[<letter> sequences, including
// the xterm synonyms (Home/End) folded onto their canonical named key.
func csiLetter(c byte) Key {
	switch c {
	case 'A':
		return NamedKey(NamedUp)
	case 'B':
		return NamedKey(NamedDown)
	case 'C':
		return NamedKey(NamedRight)
	case 'D':
		return NamedKey(NamedLeft)
	case 'H': // xterm Home synonym
		return NamedKey(NamedHome)
	case 'F': // xterm End synonym
		return NamedKey(NamedEnd)
	}
	return Key{}
}

// ss3 decodes Esc O <letter>: vt100 function keys and the vt100 Ctrl-arrow
// synonyms sent in application-keypad mode.
func ss3(c byte) Key {
	switch c {
	case 'P':
		return NamedKey(NamedF1)
	case 'Q':
		return NamedKey(NamedF2)
	case 'R':
		return NamedKey(NamedF3)
	case 'S':
		return NamedKey(NamedF4)
	case 'A':
		return NamedKey(NamedCtrlUp)
	case 'B':
		return NamedKey(NamedCtrlDown)
	case 'C':
		return NamedKey(NamedCtrlRight)
	case 'D':
		return NamedKey(NamedCtrlLeft)
	}
	return Key{}
}
