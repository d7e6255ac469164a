//go:build !windows

package key

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePlainAndControl(t *testing.T) {
	tests := []struct {
		desc  string
		input []byte
		want  Key
	}{
		{"letter", []byte("a"), Char('a')},
		{"ctrl-a", []byte{1}, Ctrl(1)},
		{"del-is-backspace", []byte{127}, NamedKey(NamedBackspace)},
		{"nul-ignored", []byte{0}, Key{}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			k, isEsc, err := Decode(bytes.NewReader(tt.input))
			assert.NoError(t, err)
			assert.False(t, isEsc)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestDecodeArrowsAndCsiTilde(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  Key
	}{
		{"up", "\x1b[A", NamedKey(NamedUp)},
		{"down", "\x1b[B", NamedKey(NamedDown)},
		{"left", "\x1b[D", NamedKey(NamedLeft)},
		{"right", "\x1b[C", NamedKey(NamedRight)},
		{"xterm-home-synonym", "\x1b[H", NamedKey(NamedHome)},
		{"xterm-end-synonym", "\x1b[F", NamedKey(NamedEnd)},
		{"home-tilde", "\x1b[1~", NamedKey(NamedHome)},
		{"insert-tilde", "\x1b[2~", NamedKey(NamedInsert)},
		{"delete-tilde", "\x1b[3~", NamedKey(NamedDelete)},
		{"end-tilde", "\x1b[4~", NamedKey(NamedEnd)},
		{"pgup-tilde", "\x1b[5~", NamedKey(NamedPgUp)},
		{"pgdn-tilde", "\x1b[6~", NamedKey(NamedPgDn)},
		{"linux-f1", "\x1b[[A", NamedKey(NamedF1)},
		{"linux-f4", "\x1b[[D", NamedKey(NamedF4)},
		{"ss3-f1", "\x1bOP", NamedKey(NamedF1)},
		{"ss3-ctrl-up", "\x1bOA", NamedKey(NamedCtrlUp)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			k, isEsc, err := Decode(bytes.NewReader([]byte(tt.input)))
			assert.NoError(t, err)
			assert.True(t, isEsc)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestDecodeModifiedCsi(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  Key
	}{
		{"ctrl-up", "\x1b[1;5A", NamedKey(NamedCtrlUp)},
		{"alt-up", "\x1b[1;3A", NamedKey(NamedAltUp)},
		{"ctrl-home", "\x1b[1;5H", NamedKey(NamedCtrlHome)},
		{"ctrl-del", "\x1b[3;5~", NamedKey(NamedCtrlDel)},
		{"alt-del", "\x1b[3;3~", NamedKey(NamedAltDel)},
		{"unknown-modifier-ignored", "\x1b[1;9A", Key{}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			k, isEsc, err := Decode(bytes.NewReader([]byte(tt.input)))
			assert.NoError(t, err)
			assert.True(t, isEsc)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestDecodeAltAndEscEscFold(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  Key
	}{
		{"alt-b", "\x1bb", Alt('b')},
		{"alt-f", "\x1bf", Alt('f')},
		{"esc-esc-left-folds-to-alt-left", "\x1b\x1b[D", NamedKey(NamedAltLeft)},
		{"esc-esc-delete-folds-to-alt-del", "\x1b\x1b[3~", NamedKey(NamedAltDel)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			k, isEsc, err := Decode(bytes.NewReader([]byte(tt.input)))
			assert.NoError(t, err)
			assert.True(t, isEsc)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestKeyPredicates(t *testing.T) {
	assert.True(t, CtrlLetter('A').IsCtrlLetter('A'))
	assert.False(t, CtrlLetter('A').IsCtrlLetter('B'))
	assert.True(t, Alt('B').IsAltLetter('b'))
	assert.True(t, Alt('b').IsAltLetter('b'))
	assert.True(t, Alt('\\').IsAltByte('\\'))
	assert.True(t, Char('x').Printable())
	assert.False(t, Char(127).Printable())
	assert.False(t, Ctrl(1).Printable())
}
