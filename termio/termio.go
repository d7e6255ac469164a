// Package termio is the Terminal I/O Adapter: the one place that owns the
// file descriptor's raw/cooked mode, its size, and the byte-at-a-time read
// the key package decodes from. Every other package talks to a terminal
// only through this one, except the crossline package's Ctrl-L handler,
// which runs the system clear command on stdout directly.
package termio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// dumbTerminals lists TERM values that cannot do cursor motion at all,
// mirroring crossline_readline's own check of the TERM environment
// variable before it ever touches termios.
var dumbTerminals = map[string]bool{
	"dumb":  true,
	"cons25": true,
	"emacs": true,
}

// Adapter owns raw-mode acquisition/restoration, screen size queries and
// the blocking byte reads the key decoder consumes, for one (in, out)
// pair of files.
type Adapter struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader
	fd     int
	saved  *term.State
}

// New wraps the given input/output files. Most hosts pass os.Stdin and
// os.Stdout.
func New(in, out *os.File) *Adapter {
	return &Adapter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		fd:     int(in.Fd()),
	}
}

// IsTTY reports whether the adapter's input is an interactive terminal
// capable of raw-mode editing, equivalent to crossline_readline's
// isatty(STDIN_FILENO) guard.
func (a *Adapter) IsTTY() bool {
	fd := uintptr(a.fd)
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Unsupported reports whether $TERM names a terminal that cannot do
// cursor motion, in which case the editor must fall back to a plain line
// read instead of attempting interactive editing. Matched
// case-insensitively, mirroring crossline_readline's strcasecmp checks
// against "dumb"/"cons25"/"emacs".
func Unsupported(term string) bool {
	return dumbTerminals[strings.ToLower(term)]
}

// EnterRaw puts the terminal into raw mode, returning a restore function
// that must be called (typically via defer) to put it back. A no-op
// restore is returned when the input isn't a TTY, so callers don't need
// to special-case that themselves.
func (a *Adapter) EnterRaw() (restore func(), err error) {
	if !a.IsTTY() {
		return func() {}, nil
	}
	saved, err := term.MakeRaw(a.fd)
	if err != nil {
		return nil, errors.Wrap(err, "termio: enter raw mode")
	}
	a.saved = saved
	return func() {
		if a.saved != nil {
			_ = term.Restore(a.fd, a.saved)
			a.saved = nil
		}
	}, nil
}

// GetScreenSize returns the terminal's columns and rows, falling back to
// 80x24 when the size can't be determined (redirected output, a
// non-terminal fd, or an unsupported platform) — the same fallback
// crossline_screen_size uses.
func (a *Adapter) GetScreenSize() (cols, rows int) {
	if !a.IsTTY() {
		return 80, 24
	}
	w, h, err := term.GetSize(a.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// ReadByte reads a single byte from the input, blocking until one
// arrives. It implements key.ByteReader so a *termio.Adapter can be
// handed directly to key.Decode. Callers must already be inside an
// EnterRaw/restore scope; outside of one, the terminal is in cooked
// mode and this will line-buffer instead of returning on the first key
// — use ReadByteRaw there instead.
func (a *Adapter) ReadByte() (byte, error) {
	b, err := a.reader.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "termio: read byte")
	}
	return b, nil
}

// ReadByteRaw enters raw mode, reads one byte, restores the prior mode,
// then returns. Unlike ReadByte, it needs no enclosing EnterRaw scope —
// it is for one-off reads from outside an interactive ReadLine call
// (e.g. a pager pause triggered by the standalone HistoryShow API),
// mirroring crossline_getch's own per-call tcsetattr/read/tcsetattr
// cycle rather than relying on a caller to have entered raw mode first.
func (a *Adapter) ReadByteRaw() (byte, error) {
	restore, err := a.EnterRaw()
	if err != nil {
		return 0, err
	}
	defer restore()
	return a.ReadByte()
}

// ReadDegradedLine reads one line the plain way (no raw mode, no
// editing): used when the input isn't a TTY or $TERM names an
// unsupported terminal. A trailing CR and/or LF is stripped, matching
// crossline_readline's fallback path (fgets then strip "\r\n").
func (a *Adapter) ReadDegradedLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "termio: read degraded line")
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// Write writes raw bytes to the output, e.g. rendered screen updates.
func (a *Adapter) Write(p []byte) (int, error) {
	n, err := a.out.Write(p)
	if err != nil {
		return n, errors.Wrap(err, "termio: write")
	}
	return n, nil
}

// WriteString is the string convenience form of Write.
func (a *Adapter) WriteString(s string) error {
	_, err := io.WriteString(a.out, s)
	if err != nil {
		return errors.Wrap(err, "termio: write string")
	}
	return nil
}

// NewlineBreak emits the literal " \b" that original_source/crossline.c
// prints before most post-edit newlines. It is not a cursor-position
// correction — it is a byte-for-byte compatibility quirk of the format
// this package is a port of, kept unconditionally. The crossline and
// completion packages write the same literal inline rather than calling
// this helper.
func (a *Adapter) NewlineBreak() error {
	return a.WriteString(" \b\n")
}
