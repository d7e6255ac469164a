// Package paging implements the "more"-style pager crossline uses when
// printing history, help text, or completion lists longer than the
// screen. Grounded on crossline_print_paging in
// original_source/crossline.c.
package paging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Hint is the exact prompt crossline prints when a page fills up.
const Hint = "*** Press <Space> or <Enter> to continue . . ."

// Controller tracks how many screen rows have been printed since the
// last pause and prompts for a key once the viewport is full.
type Controller struct {
	w         io.Writer
	cols      int
	rows      int
	printLine int
}

// New returns a Controller that paginates output written to w, assuming
// a terminal of the given size.
func New(w io.Writer, cols, rows int) *Controller {
	if cols <= 1 {
		cols = 80
	}
	if rows <= 1 {
		rows = 24
	}
	return &Controller{w: w, cols: cols, rows: rows}
}

// Check accounts for a line of the given length that was just printed,
// and — if the page is now full — prints the pause hint, blocks on
// getByte for one key, clears the hint, and reports whether the caller
// should stop printing further output. Any key other than Space, CR or
// LF aborts; Space/Enter simply resets the page and lets output
// continue. Mirrors crossline_print_paging exactly.
func (c *Controller) Check(lineLen int, getByte func() (byte, error)) (abort bool, err error) {
	c.printLine += (lineLen + c.cols - 1) / c.cols
	if c.printLine < c.rows-1 {
		return false, nil
	}

	if _, err := io.WriteString(c.w, Hint); err != nil {
		return false, errors.Wrap(err, "paging: print hint")
	}
	ch, err := getByte()
	if err != nil {
		return false, errors.Wrap(err, "paging: read key")
	}
	clear := strings.Repeat("\b", len(Hint)) + strings.Repeat(" ", len(Hint)) + strings.Repeat("\b", len(Hint))
	if _, err := io.WriteString(c.w, clear); err != nil {
		return false, errors.Wrap(err, "paging: clear hint")
	}

	if ch != ' ' && ch != '\r' && ch != '\n' {
		return true, nil
	}
	c.printLine = 0
	return false, nil
}
