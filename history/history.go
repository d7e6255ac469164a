// Package history implements the fixed-capacity command history ring:
// push-if-distinct-from-prior, pattern-filtered dump, and plain-text
// save/load. Grounded on crossline_history_* in
// original_source/crossline.c.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	// MaxLines is the number of history slots kept; the (MaxLines+1)th
	// push overwrites the oldest entry. Mirrors CROSS_HISTORY_MAX_LINE.
	MaxLines = 256
	// MaxLineBytes mirrors CROSS_HISTORY_BUF_LEN, the size of the C
	// buffer each history slot copies into; one byte of that is reserved
	// for the null terminator, so stored content is truncated to
	// MaxLineBytes-1.
	MaxLineBytes = 1024
)

// History is a ring buffer of recently entered lines, safe for concurrent
// use from a single editor's read/write goroutines.
type History struct {
	mu     sync.Mutex
	lines  [MaxLines]string
	nextID uint32 // monotonically increasing; never reset except by Clear
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Push appends line unless it is empty, the literal word "history", or
// equal to the immediately-prior entry. Mirrors the save-history block at
// the end of crossline_readline_input: trailing space is stripped before
// either the empty/“history” check or the duplicate comparison.
func (h *History) Push(line string) {
	line = strings.TrimSuffix(line, " ")
	if len(line) > MaxLineBytes-1 {
		line = line[:MaxLineBytes-1]
	}
	if line == "" || line == "history" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.nextID > 0 && h.lines[(h.nextID-1)%MaxLines] == line {
		return
	}
	h.lines[h.nextID%MaxLines] = line
	h.nextID++
}

// Len returns how many non-empty entries are currently stored (at most
// MaxLines).
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.nextID > MaxLines {
		return MaxLines
	}
	return int(h.nextID)
}

// At returns the entry at the given 1-based display id, as produced by
// Dump, and whether that id exists.
func (h *History) At(displayID int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if displayID <= 0 {
		return "", false
	}
	id := 0
	for i := h.nextID; i < h.nextID+MaxLines; i++ {
		slot := h.lines[i%MaxLines]
		if slot == "" {
			continue
		}
		id++
		if id == displayID {
			return slot, true
		}
	}
	return "", false
}

// NextID returns the raw monotonic counter that would be assigned to the
// next pushed entry. The editor's Up/Down/PgUp/PgDn navigation walks this
// raw id space directly, distinct from the 1-based display ids At/Dump use.
func (h *History) NextID() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.nextID
}

// EntryAt returns the entry stored under the given raw id (as returned by
// NextID), and whether that slot currently holds a live entry. A ring slot
// that has been overwritten since, or never written, reports false.
func (h *History) EntryAt(id uint32) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if id >= h.nextID || h.nextID-id > MaxLines {
		return "", false
	}
	line := h.lines[id%MaxLines]
	if line == "" {
		return "", false
	}
	return line, true
}

// Clear wipes every entry and resets the id counter, mirroring
// crossline_history_clear.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = [MaxLines]string{}
	h.nextID = 0
}

// Walk visits every live entry (oldest first) matching patterns (no
// filter when patterns is empty), calling fn with each entry's 1-based
// display id *within that filtered ordering*. It stops early if fn
// returns true. The return value is however many entries were visited,
// which equals the total match count when fn never stops early. Dump
// and MatchAt both build on this shared pass, so a display id printed
// by one always names the same line looked up by the other — mirroring
// how crossline_history_dump's single loop serves printing, counting
// and id-resolution alike (original_source/crossline.c:520-546).
func (h *History) Walk(patterns string, fn func(id int, line string) bool) int {
	h.mu.Lock()
	lines := h.lines
	nextID := h.nextID
	h.mu.Unlock()

	patList := SplitPatterns(patterns)
	id := 0
	for i := nextID; i < nextID+MaxLines; i++ {
		line := lines[i%MaxLines]
		if line == "" {
			continue
		}
		if patterns != "" && !MatchPatterns(line, patList) {
			continue
		}
		id++
		if fn(id, line) {
			break
		}
	}
	return id
}

// MatchAt returns the line at the given 1-based display id within the
// patterns-filtered ordering Walk/Dump produce, and whether that id is
// valid. Callers resolving a selection made after a filtered listing
// (crossline_history_search's "Input history id" prompt) must use this,
// not At: At walks the unfiltered set and names the wrong line as soon
// as patterns excludes anything earlier in history.
func (h *History) MatchAt(patterns string, id int) (string, bool) {
	if id <= 0 {
		return "", false
	}
	var found string
	ok := false
	h.Walk(patterns, func(i int, line string) bool {
		if i == id {
			found, ok = line, true
			return true
		}
		return false
	})
	return found, ok
}

// Dump writes every entry (oldest first) matching patterns to w. When
// printID is true each line is prefixed with its 1-based display id in
// "%4d  %s\n" form, matching crossline_history_dump.
func (h *History) Dump(w io.Writer, printID bool, patterns string) error {
	var werr error
	h.Walk(patterns, func(id int, line string) bool {
		var err error
		if printID {
			_, err = fmt.Fprintf(w, "%4d  %s\n", id, line)
		} else {
			_, err = fmt.Fprintf(w, "%s\n", line)
		}
		if err != nil {
			werr = errors.Wrap(err, "history: dump")
			return true
		}
		return false
	})
	return werr
}

// Save writes every entry, oldest first and without ids, to filename.
func (h *History) Save(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "history: save")
	}
	defer f.Close()
	return h.Dump(f, false, "")
}

// Load appends every line of filename (CR/LF stripped) as new history
// entries, oldest first, without applying the duplicate-suppression Push
// uses — matching crossline_history_load, which loads raw.
func (h *History) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "history: load")
	}
	defer f.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	// ReadLine, not ReadString('\n') or Scanner: Scanner aborts the whole
	// load on one overlong line (bufio.ErrTooLong), which is worse than
	// the original C loader's fgets-based resilience, but ReadString
	// would buffer an entire unterminated line into memory before any
	// truncation could apply. ReadLine hands back bounded chunks (capped
	// by the reader's own internal buffer) and reports isPrefix when a
	// logical line spans more than one chunk, so we can cap retained
	// bytes at MaxLineBytes-1 and discard the rest of an overlong line
	// without ever growing an unbounded buffer, while still reading
	// every remaining line in the file.
	reader := bufio.NewReader(f)
	var line []byte
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if len(chunk) > 0 && len(line) < MaxLineBytes-1 {
			room := MaxLineBytes - 1 - len(line)
			if room > len(chunk) {
				room = len(chunk)
			}
			line = append(line, chunk[:room]...)
		}
		if !isPrefix {
			if s := string(line); s != "" {
				h.lines[h.nextID%MaxLines] = s
				h.nextID++
			}
			line = nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "history: load")
		}
	}
}
