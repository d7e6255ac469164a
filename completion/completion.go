// Package completion implements the word-completion callback protocol and
// the rendering of its results: a help-aligned single-column list when
// any entry carries help text, otherwise a byte-width multi-column list.
// Grounded on crossline_completion_add/crossline_hints_set/
// crossline_show_completions in original_source/crossline.c.
package completion

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/jcwangxp/crossline/paging"
)

const (
	// MaxEntries is the largest number of completion candidates kept
	// for one callback invocation. Mirrors CROSS_COMPLET_MAX_LINE.
	MaxEntries = 256
	// MaxWordBytes is the longest completion word kept. Mirrors
	// CROSS_COMPLET_WORD_LEN.
	MaxWordBytes = 64
	// MaxHelpBytes is the longest per-word help text kept. Mirrors
	// CROSS_COMPLET_HELP_LEN.
	MaxHelpBytes = 128
	// MaxHintBytes is the longest shared hint text kept. Mirrors
	// CROSS_COMPLET_HINT_LEN.
	MaxHintBytes = 128
)

// Entry is one candidate word with its optional help text.
type Entry struct {
	Word string
	Help string
}

// Completions accumulates the candidates a Callback produces for one
// completion request.
type Completions struct {
	Entries []Entry
	Hints   string
}

// New returns an empty Completions, ready for one callback invocation.
func New() *Completions {
	return &Completions{}
}

// Add appends a candidate, silently truncating an overlong word or help
// string and ignoring the call once MaxEntries has been reached.
// Mirrors crossline_completion_add.
func (c *Completions) Add(word, help string) {
	if len(c.Entries) >= MaxEntries {
		return
	}
	if len(word) > MaxWordBytes-1 {
		word = word[:MaxWordBytes-1]
	}
	if len(help) > MaxHelpBytes-1 {
		help = help[:MaxHelpBytes-1]
	}
	c.Entries = append(c.Entries, Entry{Word: word, Help: help})
}

// SetHints sets the shared "Please input: ..." syntax hint shown above
// the candidate list. Mirrors crossline_hints_set.
func (c *Completions) SetHints(hints string) {
	if len(hints) > MaxHintBytes-1 {
		hints = hints[:MaxHintBytes-1]
	}
	c.Hints = hints
}

// Callback is the host-supplied completion generator: given the buffer
// content up to the cursor, it populates out with candidates and/or
// hints.
type Callback func(line string, out *Completions)

// Render prints the completion list exactly as crossline_show_completions
// does and reports whether anything was printed at all (the caller uses
// this to decide whether to redraw the prompt and buffer afterward).
func Render(w io.Writer, c *Completions, cols, rows int, getByte func() (byte, error)) (printed bool, err error) {
	if c.Hints == "" && len(c.Entries) == 0 {
		return false, nil
	}
	if _, err := io.WriteString(w, " \b\n"); err != nil {
		return false, errors.Wrap(err, "completion: render")
	}
	printed = true

	if c.Hints != "" {
		if _, err := fmt.Fprintf(w, "Please input: %s\n", c.Hints); err != nil {
			return printed, errors.Wrap(err, "completion: render hints")
		}
	}
	if len(c.Entries) == 0 {
		return printed, nil
	}

	wordLen := 0
	withHelp := false
	for _, e := range c.Entries {
		if len(e.Word) > wordLen {
			wordLen = len(e.Word)
		}
		if e.Help != "" {
			withHelp = true
		}
	}

	pager := paging.New(w, cols, rows)

	if withHelp {
		for _, e := range c.Entries {
			pad := 4 + wordLen - len(e.Word)
			if _, err := fmt.Fprintf(w, "%s%s%s\n", e.Word, strings.Repeat(" ", pad), e.Help); err != nil {
				return printed, errors.Wrap(err, "completion: render entry")
			}
			abort, err := pager.Check(len(e.Help)+4+wordLen, getByte)
			if err != nil {
				return printed, err
			}
			if abort {
				break
			}
		}
		return printed, nil
	}

	wordNum := (cols + 4) / (wordLen + 4)
	if wordNum <= 0 {
		wordNum = 1
	}
	for i, e := range c.Entries {
		if i > 0 && i%wordNum == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return printed, errors.Wrap(err, "completion: render column break")
			}
			abort, err := pager.Check(wordLen, getByte)
			if err != nil {
				return printed, err
			}
			if abort {
				return printed, nil
			}
		}
		pad := 2 + wordLen - len(e.Word)
		if _, err := fmt.Fprintf(w, "%s%s", e.Word, strings.Repeat(" ", pad)); err != nil {
			return printed, errors.Wrap(err, "completion: render word")
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return printed, errors.Wrap(err, "completion: render trailing newline")
	}
	return printed, nil
}
