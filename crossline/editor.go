// Package crossline is a line editor for interactive terminal input:
// cursor motion, kill-ring style cut/paste, word completion, and a
// searchable command history, all driven by a single normalized Key
// stream from the key package. Ported from original_source/crossline.c.
package crossline

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"unicode"

	"github.com/pkg/errors"

	"github.com/jcwangxp/crossline/completion"
	"github.com/jcwangxp/crossline/history"
	"github.com/jcwangxp/crossline/key"
	"github.com/jcwangxp/crossline/paging"
	"github.com/jcwangxp/crossline/termio"
)

// Sentinel errors a host can match with errors.Is.
var (
	// ErrAborted is returned when the user cancels the line with
	// Ctrl-C or Ctrl-G.
	ErrAborted = errors.New("crossline: input aborted")
)

// Editor owns all of a line editor's process-wide state: history, the
// clipboard, the word-delimiter set and the completion callback. The
// package-level ReadLine/HistorySave/etc. functions are thin wrappers
// around one default Editor, but a host that needs isolated state (tests,
// multiple independent prompts) can construct its own.
type Editor struct {
	mu         sync.Mutex
	delimiter  string
	history    *history.History
	clip       string
	completion completion.Callback
	term       *termio.Adapter
	logger     *log.Logger
}

// NewEditor returns an Editor reading from stdin and writing to stdout.
func NewEditor() *Editor {
	return &Editor{
		delimiter: DefaultDelimiter,
		history:   history.New(),
		term:      termio.New(os.Stdin, os.Stdout),
		logger:    log.New(os.Stderr, "crossline: ", 0),
	}
}

// log returns e.logger, defaulting to stderr for an Editor built via a
// struct literal (e.g. in tests) rather than NewEditor, so callers never
// need to nil-check it themselves.
func (e *Editor) log() *log.Logger {
	if e.logger == nil {
		return log.New(os.Stderr, "crossline: ", 0)
	}
	return e.logger
}

// History returns the editor's command history.
func (e *Editor) History() *history.History { return e.history }

// SetWordDelimiters overrides the default set of move/cut word
// boundaries. Mirrors crossline_delimiter_set.
func (e *Editor) SetWordDelimiters(delim string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if delim != "" {
		e.delimiter = delim
	}
}

// RegisterCompletion installs the callback invoked on <TAB>/<Alt-=>.
// Mirrors crossline_completion_register.
func (e *Editor) RegisterCompletion(cb completion.Callback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.completion = cb
}

func (e *Editor) delimiters() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.delimiter
}

func (e *Editor) completionCallback() completion.Callback {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completion
}

// ReadLine prompts and reads one line, applying full interactive editing
// when the input is a capable terminal and falling back to a plain read
// otherwise. Mirrors crossline_readline.
func (e *Editor) ReadLine(prompt string) (string, error) {
	return e.readLine(prompt, "", false)
}

// ReadLineWithInput behaves like ReadLine but seeds the buffer with
// initial text the user can edit before accepting or discarding it.
func (e *Editor) ReadLineWithInput(prompt, initial string) (string, error) {
	return e.readLine(prompt, initial, true)
}

func (e *Editor) readLine(prompt, initial string, hasInput bool) (string, error) {
	if !e.term.IsTTY() || termio.Unsupported(os.Getenv("TERM")) {
		line, err := e.term.ReadDegradedLine()
		if err != nil {
			return "", err
		}
		return line, nil
	}

	restore, err := e.term.EnterRaw()
	if err != nil {
		// A failed switch to raw mode is logged and the read goes on
		// without it.
		e.log().Printf("%s", err)
		restore = func() {}
	}
	defer restore()

	line, err := e.readLineInput(prompt, initial, hasInput, false)
	if err != nil {
		return "", err
	}
	e.history.Push(line)
	return line, nil
}

// readLineInput is the interactive editing loop. has_input seeds the
// buffer; in_his disables history navigation and completion, used when
// recursively invoked for history-pattern search. Mirrors
// crossline_readline_input.
func (e *Editor) readLineInput(prompt, initial string, hasInput, inHis bool) (string, error) {
	var lb lineBuffer
	if hasInput {
		lb.setText(truncate(initial, MaxLineBytes))
	}
	input := lb.text()
	copyBuf := false
	historyID := e.history.NextID()
	delims := e.delimiters()

	if err := e.term.WriteString(prompt + lb.text()); err != nil {
		return "", err
	}

	out := &outputBuffer{}
	flush := func() error {
		if out.Len() == 0 {
			return nil
		}
		s := out.String()
		out.Reset()
		return e.term.WriteString(s)
	}

	for {
		k, _, err := key.Decode(e.term)
		if err != nil {
			return "", err
		}

		switch {
		case k == key.NamedKey(key.NamedF1): // Show help
			if err := flush(); err != nil {
				return "", err
			}
			if err := e.showHelp(inHis); err != nil {
				return "", err
			}
			if err := e.term.WriteString(prompt + lb.text()); err != nil {
				return "", err
			}
			newPos := lb.pos
			lb.pos = lb.num
			lb.refresh(out, newPos, lb.num)

		case k.IsCtrlLetter('^'): // KEY_DEBUG: keyboard debug mode
			if err := flush(); err != nil {
				return "", err
			}
			if err := e.debugMode(); err != nil {
				return "", err
			}
			if err := e.term.WriteString(prompt + lb.text()); err != nil {
				return "", err
			}
			newPos := lb.pos
			lb.pos = lb.num
			lb.refresh(out, newPos, lb.num)

		/* Move Commands */
		case k == key.NamedKey(key.NamedLeft) || k.IsCtrlLetter('B'):
			if lb.pos > 0 {
				lb.refresh(out, lb.pos-1, lb.num)
			}

		case k == key.NamedKey(key.NamedRight) || k.IsCtrlLetter('F'):
			if lb.pos < lb.num {
				lb.refresh(out, lb.pos+1, lb.num)
			}

		case k.IsAltLetter('b') || k == key.NamedKey(key.NamedCtrlLeft) || k == key.NamedKey(key.NamedAltLeft):
			newPos := wordBack(&lb, delims)
			lb.refresh(out, newPos, lb.num)

		case k.IsAltLetter('f') || k == key.NamedKey(key.NamedCtrlRight) || k == key.NamedKey(key.NamedAltRight):
			newPos := wordForward(&lb, delims)
			lb.refresh(out, newPos, lb.num)

		case k.IsCtrlLetter('A') || k == key.NamedKey(key.NamedHome):
			lb.refresh(out, 0, lb.num)

		case k.IsCtrlLetter('E') || k == key.NamedKey(key.NamedEnd):
			lb.refresh(out, lb.num, lb.num)

		case k.IsCtrlLetter('L'): // Clear screen and redisplay
			if err := flush(); err != nil {
				return "", err
			}
			clearScreen()
			if err := e.term.WriteString(prompt + lb.text()); err != nil {
				return "", err
			}
			newPos := lb.pos
			lb.pos = lb.num
			lb.refresh(out, newPos, lb.num)

		/* Edit Commands */
		case k == key.NamedKey(key.NamedBackspace) || k.IsCtrlLetter('H'):
			if lb.pos > 0 {
				lb.shift(lb.pos-1, lb.pos)
				lb.refresh(out, lb.pos-1, lb.num-1)
			}

		case k == key.NamedKey(key.NamedDelete) || k.IsCtrlLetter('D'):
			if lb.pos < lb.num {
				lb.shift(lb.pos, lb.pos+1)
				lb.refresh(out, lb.pos, lb.num-1)
			} else if lb.num == 0 && k.IsCtrlLetter('D') {
				if err := out.write2(" \b\n"); err != nil {
					return "", err
				}
				if err := flush(); err != nil {
					return "", err
				}
				return "", io.EOF
			}

		case k.IsAltLetter('u') || k == key.NamedKey(key.NamedCtrlUp) || k == key.NamedKey(key.NamedAltUp):
			newPos := transformWord(&lb, delims, unicode.ToUpper)
			lb.refresh(out, newPos, lb.num)

		case k.IsAltLetter('l') || k == key.NamedKey(key.NamedCtrlDown) || k == key.NamedKey(key.NamedAltDown):
			newPos := transformWord(&lb, delims, unicode.ToLower)
			lb.refresh(out, newPos, lb.num)

		case k.IsAltLetter('c'):
			newPos := capitalizeWord(&lb, delims)
			lb.refresh(out, newPos, lb.num)

		case k.IsAltByte('\\'): // Delete whitespace around cursor
			newPos := lb.pos
			for newPos > 0 && lb.buf[newPos-1] == ' ' {
				newPos--
			}
			lb.shift(newPos, lb.pos)
			lb.refresh(out, newPos, lb.num-(lb.pos-newPos))
			newPos2 := lb.pos
			for newPos2 < lb.num && lb.buf[newPos2] == ' ' {
				newPos2++
			}
			lb.shift(lb.pos, newPos2)
			lb.refresh(out, lb.pos, lb.num-(newPos2-lb.pos))

		case k.IsCtrlLetter('T'): // Transpose character
			if lb.pos > 0 && lb.pos < lb.num && !isDelim(delims, lb.buf[lb.pos]) && !isDelim(delims, lb.buf[lb.pos-1]) {
				lb.buf[lb.pos], lb.buf[lb.pos-1] = lb.buf[lb.pos-1], lb.buf[lb.pos]
				lb.refresh(out, lb.pos+1, lb.num)
			} else if lb.pos > 1 && !isDelim(delims, lb.buf[lb.pos-1]) && !isDelim(delims, lb.buf[lb.pos-2]) {
				lb.buf[lb.pos-1], lb.buf[lb.pos-2] = lb.buf[lb.pos-2], lb.buf[lb.pos-1]
				lb.refresh(out, lb.pos, lb.num)
			}

		/* Cut & Paste Commands */
		case k.IsCtrlLetter('K') || k == key.NamedKey(key.NamedCtrlEnd) || k == key.NamedKey(key.NamedAltEnd):
			e.setClip(string(lb.buf[lb.pos:lb.num]))
			lb.refresh(out, lb.pos, lb.pos)

		case k.IsCtrlLetter('U') || k == key.NamedKey(key.NamedCtrlHome) || k == key.NamedKey(key.NamedAltHome):
			e.setClip(string(lb.buf[:lb.pos]))
			lb.shift(0, lb.pos)
			lb.refresh(out, 0, lb.num-lb.pos)

		case k.IsCtrlLetter('X'), k.IsAltLetter('r'):
			if k.IsCtrlLetter('X') {
				e.setClip(lb.text())
			}
			lb.refresh(out, 0, 0)

		case k.IsCtrlLetter('W') || k == key.NamedKey(key.NamedAltBackspace) || k == key.Ctrl(31):
			newPos := lb.pos
			if newPos > 1 && lb.buf[newPos-1] == ' ' {
				newPos--
			}
			for newPos > 0 && isDelim(delims, lb.buf[newPos]) {
				newPos--
			}
			if k.IsCtrlLetter('W') {
				for newPos > 0 && lb.buf[newPos] != ' ' {
					newPos--
				}
			} else {
				for newPos > 0 && !isDelim(delims, lb.buf[newPos]) {
					newPos--
				}
			}
			e.setClip(string(lb.buf[newPos:lb.pos]))
			lb.shift(newPos, lb.pos)
			lb.refresh(out, newPos, lb.num-(lb.pos-newPos))

		case k.IsAltLetter('d') || k == key.NamedKey(key.NamedAltDel) || k == key.NamedKey(key.NamedCtrlDel):
			newPos := lb.pos
			for newPos < lb.num && isDelim(delims, lb.buf[newPos]) {
				newPos++
			}
			for newPos < lb.num && !isDelim(delims, lb.buf[newPos]) {
				newPos++
			}
			e.setClip(string(lb.buf[lb.pos:newPos]))
			lb.shift(lb.pos, newPos)
			lb.refresh(out, lb.pos, lb.num-(newPos-lb.pos))

		case k.IsCtrlLetter('Y') || k.IsCtrlLetter('V') || k == key.NamedKey(key.NamedInsert):
			clip := e.getClip()
			if len(clip)+lb.num < MaxLineBytes {
				lb.insertAt(lb.pos, []byte(clip))
				lb.refresh(out, lb.pos+len(clip), lb.num)
			}

		/* Complete Commands */
		case k == key.NamedKey(key.NamedTab) || k.IsCtrlLetter('I') || k.IsAltByte('=') || k.IsAltByte('?'):
			cb := e.completionCallback()
			if inHis || cb == nil || lb.pos != lb.num {
				break
			}
			if err := flush(); err != nil {
				return "", err
			}
			comps := completion.New()
			cb(lb.text(), comps)
			tabOnly := k == key.NamedKey(key.NamedTab) || k.IsCtrlLetter('I')
			if len(comps.Entries) == 1 && tabOnly {
				wordStart := lb.pos
				for wordStart > 0 && !isDelim(delims, lb.buf[wordStart-1]) {
					wordStart--
				}
				word := comps.Entries[0].Word + " "
				room := MaxLineBytes - 1 - wordStart
				if len(word) > room {
					word = word[:room]
				}
				n := copy(lb.buf[wordStart:], word)
				lb.refresh(out, wordStart+n, wordStart+n)
			} else {
				cols, rows := e.term.GetScreenSize()
				printed, err := completion.Render(e.term, comps, cols, rows, e.term.ReadByte)
				if err != nil {
					return "", err
				}
				if printed {
					if err := e.term.WriteString(prompt + lb.text()); err != nil {
						return "", err
					}
				}
			}

		/* History Commands */
		case k == key.NamedKey(key.NamedUp) || k.IsCtrlLetter('P'):
			if inHis {
				break
			}
			if !copyBuf {
				input = lb.text()
				copyBuf = true
			}
			if historyID > 0 && uint64(historyID)+history.MaxLines > uint64(e.history.NextID()) {
				historyID--
				e.historyCopy(&lb, out, historyID)
			}

		case k == key.NamedKey(key.NamedDown) || k.IsCtrlLetter('N'):
			if inHis {
				break
			}
			if !copyBuf {
				input = lb.text()
				copyBuf = true
			}
			if historyID+1 < e.history.NextID() {
				historyID++
				e.historyCopy(&lb, out, historyID)
			} else {
				historyID = e.history.NextID()
				n := copy(lb.buf[:], input)
				lb.refresh(out, n, n)
			}

		case k.IsAltByte('<') || k == key.NamedKey(key.NamedPgUp):
			if inHis {
				break
			}
			if !copyBuf {
				input = lb.text()
				copyBuf = true
			}
			if e.history.NextID() > 0 {
				if e.history.NextID() < history.MaxLines {
					historyID = 0
				} else {
					historyID = e.history.NextID() - history.MaxLines
				}
				e.historyCopy(&lb, out, historyID)
			}

		case k.IsAltByte('>') || k == key.NamedKey(key.NamedPgDn):
			if inHis {
				break
			}
			if !copyBuf {
				input = lb.text()
				copyBuf = true
			}
			historyID = e.history.NextID()
			n := copy(lb.buf[:], input)
			lb.refresh(out, n, n)

		case k.IsCtrlLetter('R') || k.IsCtrlLetter('S') || k == key.NamedKey(key.NamedF4):
			if inHis {
				break
			}
			if err := flush(); err != nil {
				return "", err
			}
			input = lb.text()
			var seed string
			if k == key.NamedKey(key.NamedF4) {
				seed = lb.text()
			}
			found, foundID, err := e.historySearch(seed)
			if err != nil {
				return "", err
			}
			if found {
				lb.setText(truncate(foundID, MaxLineBytes))
			} else {
				lb.setText(truncate(input, MaxLineBytes))
			}
			if err := e.term.WriteString(prompt + lb.text()); err != nil {
				return "", err
			}

		case k == key.NamedKey(key.NamedF2): // Show history
			if inHis || e.history.NextID() == 0 {
				break
			}
			if err := flush(); err != nil {
				return "", err
			}
			if err := e.term.WriteString(" \b\n"); err != nil {
				return "", err
			}
			if _, err := e.dumpHistory(e.term, "", true, e.term.ReadByte); err != nil {
				return "", err
			}
			if err := e.term.WriteString(prompt + lb.text()); err != nil {
				return "", err
			}
			newPos := lb.pos
			lb.pos = lb.num
			lb.refresh(out, newPos, lb.num)

		case k == key.NamedKey(key.NamedF3): // Clear history (confirm)
			if inHis {
				break
			}
			if err := flush(); err != nil {
				return "", err
			}
			if err := e.term.WriteString(" \b\n!!! Confirm to clear history [y]: "); err != nil {
				return "", err
			}
			confirm, err := e.term.ReadByte()
			if err != nil {
				return "", err
			}
			if confirm == 'y' {
				if err := e.term.WriteString(" \b\nHistory are cleared!"); err != nil {
					return "", err
				}
				e.history.Clear()
				historyID = 0
			}
			if err := e.term.WriteString(" \b\n" + prompt + lb.text()); err != nil {
				return "", err
			}
			lb.refresh(out, lb.pos, lb.num)

		/* Control Commands */
		case k == key.NamedKey(key.NamedEnter) || k.IsCtrlLetter('M') || k.IsCtrlLetter('J'):
			lb.refresh(out, lb.num, lb.num)
			if err := out.write2(" \b\n"); err != nil {
				return "", err
			}
			if err := flush(); err != nil {
				return "", err
			}
			line := lb.text()
			if n := len(line); n > 0 && line[n-1] == ' ' {
				line = line[:n-1]
			}
			return line, nil

		case k.IsCtrlLetter('C') || k.IsCtrlLetter('G'):
			lb.refresh(out, lb.num, lb.num)
			if k.IsCtrlLetter('C') {
				out.write2(" \b^C\n")
			} else {
				out.write2(" \b\n")
			}
			if err := flush(); err != nil {
				return "", err
			}
			return "", ErrAborted

		case k.IsCtrlLetter('Z'):
			if err := flush(); err != nil {
				return "", err
			}
			if err := e.suspend(&lb, out, prompt); err != nil {
				return "", err
			}

		default:
			if k.Printable() && lb.num < MaxLineBytes-1 {
				lb.insertAt(lb.pos, []byte{k.Byte})
				lb.refresh(out, lb.pos+1, lb.num)
				copyBuf = false
			}
		}

		if err := flush(); err != nil {
			return "", err
		}
	}
}

func (e *Editor) setClip(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(s) > history.MaxLineBytes-1 {
		s = s[:history.MaxLineBytes-1]
	}
	e.clip = s
}

func (e *Editor) getClip() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clip
}

// historyCopy overwrites lb's content with history entry historyID and
// refreshes the display. The overwrite happens before lb.pos/lb.num are
// updated so refresh sees the OLD cursor/length for its relative-motion
// math, exactly crossline_history_copy.
func (e *Editor) historyCopy(lb *lineBuffer, out *outputBuffer, historyID uint32) {
	entry, ok := e.history.EntryAt(historyID)
	if !ok {
		return
	}
	n := copy(lb.buf[:], entry)
	lb.refresh(out, n, n)
}

func (e *Editor) showHelp(searchMode bool) error {
	texts := HelpText
	if searchMode {
		texts = SearchHelpText
	}
	if err := e.term.WriteString(" \b\n"); err != nil {
		return err
	}
	cols, rows := e.term.GetScreenSize()
	pager := paging.New(e.term, cols, rows)
	for _, line := range texts {
		if err := e.term.WriteString(line + "\n"); err != nil {
			return err
		}
		abort, err := pager.Check(len(line), e.term.ReadByte)
		if err != nil {
			return err
		}
		if abort {
			break
		}
	}
	return nil
}

func (e *Editor) debugMode() error {
	if err := e.term.WriteString(" \b\nEnter keyboard debug mode, <Ctrl-C> to exit debug\n"); err != nil {
		return err
	}
	for {
		b, err := e.term.ReadByte()
		if err != nil {
			return err
		}
		if b == 3 { // Ctrl-C
			return nil
		}
		display := byte(' ')
		if unicode.IsPrint(rune(b)) {
			display = b
		}
		if err := e.term.WriteString(fmt.Sprintf("%3d 0x%02x (%c)\n", b, b, display)); err != nil {
			return err
		}
	}
}

// historySearch runs the recursive interactive search subeditor: the
// user types filter patterns, matching history lines are listed with
// display ids, and they pick one by id. The listing and the id lookup
// both walk the same patterns-filtered ordering, so a display id always
// names the line it was just printed next to. Mirrors
// crossline_history_search.
func (e *Editor) historySearch(seed string) (found bool, line string, err error) {
	if err := e.term.WriteString(" \b\n"); err != nil {
		return false, "", err
	}
	pattern, err := e.readLineInput("Input Patterns <F1> help: ", seed, seed != "", true)
	if err != nil {
		if errors.Is(err, ErrAborted) || errors.Is(err, io.EOF) {
			return false, "", nil
		}
		return false, "", err
	}

	count, err := e.dumpHistory(e.term, pattern, true, e.term.ReadByte)
	if err != nil {
		return false, "", err
	}
	if count == 0 {
		return false, "", nil
	}

	defaultID := ""
	hasInput := false
	if count == 1 {
		defaultID = "1"
		hasInput = true
	}
	idStr, err := e.readLineInput("Input history id: ", defaultID, hasInput, true)
	if err != nil {
		if errors.Is(err, ErrAborted) || errors.Is(err, io.EOF) {
			return false, "", nil
		}
		return false, "", err
	}
	if idStr == "" {
		return false, "", nil
	}

	id := 0
	for _, c := range idStr {
		if c < '0' || c > '9' {
			if err := e.term.WriteString(fmt.Sprintf("Invalid history id: %s\n", idStr)); err != nil {
				return false, "", err
			}
			return false, "", nil
		}
		id = id*10 + int(c-'0')
	}
	if id <= 0 || id > count {
		if err := e.term.WriteString(fmt.Sprintf("Invalid history id: %s\n", idStr)); err != nil {
			return false, "", err
		}
		return false, "", nil
	}
	entry, ok := e.history.MatchAt(pattern, id)
	if !ok {
		if err := e.term.WriteString(fmt.Sprintf("Invalid history id: %s\n", idStr)); err != nil {
			return false, "", err
		}
		return false, "", nil
	}
	return true, entry, nil
}

// dumpHistory writes every history entry matching patterns (oldest
// first, numbered in the patterns-filtered ordering) to w, pausing
// every screenful via the paging controller when paged is true.
// Returns how many entries were listed: every match, or fewer when the
// pager was aborted. <F2>, the search listing, and the
// standalone HistoryShow API all share this so a later id lookup
// (History.MatchAt) walks the exact same ordering that was just
// printed. Mirrors crossline_history_dump's combined print-and-count
// pass.
//
// readByte supplies the pager's single-key pause read. <F2> and the
// search listing run inside readLineInput's already-active raw-mode
// scope and pass e.term.ReadByte; HistoryShow runs outside any such
// scope and must pass e.term.ReadByteRaw instead, or the pause would
// block on cooked-mode line buffering the way crossline_getch's own
// per-call raw-mode toggle avoids.
func (e *Editor) dumpHistory(w io.Writer, patterns string, paged bool, readByte func() (byte, error)) (int, error) {
	var pager *paging.Controller
	if paged {
		cols, rows := e.term.GetScreenSize()
		pager = paging.New(w, cols, rows)
	}
	var opErr error
	count := e.history.Walk(patterns, func(id int, line string) bool {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", id, line); err != nil {
			opErr = err
			return true
		}
		if pager == nil {
			return false
		}
		abort, err := pager.Check(len(line)+6, readByte)
		if err != nil {
			opErr = err
			return true
		}
		return abort
	})
	if opErr != nil {
		return 0, opErr
	}
	return count, nil
}

func (o *outputBuffer) write2(s string) error {
	o.WriteString(s)
	return nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func wordBack(lb *lineBuffer, delims string) int {
	newPos := lb.pos - 1
	for newPos > 0 && isDelim(delims, lb.buf[newPos]) {
		newPos--
	}
	for newPos > 0 && !isDelim(delims, lb.buf[newPos]) {
		newPos--
	}
	if newPos != 0 {
		return newPos + 1
	}
	return newPos
}

func wordForward(lb *lineBuffer, delims string) int {
	newPos := lb.pos
	for newPos < lb.num && isDelim(delims, lb.buf[newPos]) {
		newPos++
	}
	for newPos < lb.num && !isDelim(delims, lb.buf[newPos]) {
		newPos++
	}
	return newPos
}

func transformWord(lb *lineBuffer, delims string, f func(rune) rune) int {
	newPos := lb.pos
	for newPos < lb.num && isDelim(delims, lb.buf[newPos]) {
		newPos++
	}
	for newPos < lb.num && !isDelim(delims, lb.buf[newPos]) {
		lb.buf[newPos] = byte(f(rune(lb.buf[newPos])))
		newPos++
	}
	return newPos
}

func capitalizeWord(lb *lineBuffer, delims string) int {
	newPos := lb.pos
	for newPos < lb.num && isDelim(delims, lb.buf[newPos]) {
		newPos++
	}
	if newPos < lb.num {
		lb.buf[newPos] = byte(unicode.ToUpper(rune(lb.buf[newPos])))
	}
	for newPos < lb.num && !isDelim(delims, lb.buf[newPos]) {
		newPos++
	}
	return newPos
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}
