package crossline

import (
	"github.com/jcwangxp/crossline/completion"
)

// std is the package-level Editor backing the free functions below, for
// hosts that just want a single shared prompt/history without managing an
// *Editor themselves. Mirrors crossline.c's process-wide static state.
var std = NewEditor()

// ReadLine prompts on the standard Editor and reads one line.
func ReadLine(prompt string) (string, error) {
	return std.ReadLine(prompt)
}

// ReadLineWithInput prompts on the standard Editor, seeding the buffer
// with editable initial text.
func ReadLineWithInput(prompt, initial string) (string, error) {
	return std.ReadLineWithInput(prompt, initial)
}

// SetWordDelimiters overrides the standard Editor's word-boundary set.
func SetWordDelimiters(delim string) {
	std.SetWordDelimiters(delim)
}

// RegisterCompletion installs the standard Editor's <TAB> completion
// callback.
func RegisterCompletion(cb completion.Callback) {
	std.RegisterCompletion(cb)
}

// HistorySave writes the standard Editor's history to filename.
func HistorySave(filename string) error {
	return std.History().Save(filename)
}

// HistoryLoad appends filename's lines onto the standard Editor's history.
func HistoryLoad(filename string) error {
	return std.History().Load(filename)
}

// HistoryShow prints the standard Editor's history to stdout via its
// terminal adapter, pausing every screenful when stdin is a terminal.
// Mirrors crossline_history_show's isatty-conditioned paging. Unlike
// <F2>, this runs outside any ReadLine call, so the pager's pause read
// must toggle raw mode itself (ReadByteRaw) rather than assume one is
// already active, mirroring crossline_getch's own per-call
// tcsetattr/read/tcsetattr cycle.
func HistoryShow() error {
	_, err := std.dumpHistory(std.term, "", std.term.IsTTY(), std.term.ReadByteRaw)
	return err
}

// HistoryClear empties the standard Editor's history.
func HistoryClear() {
	std.History().Clear()
}
