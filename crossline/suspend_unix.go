//go:build !windows

package crossline

import (
	"os"
	"syscall"
)

// suspend stops the current process with SIGSTOP, exactly raise(SIGSTOP)
// in crossline_readline_input's Ctrl-Z case; a foreground `fg` resumes it.
// On resume, the prompt and buffer are redrawn just like the <F1> help
// case: the cursor is forced to the end of line by the reprint, so refresh
// is told the old cursor sat at num before moving it back to its real spot.
func (e *Editor) suspend(lb *lineBuffer, out *outputBuffer, prompt string) error {
	if err := syscall.Kill(os.Getpid(), syscall.SIGSTOP); err != nil {
		e.log().Printf("suspend: %s", err)
		return nil
	}
	if err := e.term.WriteString(prompt + lb.text()); err != nil {
		return err
	}
	newPos := lb.pos
	lb.pos = lb.num
	lb.refresh(out, newPos, lb.num)
	return nil
}
