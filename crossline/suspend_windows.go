//go:build windows

package crossline

// suspend is a no-op on Windows: there is no job-control SIGSTOP
// equivalent, and original_source/crossline.c's Ctrl-Z case is itself
// compiled out entirely under _WIN32.
func (e *Editor) suspend(lb *lineBuffer, out *outputBuffer, prompt string) error {
	return nil
}
