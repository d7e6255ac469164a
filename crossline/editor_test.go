package crossline

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcwangxp/crossline/history"
	"github.com/jcwangxp/crossline/termio"
)

// newTestEditor returns an Editor wired to a pipe so its term field is a
// real *termio.Adapter without needing an actual terminal device.
func newTestEditor(t *testing.T) (*Editor, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})
	e := &Editor{
		delimiter: DefaultDelimiter,
		history:   history.New(),
		term:      termio.New(inR, outW),
	}
	return e, outR
}

func TestWordBackSkipsDelimitersThenWord(t *testing.T) {
	var lb lineBuffer
	lb.setText("foo bar baz")
	lb.pos = len(lb.text())
	pos := wordBack(&lb, DefaultDelimiter)
	assert.Equal(t, 8, pos) // start of "baz"
}

func TestWordForwardSkipsDelimitersThenWord(t *testing.T) {
	var lb lineBuffer
	lb.setText("foo bar baz")
	lb.pos = 0
	pos := wordForward(&lb, DefaultDelimiter)
	assert.Equal(t, 3, pos) // end of "foo"
}

func TestTransformWordUppercasesInPlace(t *testing.T) {
	var lb lineBuffer
	lb.setText("hello world")
	lb.pos = 0
	newPos := transformWord(&lb, DefaultDelimiter, func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 32
		}
		return r
	})
	assert.Equal(t, 5, newPos)
	assert.Equal(t, "HELLO world", lb.text())
}

func TestCapitalizeWordUppercasesFirstRuneOnly(t *testing.T) {
	var lb lineBuffer
	lb.setText("hello world")
	lb.pos = 0
	newPos := capitalizeWord(&lb, DefaultDelimiter)
	assert.Equal(t, 5, newPos)
	assert.Equal(t, "Hello world", lb.text())
}

func TestHistoryCopyOverwritesBufferAndRefreshes(t *testing.T) {
	e, _ := newTestEditor(t)
	e.history.Push("first command")
	e.history.Push("second command")

	var lb lineBuffer
	lb.setText("draft")
	out := &outputBuffer{}

	e.historyCopy(&lb, out, 0) // raw id 0 == "first command"
	assert.Equal(t, "first command", lb.text())
	assert.Equal(t, len("first command"), lb.pos)
}

func TestHistoryCopyMissingIDIsNoop(t *testing.T) {
	e, _ := newTestEditor(t)

	var lb lineBuffer
	lb.setText("draft")
	out := &outputBuffer{}

	e.historyCopy(&lb, out, 999)
	assert.Equal(t, "draft", lb.text(), "a missing history id must leave the buffer untouched")
}

func TestSetClipTruncatesToMaxLineBytes(t *testing.T) {
	e, _ := newTestEditor(t)
	long := make([]byte, history.MaxLineBytes+10)
	for i := range long {
		long[i] = 'x'
	}
	e.setClip(string(long))
	assert.Len(t, e.getClip(), history.MaxLineBytes-1)
}

func TestDumpHistoryCountsMatchesUnpaged(t *testing.T) {
	e, _ := newTestEditor(t)
	e.history.Push("alpha one")
	e.history.Push("beta two")
	e.history.Push("alpha three")

	var buf bufferWriter
	count, err := e.dumpHistory(&buf, "alpha", false, nil) // unpaged: readByte is never called
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, string(buf.data), "alpha one")
	assert.Contains(t, string(buf.data), "alpha three")
	assert.NotContains(t, string(buf.data), "beta two")
}

func TestHistorySearchResolvesSelectionAgainstFilteredOrdering(t *testing.T) {
	e, _ := newTestEditor(t)
	// Five entries, only two match "alpha"; the unfiltered display id of
	// "alpha three" is 4, but within the filtered listing it is id 2.
	e.history.Push("alpha one")
	e.history.Push("beta two")
	e.history.Push("gamma two")
	e.history.Push("alpha three")
	e.history.Push("delta four")

	entry, ok := e.history.MatchAt("alpha", 2)
	require.True(t, ok)
	assert.Equal(t, "alpha three", entry)

	// The same id resolved against the unfiltered set names a different
	// line entirely -- this is exactly the bug MatchAt exists to avoid.
	unfiltered, ok := e.history.At(2)
	require.True(t, ok)
	assert.NotEqual(t, entry, unfiltered)
}

func TestHistoryMatchAtRejectsOutOfRangeID(t *testing.T) {
	e, _ := newTestEditor(t)
	e.history.Push("alpha one")
	e.history.Push("beta two")
	e.history.Push("alpha three")

	_, ok := e.history.MatchAt("alpha", 3) // only 2 entries match
	assert.False(t, ok)
}

// bufferWriter is a minimal io.Writer so the test above doesn't need to
// import bytes just for this one call.
type bufferWriter struct {
	data []byte
}

func (b *bufferWriter) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
