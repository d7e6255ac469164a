package completion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTruncatesOverlongFields(t *testing.T) {
	c := New()
	c.Add(string(make([]byte, 100)), string(make([]byte, 200)))
	require.Len(t, c.Entries, 1)
	assert.LessOrEqual(t, len(c.Entries[0].Word), MaxWordBytes-1)
	assert.LessOrEqual(t, len(c.Entries[0].Help), MaxHelpBytes-1)
}

func TestAddStopsAtMaxEntries(t *testing.T) {
	c := New()
	for i := 0; i < MaxEntries+10; i++ {
		c.Add("w", "")
	}
	assert.Len(t, c.Entries, MaxEntries)
}

func TestRenderNothingWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	printed, err := Render(&buf, New(), 80, 24, nil)
	require.NoError(t, err)
	assert.False(t, printed)
	assert.Empty(t, buf.String())
}

func TestRenderHintsOnly(t *testing.T) {
	c := New()
	c.SetHints("<filename>")
	var buf bytes.Buffer
	printed, err := Render(&buf, c, 80, 24, nil)
	require.NoError(t, err)
	assert.True(t, printed)
	assert.Contains(t, buf.String(), "Please input: <filename>\n")
}

func TestRenderHelpAlignedList(t *testing.T) {
	c := New()
	c.Add("go", "build and run")
	c.Add("gofmt", "format source")
	var buf bytes.Buffer
	printed, err := Render(&buf, c, 80, 24, nil)
	require.NoError(t, err)
	assert.True(t, printed)
	out := buf.String()
	assert.Contains(t, out, "go")
	assert.Contains(t, out, "build and run")
	assert.Contains(t, out, "gofmt")
}

func TestRenderMultiColumnWithoutHelp(t *testing.T) {
	c := New()
	for _, w := range []string{"alpha", "bravo", "charlie", "delta"} {
		c.Add(w, "")
	}
	var buf bytes.Buffer
	printed, err := Render(&buf, c, 20, 24, nil)
	require.NoError(t, err)
	assert.True(t, printed)
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "delta")
}
