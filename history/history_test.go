package history

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSkipsEmptyAndLiteralHistory(t *testing.T) {
	h := New()
	h.Push("")
	h.Push(" ") // a single trailing space is stripped, same as crossline.c
	h.Push("history")
	assert.Equal(t, 0, h.Len())
}

func TestPushSkipsOnlyImmediatePriorDuplicate(t *testing.T) {
	h := New()
	h.Push("ls -l")
	h.Push("ls -l") // immediate dup, skipped
	h.Push("pwd")
	h.Push("ls -l") // distinct from immediate prior ("pwd"), kept
	assert.Equal(t, 3, h.Len())
}

func TestPushTrimsTrailingSpace(t *testing.T) {
	h := New()
	h.Push("ls -l ")
	got, ok := h.At(1)
	require.True(t, ok)
	assert.Equal(t, "ls -l", got)
}

func TestRingWrapsAtCapacity(t *testing.T) {
	h := New()
	for i := 0; i < MaxLines+5; i++ {
		h.Push(string(rune('a' + i%26)))
	}
	assert.Equal(t, MaxLines, h.Len())
}

func TestDumpOrderAndIDs(t *testing.T) {
	h := New()
	h.Push("one")
	h.Push("two")
	h.Push("three")

	var buf bytes.Buffer
	require.NoError(t, h.Dump(&buf, true, ""))
	assert.Equal(t, "   1  one\n   2  two\n   3  three\n", buf.String())
}

func TestDumpFiltersByPattern(t *testing.T) {
	h := New()
	h.Push("git commit -m fix")
	h.Push("git push origin main")
	h.Push("ls -la")

	var buf bytes.Buffer
	require.NoError(t, h.Dump(&buf, false, "git -push"))
	assert.Equal(t, "git commit -m fix\n", buf.String())
}

func TestSaveAndLoad(t *testing.T) {
	h := New()
	h.Push("first")
	h.Push("second")

	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")
	require.NoError(t, h.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))

	h2 := New()
	require.NoError(t, h2.Load(path))
	assert.Equal(t, 2, h2.Len())
	got, ok := h2.At(2)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestLoadTruncatesOverlongLineAndKeepsReadingRest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")
	overlong := strings.Repeat("x", MaxLineBytes+50)
	require.NoError(t, os.WriteFile(path, []byte(overlong+"\nafter\n"), 0o600))

	h := New()
	require.NoError(t, h.Load(path))
	assert.Equal(t, 2, h.Len())

	first, ok := h.At(1)
	require.True(t, ok)
	assert.Len(t, first, MaxLineBytes-1)

	second, ok := h.At(2)
	require.True(t, ok)
	assert.Equal(t, "after", second)
}

func TestLoadHandlesFileWithNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo"), 0o600))

	h := New()
	require.NoError(t, h.Load(path))
	assert.Equal(t, 2, h.Len())
	got, ok := h.At(2)
	require.True(t, ok)
	assert.Equal(t, "two", got)
}

func TestClear(t *testing.T) {
	h := New()
	h.Push("a")
	h.Clear()
	assert.Equal(t, 0, h.Len())
	_, ok := h.At(1)
	assert.False(t, ok)
}

func TestWalkNumbersWithinFilteredOrdering(t *testing.T) {
	h := New()
	h.Push("alpha one")
	h.Push("beta two")
	h.Push("alpha three")

	var ids []int
	var lines []string
	h.Walk("alpha", func(id int, line string) bool {
		ids = append(ids, id)
		lines = append(lines, line)
		return false
	})
	assert.Equal(t, []int{1, 2}, ids)
	assert.Equal(t, []string{"alpha one", "alpha three"}, lines)
}

func TestWalkStopsEarly(t *testing.T) {
	h := New()
	h.Push("one")
	h.Push("two")
	h.Push("three")

	var seen int
	total := h.Walk("", func(id int, line string) bool {
		seen++
		return id == 1
	})
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, total)
}

func TestMatchAtResolvesAgainstFilteredOrderingNotUnfiltered(t *testing.T) {
	h := New()
	h.Push("alpha one")
	h.Push("beta two")
	h.Push("alpha three")

	got, ok := h.MatchAt("alpha", 2)
	require.True(t, ok)
	assert.Equal(t, "alpha three", got)

	_, ok = h.MatchAt("alpha", 3) // only 2 entries match
	assert.False(t, ok)

	_, ok = h.MatchAt("alpha", 0)
	assert.False(t, ok)
}

func TestSplitPatterns(t *testing.T) {
	assert.Equal(t, []string{"foo", "-bar"}, SplitPatterns("foo -bar"))
	assert.Equal(t, []string{"foo bar"}, SplitPatterns(`"foo bar"`))
	assert.Equal(t, []string{"-foo bar"}, SplitPatterns(`-"foo bar"`))
	assert.Nil(t, SplitPatterns(""))
}
