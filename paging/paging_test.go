package paging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDoesNotPauseBeforePageFills(t *testing.T) {
	var out strings.Builder
	c := New(&out, 80, 5)
	abort, err := c.Check(10, func() (byte, error) { t.Fatal("getByte should not be called"); return 0, nil })
	require.NoError(t, err)
	assert.False(t, abort)
	assert.Empty(t, out.String())
}

func TestCheckPausesOncePageFillsAndSpaceContinues(t *testing.T) {
	var out strings.Builder
	c := New(&out, 80, 3) // rows-1 == 2
	_, err := c.Check(80, func() (byte, error) { return 0, nil })
	require.NoError(t, err)
	abort, err := c.Check(80, func() (byte, error) { return ' ', nil })
	require.NoError(t, err)
	assert.False(t, abort)
	assert.Contains(t, out.String(), Hint)
	assert.Equal(t, 0, c.printLine, "space resets the page counter")
}

func TestCheckAbortsOnAnyOtherKey(t *testing.T) {
	var out strings.Builder
	c := New(&out, 80, 2)
	abort, err := c.Check(80, func() (byte, error) { return 'q', nil })
	require.NoError(t, err)
	assert.True(t, abort)
}

func TestNewClampsDegenerateSize(t *testing.T) {
	var out strings.Builder
	c := New(&out, 0, 0)
	assert.Equal(t, 80, c.cols)
	assert.Equal(t, 24, c.rows)
}
