package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabVisualColumn(t *testing.T) {
	e, _ := newTestEditor(80, 24)
	e.buf.slots[0] = newRowFromBytes([]byte("\tA"))
	e.buf.length = 1

	cursorRight(e, true)
	require.Equal(t, 1, e.x)
	require.Equal(t, TAB_WIDTH, e.tx)
}

func TestCursorRightLeftAcrossTab(t *testing.T) {
	e, _ := newTestEditor(80, 24)
	e.buf.slots[0] = newRowFromBytes([]byte("\tB"))
	e.buf.length = 1

	cursorLineEnd(e, true)
	require.Equal(t, 1, e.x)
	require.Equal(t, TAB_WIDTH, e.tx)

	cursorLeft(e)
	require.Equal(t, 0, e.x)
	require.Equal(t, 0, e.tx)
}

func TestFixXClampsToShorterRowByVisualColumn(t *testing.T) {
	e, _ := newTestEditor(80, 24)
	e.buf.slots[0] = newRowFromBytes([]byte("hello world"))
	e.buf.slots[1] = newRowFromBytes([]byte("hi"))
	e.buf.length = 2

	e.y = 0
	e.x = 8
	e.tx = 8

	cursorDown(e)
	require.Equal(t, 2, e.x)
	require.Equal(t, 2, e.tx)
}

func TestVerticalMotionUsesClampedColumnAsNextIntent(t *testing.T) {
	e, _ := newTestEditor(80, 24)
	e.buf.slots[0] = newRowFromBytes([]byte("hello world"))
	e.buf.slots[1] = newRowFromBytes([]byte("hi"))
	e.buf.slots[2] = newRowFromBytes([]byte("another long line"))
	e.buf.length = 3

	e.y, e.x, e.tx = 0, 8, 8
	cursorDown(e) // clamps to end of "hi"
	require.Equal(t, 2, e.x)
	cursorDown(e) // tx is now 2, so fixX lands on column 2 of the long row
	require.Equal(t, 2, e.x)
	require.Equal(t, 2, e.tx)
}

func TestPageUpPageDownClamp(t *testing.T) {
	e, _ := newTestEditor(80, 10)
	for i := 0; i < 30; i++ {
		e.buf.slots[i] = newRowFromBytes([]byte("line"))
	}
	e.buf.length = 30

	e.y = 20
	pageDown(e)
	require.Equal(t, 20+(e.h-3), e.y)
	require.Equal(t, 0, e.ty)

	pageUp(e)
	require.Equal(t, 20, e.y)
	require.Equal(t, e.h-2, e.ty)
}

// TestPageUpNearTopClampsTyToY covers the case where y itself is
// smaller than h-2: ty must not exceed y, or the implied top-of-screen
// buffer line (y-ty) would be negative.
func TestPageUpNearTopClampsTyToY(t *testing.T) {
	e, _ := newTestEditor(80, 10)
	for i := 0; i < 30; i++ {
		e.buf.slots[i] = newRowFromBytes([]byte("line"))
	}
	e.buf.length = 30

	e.y = 5
	pageUp(e)
	require.Equal(t, 0, e.y)
	require.Equal(t, 0, e.ty)
}

func TestPageDownClampsToBufferEnd(t *testing.T) {
	e, _ := newTestEditor(80, 10)
	e.buf.slots[0] = newRowFromBytes([]byte("only line"))
	e.buf.length = 1

	pageDown(e)
	require.Equal(t, 0, e.y)
}
