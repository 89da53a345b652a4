package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBufferStartsWithOneLine(t *testing.T) {
	b := newBuffer(INITIAL_BUFFER_ROWS)
	require.Equal(t, 1, b.length)
	require.LessOrEqual(t, b.length, b.cap())
}

func TestBufferCharInsertAllocatesRow(t *testing.T) {
	b := newBuffer(4)
	b.charInsert(0, 'a', 0)
	require.Equal(t, 1, b.rowLen(0))
	require.Equal(t, "a", string(b.slots[0].bytes))
}

func TestBufferCharInsertGrowsBeyondCap(t *testing.T) {
	b := newBuffer(4)
	b.charInsert(10, 'z', 0)
	require.Greater(t, b.cap(), 10)
	require.Equal(t, 11, b.length)
	require.Equal(t, "z", string(b.slots[10].bytes))
}

func TestBufferShiftDownThenUpRestoresOthers(t *testing.T) {
	b := newBuffer(8)
	b.charInsert(0, 'a', 0)
	b.charInsert(1, 'b', 0)
	b.charInsert(2, 'c', 0)
	b.length = 3

	b.shiftDown(1, BUF_GROW)
	b.slots[1] = newRowFromBytes([]byte("new"))

	require.Equal(t, "a", string(b.slots[0].bytes))
	require.Equal(t, "new", string(b.slots[1].bytes))
	require.Equal(t, "b", string(b.slots[2].bytes))
	require.Equal(t, "c", string(b.slots[3].bytes))
	require.Equal(t, 4, b.length)

	b.shiftUp(2)
	require.Equal(t, "a", string(b.slots[0].bytes))
	require.Equal(t, "b", string(b.slots[1].bytes))
	require.Equal(t, "c", string(b.slots[2].bytes))
	require.Equal(t, 3, b.length)
}

func TestBufferShiftUpFromZeroActsAsOne(t *testing.T) {
	b := newBuffer(8)
	b.charInsert(0, 'a', 0)
	b.charInsert(1, 'b', 0)
	b.length = 2

	b.shiftUp(0)
	require.Equal(t, "b", string(b.slots[0].bytes))
	require.Equal(t, 1, b.length)
}

func TestBufferResizeShrinkClampsLen(t *testing.T) {
	b := newBuffer(8)
	b.charInsert(0, 'a', 0)
	b.charInsert(1, 'b', 0)
	b.charInsert(2, 'c', 0)
	b.length = 3

	b.resize(2)
	require.Equal(t, 2, b.cap())
	require.Equal(t, 2, b.length)
	require.Equal(t, "a", string(b.slots[0].bytes))
	require.Equal(t, "b", string(b.slots[1].bytes))
}

func TestBufferResizeShrinkSkipsEmptyTrailingSlots(t *testing.T) {
	b := newBuffer(8)
	b.charInsert(0, 'a', 0)
	b.length = 5 // lines 1..4 are empty slots

	b.resize(2)
	require.Equal(t, 1, b.length)
}
