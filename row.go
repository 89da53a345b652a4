package main

import "golang.org/x/exp/slices"

// TAB_WIDTH is the fixed visual width of a tab character.
const TAB_WIDTH = 8

// INITIAL_ROW_SIZE is the capacity a freshly-allocated row starts with.
const INITIAL_ROW_SIZE = 128

// ROW_GROW is the per-site capacity increment used when a row's backing
// array is too small to take another byte. Growth is additive rather
// than doubling: each reallocation adds exactly ROW_GROW bytes, never
// a multiple of the current size.
const ROW_GROW = 64

// row is a single editable line: a byte string with a cached tab count.
// cap tracks the row's own allocated capacity independently of Go's
// slice-growth bookkeeping, so insertChar can enforce additive growth
// instead of append's doubling. A row is created lazily on the first
// byte written at its line index and dropped when its line is removed.
type row struct {
	bytes []byte
	cap   int
	tabs  int
}

// newRow creates a row holding a single byte.
func newRow(c byte) *row {
	r := &row{bytes: make([]byte, 0, INITIAL_ROW_SIZE), cap: INITIAL_ROW_SIZE}
	r.bytes = append(r.bytes, c)
	if c == '\t' {
		r.tabs = 1
	}
	return r
}

// newRowFromBytes creates a row taking ownership of b as its initial
// content (used by the file codec, which already has the line bytes
// in hand and shouldn't copy them again). len and cap are both derived
// from b itself, matching whatever capacity the caller's buffer holds.
func newRowFromBytes(b []byte) *row {
	r := &row{bytes: b, cap: cap(b)}
	for _, c := range b {
		if c == '\t' {
			r.tabs++
		}
	}
	return r
}

func (r *row) len() int {
	return len(r.bytes)
}

// insertChar inserts c at index, clamping index to the row's length.
// If the backing array can't hold one more byte plus one spare slot
// (the cap >= len+2 rule), it's grown by
// exactly grow bytes first (additive, not doubling) before the actual
// shift is delegated to slices.Insert, which by then always finds
// capacity already in place and never grows the array itself.
func (r *row) insertChar(c byte, index, grow int) {
	if index > r.len() {
		index = r.len()
	}
	if r.cap < r.len()+2 {
		grown := make([]byte, r.len(), r.cap+grow)
		copy(grown, r.bytes)
		r.bytes = grown
		r.cap += grow
	}
	r.bytes = slices.Insert(r.bytes, index, c)
	if c == '\t' {
		r.tabs++
	}
}

// removeChar removes the byte at index, clamping index to the last
// valid byte. A no-op on an empty row.
func (r *row) removeChar(index int) {
	if r.len() == 0 {
		return
	}
	if index > r.len()-1 {
		index = r.len() - 1
	}
	c := r.bytes[index]
	r.bytes = slices.Delete(r.bytes, index, index+1)
	if c == '\t' {
		r.tabs--
	}
}

// visualLen returns the row's rendered width: its byte length plus the
// extra width each tab expands by.
func (r *row) visualLen() int {
	return r.len() + r.tabs*(TAB_WIDTH-1)
}
