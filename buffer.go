package main

// INITIAL_BUFFER_ROWS is the slot count a freshly-created empty buffer
// starts with.
const INITIAL_BUFFER_ROWS = 32

// BUF_GROW is the per-site slot-count increment used when a buffer's
// slot slice is too small.
const BUF_GROW = 16

// FILE_BUFFER_ROWS is the slot count a buffer loaded from a file
// starts with.
const FILE_BUFFER_ROWS = 128

// FILE_BUF_GROW is the slot-count increment used while loading a file
// whose line count outgrows FILE_BUFFER_ROWS.
const FILE_BUF_GROW = 256

// buffer is an ordered sequence of optional row slots. A nil slot at
// index i represents a physically-present but textually-empty line;
// this avoids allocating a row for whitespace-only regions and for
// lines freshly created by a split.
type buffer struct {
	slots  []*row
	length int
}

// roundUpTo rounds x up to the nearest multiple of m.
func roundUpTo(x, m int) int {
	return ((x + m - 1) / m) * m
}

// newBuffer creates a buffer with cap slots and length 1, so the
// cursor always has a line to sit on.
func newBuffer(cap int) *buffer {
	return &buffer{slots: make([]*row, cap), length: 1}
}

func (b *buffer) cap() int {
	return len(b.slots)
}

// resize changes the buffer's slot count. Shrinking first drops every
// row at indices [newCap, cap) and clamps length to one past the last
// remaining non-empty slot, never to newCap-1 blindly.
func (b *buffer) resize(newCap int) {
	if newCap == b.cap() {
		return
	}
	if newCap < b.cap() {
		for i := newCap; i < b.cap(); i++ {
			b.slots[i] = nil
		}
		if b.length > newCap {
			b.length = newCap
			for b.length > 0 && b.slots[b.length-1] == nil {
				b.length--
			}
		}
		b.slots = b.slots[:newCap]
		return
	}
	b.slots = append(b.slots, make([]*row, newCap-b.cap())...)
}

// rowLen returns the length of the row at line, or 0 if the slot is
// empty.
func (b *buffer) rowLen(line int) int {
	if line < 0 || line >= b.cap() || b.slots[line] == nil {
		return 0
	}
	return b.slots[line].len()
}

// visualRowLen returns the rendered width of the row at line, or 0 if
// the slot is empty.
func (b *buffer) visualRowLen(line int) int {
	if line < 0 || line >= b.cap() || b.slots[line] == nil {
		return 0
	}
	return b.slots[line].visualLen()
}

// charInsert inserts c into the row at line at index, growing the
// buffer and allocating the row as needed.
func (b *buffer) charInsert(line int, c byte, index int) {
	if line >= b.cap() {
		newsize := line
		if newsize%BUF_GROW == 0 {
			newsize++
		}
		b.resize(roundUpTo(newsize, BUF_GROW))
	}
	if line >= b.length {
		b.length = line + 1
	}
	if b.slots[line] == nil {
		b.slots[line] = newRow(c)
	} else {
		b.slots[line].insertChar(c, index, ROW_GROW)
	}
}

// charRemove removes the byte at index from the row at line, if that
// row exists.
func (b *buffer) charRemove(line int, index int) {
	if line < b.cap() && b.slots[line] != nil {
		b.slots[line].removeChar(index)
	}
}

// shiftDown moves slots[from..length) right by one element, growing
// the buffer if needed. The freed slot at `from` is left as whatever
// it held before; callers assign it immediately.
func (b *buffer) shiftDown(from int, grow int) {
	if b.length+1 > b.cap() {
		b.resize(b.cap() + grow)
	}
	copy(b.slots[from+1:b.length+1], b.slots[from:b.length])
	b.length++
}

// shiftUp moves slots[from..length) left by one element over slot
// from-1, clearing the last slot. from==0 behaves as if from==1.
func (b *buffer) shiftUp(from int) {
	if from == 0 {
		from = 1
	}
	copy(b.slots[from-1:b.length-1], b.slots[from:b.length])
	b.length--
	b.slots[b.length] = nil
}
