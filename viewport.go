package main

// visualCol returns the on-screen column corresponding to byte offset
// x within the row at line: the sum, over bytes before x, of
// TAB_WIDTH for a tab and 1 otherwise.
func visualCol(e *editorState, line, x int) int {
	if line < 0 || line >= e.buf.cap() || e.buf.slots[line] == nil {
		return 0
	}
	r := e.buf.slots[line]
	col := 0
	for i := 0; i < x && i < r.len(); i++ {
		if r.bytes[i] == '\t' {
			col += TAB_WIDTH
		} else {
			col++
		}
	}
	return col
}

// fixX recomputes x for the current row so that its visual column is
// the smallest one reaching or exceeding the saved intent column
// oldTx, walking left to right and stopping at row end. This is what
// makes vertical motion "sticky to column".
func fixX(e *editorState, oldTx int) {
	rowLen := e.buf.rowLen(e.y)
	if rowLen == 0 {
		e.x, e.tx = 0, 0
		return
	}
	r := e.buf.slots[e.y]
	col := 0
	for i := 0; i < rowLen; i++ {
		if col >= oldTx {
			e.x = i
			e.tx = col
			return
		}
		if r.bytes[i] == '\t' {
			col += TAB_WIDTH
		} else {
			col++
		}
	}
	e.x = rowLen
	e.tx = col
}

// cursorUp moves the cursor up one buffer line, applying fixX and
// scrolling the viewport (full redraw) when already at the top row.
func cursorUp(e *editorState) {
	if e.y == 0 {
		return
	}
	oldTx := e.tx
	e.y--
	fixX(e, oldTx)
	if e.ty > 0 {
		e.ty--
	} else {
		redraw(e, e.y, 0, e.h-2)
	}
	e.term.SetCursor(e.x, e.ty)
}

// cursorDown moves the cursor down one buffer line. Past the last
// visible row it relies on the terminal's natural scroll: two CR-LFs
// plus a redraw of just the new bottom row.
func cursorDown(e *editorState) {
	if e.buf.length == 0 || e.y >= e.buf.length-1 {
		return
	}
	oldTx := e.tx
	e.y++
	fixX(e, oldTx)
	if e.ty < e.h-2 {
		e.ty++
	} else {
		emitCRLF(2)
		redrawRow(e, e.y, e.h-2)
	}
	e.term.SetCursor(e.x, e.ty)
}

// cursorRight advances the cursor by one byte, unless stopBeforeLast
// keeps it one short of row end (vi's normal-mode convention).
func cursorRight(e *editorState, stopBeforeLast bool) {
	limit := e.buf.rowLen(e.y)
	if stopBeforeLast && limit > 0 {
		limit--
	}
	if e.tx < e.w-1 && e.x < limit {
		tab := e.buf.slots[e.y] != nil && e.x < e.buf.slots[e.y].len() && e.buf.slots[e.y].bytes[e.x] == '\t'
		e.x++
		if tab {
			e.tx += TAB_WIDTH
		} else {
			e.tx++
		}
		e.term.SetCursor(e.x, e.ty)
	}
}

// cursorLeft moves the cursor back one byte.
func cursorLeft(e *editorState) {
	if e.x == 0 {
		return
	}
	e.x--
	if e.buf.slots[e.y] != nil && e.buf.slots[e.y].bytes[e.x] == '\t' {
		e.tx -= TAB_WIDTH
	} else {
		e.tx--
	}
	e.term.SetCursor(e.x, e.ty)
}

func cursorLineStart(e *editorState) {
	e.x, e.tx = 0, 0
	e.term.SetCursor(e.x, e.ty)
}

// cursorLineEnd moves to the end of the row; stopBeforeLast steps back
// one visual cell using the last byte's width (vi's "$" behavior).
func cursorLineEnd(e *editorState, stopBeforeLast bool) {
	e.x = e.buf.rowLen(e.y)
	e.tx = e.buf.visualRowLen(e.y)
	if stopBeforeLast && e.x > 0 {
		last := e.buf.slots[e.y].bytes[e.x-1]
		e.x--
		if last == '\t' {
			e.tx -= TAB_WIDTH
		} else {
			e.tx--
		}
	}
	e.term.SetCursor(e.x, e.ty)
}

// firstNonBlank positions the cursor at the row's first non-blank
// byte, or its last byte if the row is all blank.
func firstNonBlank(e *editorState) {
	rowLen := e.buf.rowLen(e.y)
	if rowLen == 0 {
		e.x, e.tx = 0, 0
		e.term.SetCursor(e.x, e.ty)
		return
	}
	r := e.buf.slots[e.y]
	idx := -1
	for i := 0; i < rowLen; i++ {
		if r.bytes[i] != ' ' && r.bytes[i] != '\t' {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = rowLen - 1
	}
	e.x = idx
	e.tx = visualCol(e, e.y, idx)
	e.term.SetCursor(e.x, e.ty)
}

// cursorStartNextRow moves to the start of the next buffer line, if
// any. stripExtraNewline selects one-vs-two CR-LFs when scrolling past
// the bottom (used by both Enter-in-Normal and split-at-cursor).
func cursorStartNextRow(e *editorState, stripExtraNewline bool) {
	if e.buf.length == 0 || e.y >= e.buf.length-1 {
		return
	}
	e.y++
	e.x, e.tx = 0, 0
	if e.ty < e.h-2 {
		e.ty++
	} else {
		if stripExtraNewline {
			emitCRLF(1)
		} else {
			emitCRLF(2)
		}
		redrawRow(e, e.y, e.h-2)
	}
	e.term.SetCursor(e.x, e.ty)
}

// cursorEndPreviousRow moves to the end of the previous buffer line.
func cursorEndPreviousRow(e *editorState) {
	if e.y == 0 {
		return
	}
	e.y--
	e.x = e.buf.rowLen(e.y)
	e.tx = e.buf.visualRowLen(e.y)
	if e.ty > 0 {
		e.ty--
	} else {
		redraw(e, e.y, 0, e.h-2)
	}
	e.term.SetCursor(e.x, e.ty)
}

// pageUp / pageDown move by h-3 lines, snapping ty to the opposite
// edge and clamping y to buffer bounds, then doing a full redraw.
func pageUp(e *editorState) {
	e.y -= e.h - 3
	if e.y < 0 {
		e.y = 0
	}
	e.ty = e.h - 2
	if e.ty > e.y {
		e.ty = e.y
	}
	clampXAfterPage(e)
	redraw(e, e.y-e.ty, 0, e.h-2)
	e.term.SetCursor(e.x, e.ty)
}

func pageDown(e *editorState) {
	e.y += e.h - 3
	if e.buf.length > 0 && e.y > e.buf.length-1 {
		e.y = e.buf.length - 1
	}
	e.ty = 0
	clampXAfterPage(e)
	redraw(e, e.y, 0, e.h-2)
	e.term.SetCursor(e.x, e.ty)
}

func clampXAfterPage(e *editorState) {
	rowLen := e.buf.rowLen(e.y)
	if e.x > rowLen {
		e.x = rowLen
	}
	e.tx = visualCol(e, e.y, e.x)
}

// emitCRLF writes n CR-LF pairs directly to the terminal, the scroll
// trick used instead of a full redraw.
func emitCRLF(n int) {
	for i := 0; i < n; i++ {
		writeRaw("\r\n")
	}
}
