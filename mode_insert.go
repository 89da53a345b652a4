package main

// handleInsertKey dispatches a decoded key event while in Insert mode.
func handleInsertKey(e *editorState, ev termEvent) {
	switch ev.key {
	case keyEsc:
		e.mode = modeNormal
		e.term.ClearRow(e.h - 1)
		e.term.SetCursor(e.x, e.ty)
	case keyArrowUp:
		cursorUp(e)
	case keyArrowDown:
		cursorDown(e)
	case keyArrowRight:
		cursorRight(e, false)
	case keyArrowLeft:
		cursorLeft(e)
	case keyHome:
		cursorLineStart(e)
	case keyEnd:
		cursorLineEnd(e, false)
	case keyPageUp:
		pageUp(e)
	case keyPageDown:
		pageDown(e)
	case keyEnter:
		e.modified = true
		insertNewline(e)
	case keyBackspace:
		insertBackspace(e)
	case keyDelete:
		if e.buf.rowLen(e.y) > 0 {
			e.modified = true
			e.buf.charRemove(e.y, e.x)
			redrawRow(e, e.y, e.ty)
			e.term.SetCursor(e.x, e.ty)
		}
	case keyTab:
		if e.tx < e.w-TAB_WIDTH {
			e.modified = true
			e.buf.charInsert(e.y, '\t', e.x)
			e.x++
			e.tx += TAB_WIDTH
			redrawRow(e, e.y, e.ty)
			e.term.SetCursor(e.x, e.ty)
		}
	case keyChar:
		if e.tx < e.w-1 {
			e.modified = true
			e.buf.charInsert(e.y, ev.ch, e.x)
			e.x++
			e.tx++
			redrawRow(e, e.y, e.ty)
			e.term.SetCursor(e.x, e.ty)
		}
	}
}

// insertBackspace removes the character behind the cursor if there's
// room to, or joins the current row with the previous one at column 0.
func insertBackspace(e *editorState) {
	if e.x > 0 && e.buf.rowLen(e.y) > 0 {
		e.modified = true
		before := e.buf.slots[e.y].bytes[e.x-1] == '\t'
		e.buf.charRemove(e.y, e.x-1)
		e.x--
		if before {
			e.tx -= TAB_WIDTH
		} else {
			e.tx--
		}
		redrawRow(e, e.y, e.ty)
		e.term.SetCursor(e.x, e.ty)
	} else if e.x == 0 && e.y > 0 {
		e.modified = true
		removeNewline(e)
	}
}

// insertNewline performs split-at-cursor: the row at the cursor is
// split into the text before and after x, the tail becomes a new row
// one line down, and the cursor moves to the start of that new row.
func insertNewline(e *editorState) {
	rowLen := e.buf.rowLen(e.y)
	switch {
	case rowLen > 0 && e.x < rowLen:
		// Text on this row, cursor inside it: split the row.
		cur := e.buf.slots[e.y]
		tail := make([]byte, rowLen-e.x)
		copy(tail, cur.bytes[e.x:])

		e.buf.shiftDown(e.y+1, BUF_GROW)
		e.buf.slots[e.y+1] = newRowFromBytes(tail)

		cur.bytes = cur.bytes[:e.x]
		tabs := 0
		for _, c := range cur.bytes {
			if c == '\t' {
				tabs++
			}
		}
		cur.tabs = tabs

		redraw(e, e.y, e.ty, e.h-2)
	case e.y < e.buf.length-1:
		// Past end of row (or row empty), but text follows this row.
		e.buf.shiftDown(e.y+1, BUF_GROW)
		e.buf.slots[e.y+1] = nil
		redraw(e, e.y+1, e.ty+1, e.h-2)
	default:
		// No text after this row.
		e.buf.length++
		e.term.ClearRow(e.ty + 1)
	}
	cursorStartNextRow(e, true)
}

// removeNewline performs join-with-previous: appends the current row
// onto the previous one (or drops whichever of the two is empty), then
// moves the cursor to the join point. Assumes x==0 && y>0.
func removeNewline(e *editorState) {
	curNotEmpty := e.buf.rowLen(e.y) > 0
	prevNotEmpty := e.buf.rowLen(e.y-1) > 0

	switch {
	case curNotEmpty && prevNotEmpty:
		prev := e.buf.slots[e.y-1]
		oldLen := prev.len()
		prev.bytes = append(prev.bytes, e.buf.slots[e.y].bytes...)
		prev.cap = cap(prev.bytes)
		prev.tabs += e.buf.slots[e.y].tabs
		e.buf.slots[e.y] = nil
		e.buf.shiftUp(e.y + 1)
		e.x = oldLen
	case prevNotEmpty:
		e.buf.slots[e.y] = nil
		e.buf.shiftUp(e.y + 1)
		e.x = e.buf.slots[e.y-1].len()
	default:
		e.buf.slots[e.y-1] = nil
		e.buf.shiftUp(e.y)
		e.x = 0
	}

	e.y--
	if e.ty > 0 {
		e.ty--
	}
	e.tx = visualCol(e, e.y, e.x)
	redraw(e, e.y, e.ty, e.h-2)
	e.term.SetCursor(e.x, e.ty)
}
