package main

// handleNormalKey dispatches a decoded key event while in Normal mode.
func handleNormalKey(e *editorState, ev termEvent) {
	switch ev.key {
	case keyArrowUp:
		cursorUp(e)
	case keyArrowDown:
		cursorDown(e)
	case keyArrowLeft:
		cursorLeft(e)
	case keyArrowRight:
		cursorRight(e, true)
	case keyHome:
		cursorLineStart(e)
	case keyEnd:
		cursorLineEnd(e, true)
	case keyInsert:
		e.mode = modeInsert
	case keyPageUp:
		pageUp(e)
	case keyPageDown:
		pageDown(e)
	case keyDelete:
		normalDeleteChar(e)
	case keyBackspace:
		if e.x == 0 && e.y > 0 {
			cursorEndPreviousRow(e)
		} else {
			cursorLeft(e)
		}
	case keyEnter:
		cursorStartNextRow(e, false)
	case keyCtrl:
		switch ev.ch {
		case 'B':
			pageUp(e)
		case 'F':
			pageDown(e)
		case 'L':
			e.resized()
		}
	case keyChar:
		switch ev.ch {
		case 'h':
			cursorLeft(e)
		case 'j':
			cursorDown(e)
		case 'k':
			cursorUp(e)
		case 'l':
			cursorRight(e, true)
		case '0':
			cursorLineStart(e)
		case '$':
			cursorLineEnd(e, true)
		case '^':
			firstNonBlank(e)
		case 'x':
			normalDeleteChar(e)
		case 'i':
			e.mode = modeInsert
		case 'I':
			cursorLineStart(e)
			e.mode = modeInsert
		case 'a':
			cursorRight(e, false)
			e.mode = modeInsert
		case 'A':
			cursorLineEnd(e, false)
			e.mode = modeInsert
		case 'o':
			cursorLineEnd(e, false)
			insertNewline(e)
			e.mode = modeInsert
		case 'O':
			cursorEndPreviousRow(e)
			insertNewline(e)
			e.mode = modeInsert
		case ':':
			e.mode = modeCommandLine
			e.storedTx = e.tx
			e.tx = 1
			statusMessage(e, colorDefault, ":")
			e.term.SetCursor(e.tx, e.h-1)
		}
	}
}

// normalDeleteChar removes the byte under the cursor if the row is
// non-empty, marks the buffer modified, and redraws the current row.
func normalDeleteChar(e *editorState) {
	if e.buf.rowLen(e.y) == 0 {
		return
	}
	e.buf.charRemove(e.y, e.x)
	e.modified = true
	redrawRow(e, e.y, e.ty)
	e.term.SetCursor(e.x, e.ty)
}
