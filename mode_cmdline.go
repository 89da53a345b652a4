package main

// handleCommandLineKey dispatches a decoded key event while in
// Command-Line mode. Operates on e.cmd, the reused command-line row,
// with e.tx repurposed as the 1-based on-screen column on the status
// row (column 0 holds the leading ":").
func handleCommandLineKey(e *editorState, ev termEvent) {
	switch ev.key {
	case keyEsc:
		abortCommandLine(e)
	case keyArrowRight:
		if e.tx < e.w-1 && e.tx-1 < e.cmd.len() {
			e.tx++
			e.term.SetCursor(e.tx, e.h-1)
		}
	case keyArrowLeft:
		if e.tx > 1 {
			e.tx--
			e.term.SetCursor(e.tx, e.h-1)
		}
	case keyHome:
		e.tx = 1
		e.term.SetCursor(e.tx, e.h-1)
	case keyEnd:
		e.tx = e.cmd.len() + 1
		e.term.SetCursor(e.tx, e.h-1)
	case keyEnter:
		executeCommandLine(e)
	case keyBackspace:
		if e.tx > 1 && e.cmd.len() > 0 {
			e.cmd.removeChar(e.tx - 2)
			repaintCommandLine(e)
			e.tx--
			e.term.SetCursor(e.tx, e.h-1)
		}
	case keyDelete:
		if e.cmd.len() > 0 {
			e.cmd.removeChar(e.tx - 1)
			repaintCommandLine(e)
			e.term.SetCursor(e.tx, e.h-1)
		}
	case keyChar:
		if e.tx > 0 && e.tx < e.w-1 {
			e.cmd.insertChar(ev.ch, e.tx-1, ROW_GROW)
			repaintCommandLine(e)
			e.tx++
			e.term.SetCursor(e.tx, e.h-1)
		}
	}
}

func repaintCommandLine(e *editorState) {
	statusMessagef(e, colorDefault, ":%s", string(e.cmd.bytes))
}

// abortCommandLine discards the command and returns to Normal mode.
func abortCommandLine(e *editorState) {
	e.mode = modeNormal
	e.cmd.bytes = e.cmd.bytes[:0]
	e.cmd.tabs = 0
	e.term.ClearRow(e.h - 1)
	e.tx = e.storedTx
	e.term.SetCursor(e.x, e.ty)
}

// executeCommandLine runs the typed command and returns to Normal
// mode regardless of success; a failed command leaves its message on
// the status row instead of clearing it.
func executeCommandLine(e *editorState) {
	err := execCmd(e)
	if err == nil {
		e.term.ClearRow(e.h - 1)
	}
	e.mode = modeNormal
	e.cmd.bytes = e.cmd.bytes[:0]
	e.cmd.tabs = 0
	e.tx = e.storedTx
	e.term.SetCursor(e.x, e.ty)
}
