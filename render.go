package main

import (
	"os"
	"strings"
)

// writeRaw writes s directly to stdout, bypassing the terminalDriver
// abstraction, for the bare CR-LF scroll trick that has no
// cursor/region semantics of its own.
func writeRaw(s string) {
	os.Stdout.WriteString(s)
}

// drawRow renders row r onto screen row ty,
// expanding tabs to TAB_WIDTH spaces and stopping once the emitted
// visual column reaches the row's total visual length.
func drawRow(e *editorState, ty int, r *row) {
	var b strings.Builder
	visual := 0
	total := r.visualLen()
	for i := 0; i < r.len() && visual < total; i++ {
		if r.bytes[i] == '\t' {
			for j := 0; j < TAB_WIDTH && visual < total; j++ {
				b.WriteByte(' ')
				visual++
			}
		} else {
			b.WriteByte(r.bytes[i])
			visual++
		}
	}
	e.term.Print(0, ty, colorDefault, b.String())
}

// redrawRow draws the row at buffer line y onto screen row ty, or the
// empty-row marker "~" once y is past the end of the buffer.
func redrawRow(e *editorState, y, ty int) {
	if y < e.buf.length {
		if e.buf.slots[y] != nil && e.buf.slots[y].len() > 0 {
			drawRow(e, ty, e.buf.slots[y])
		} else {
			e.term.ClearRow(ty)
		}
	} else {
		e.term.Print(0, ty, colorDefault, "~")
	}
}

// redraw repaints screen rows [startTy, endTy], advancing the buffer
// line by one for each, starting from startY.
func redraw(e *editorState, startY, startTy, endTy int) {
	y := startY
	for ty := startTy; ty <= endTy; ty++ {
		redrawRow(e, y, ty)
		y++
	}
}

// statusMessage prints text (optionally colored) on the status row.
func statusMessage(e *editorState, color, text string) {
	e.term.Print(0, e.h-1, color, text)
}

// statusMessagef is statusMessage with Printf-style formatting.
func statusMessagef(e *editorState, color, format string, args ...interface{}) {
	e.term.Printf(0, e.h-1, color, format, args...)
}
