package main

import (
	"fmt"
	"log"
	"os"
)

// editorMode is one of the three modes the mode interpreter (C6)
// dispatches on.
type editorMode int

const (
	modeNormal editorMode = iota
	modeInsert
	modeCommandLine
)

// editorState is the single record owning the buffer, the reused
// command-line row, cursor/viewport coordinates, and session flags.
type editorState struct {
	term terminalDriver
	buf  *buffer
	cmd  *row // reused across command-line entries

	x, y   int // cursor position in buffer coordinates
	tx, ty int // cursor position in screen coordinates

	w, h int

	mode     editorMode
	storedTx int

	filename      string
	filenameOwned bool
	modified      bool
	writtenOnce   bool
	done          bool
}

// fatalTerm is the terminal driver dief restores before printing a
// diagnostic and exiting, set by main once the terminal's Init has
// succeeded.
var fatalTerm terminalDriver

// dief prints a one-line diagnostic prefixed with argv0, restores the
// terminal if one has been initialized, and exits non-zero.
func dief(format string, args ...interface{}) {
	if fatalTerm != nil {
		fatalTerm.Shutdown()
	}
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	msg := fmt.Sprintf(format, args...)
	log.Fatalf("%s: %s", os.Args[0], msg)
}

// diefErr is dief for the common case of a failed syscall/stdlib call:
// it appends err's text to the message.
func diefErr(format string, err error) {
	dief(format+" %s", err.Error())
}

func newEditorState(term terminalDriver) *editorState {
	return &editorState{
		term: term,
		cmd:  &row{},
	}
}

// open loads filename into the state's buffer if it exists and is
// readable, or starts a fresh empty buffer otherwise.
func (e *editorState) open(filename string) {
	if filename == "" {
		e.buf = newBuffer(INITIAL_BUFFER_ROWS)
		return
	}
	buf, err := loadBuffer(filename)
	if err != nil {
		e.buf = newBuffer(INITIAL_BUFFER_ROWS)
		e.filename = filename
		return
	}
	e.buf = buf
	e.filename = filename
}

// resized re-measures the terminal, clamps cursor/viewport state to
// the new size, and triggers a full redraw.
func (e *editorState) resized() {
	w, h, err := e.term.Size()
	if err != nil {
		w, h = FALLBACK_WIDTH, FALLBACK_HEIGHT
	}
	if h < 2 {
		dief("terminal height too low")
	}
	e.w, e.h = w, h

	fmt.Print("\033[2J")
	startY := 0
	if e.y > e.h-2 {
		startY = e.y - (e.h - 2)
	}
	redraw(e, startY, 0, e.h-2)

	if e.x > e.w-2 {
		e.x = e.w - 2
	}
	if e.ty < e.y && e.y <= e.h-2 {
		e.ty = e.y
	} else if e.y > e.h-2 {
		e.ty = e.h - 2
	}
	e.term.SetCursor(e.x, e.ty)
}

// run is the main program loop: initialize, full redraw, then
// dispatch events until done.
func run(e *editorState) {
	w, h, err := e.term.Size()
	if err != nil {
		w, h = FALLBACK_WIDTH, FALLBACK_HEIGHT
	}
	if h < 2 {
		dief("terminal height too low")
	}
	e.w, e.h = w, h

	redraw(e, 0, 0, e.h-2)
	e.term.SetCursor(0, 0)

	for !e.done {
		ev, err := e.term.WaitEvent()
		if err != nil {
			dief("waiting for terminal event: %s", err.Error())
		}
		switch ev.kind {
		case eventResize:
			e.resized()
		case eventKey:
			switch e.mode {
			case modeCommandLine:
				handleCommandLineKey(e, ev)
			case modeInsert:
				handleInsertKey(e, ev)
			case modeNormal:
				handleNormalKey(e, ev)
			}
		}
	}
}
