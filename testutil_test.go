package main

import "fmt"

// fakeTerminal is a terminalDriver used by the test suite in place of
// unixTerminal: it records what was drawn instead of touching a real
// tty, and lets tests feed a canned event queue.
type fakeTerminal struct {
	w, h    int
	events  []termEvent
	printed map[int]string // screen row -> last printed text
	cursorX int
	cursorY int
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{w: w, h: h, printed: make(map[int]string)}
}

func (f *fakeTerminal) Init() error { return nil }
func (f *fakeTerminal) Shutdown()   {}

func (f *fakeTerminal) Size() (int, int, error) {
	return f.w, f.h, nil
}

func (f *fakeTerminal) WaitEvent() (termEvent, error) {
	if len(f.events) == 0 {
		return termEvent{}, fmt.Errorf("no more events")
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeTerminal) Print(x, y int, color, text string) {
	f.printed[y] = text
}

func (f *fakeTerminal) Printf(x, y int, color, format string, args ...interface{}) {
	f.Print(x, y, color, fmt.Sprintf(format, args...))
}

func (f *fakeTerminal) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
}

func (f *fakeTerminal) ClearRow(y int) {
	f.printed[y] = ""
}

// newTestEditor builds an editorState wired to a fakeTerminal of the
// given size, with a fresh empty buffer.
func newTestEditor(w, h int) (*editorState, *fakeTerminal) {
	term := newFakeTerminal(w, h)
	e := newEditorState(term)
	e.buf = newBuffer(INITIAL_BUFFER_ROWS)
	e.w, e.h = w, h
	return e, term
}

func charEvent(c byte) termEvent {
	return termEvent{kind: eventKey, key: keyChar, ch: c}
}

func typeString(e *editorState, s string) {
	for i := 0; i < len(s); i++ {
		handleInsertKey(e, charEvent(s[i]))
	}
}
