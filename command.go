package main

import (
	"errors"
	"io/fs"
	"strings"
)

// commandError is a user-visible command error: displayed in red on
// the status row, never terminates the process.
type commandError struct {
	msg string
}

func (e *commandError) Error() string { return e.msg }

// cmdArg returns the argument portion of a command line, or "" if
// there isn't one: the text after the first space, provided that text
// is non-empty.
func cmdArg(cmd string) string {
	i := strings.IndexByte(cmd, ' ')
	if i < 0 || i+1 >= len(cmd) {
		return ""
	}
	return cmd[i+1:]
}

// cmdMatch checks whether cmd's leading token (not counting the
// argument portion) equals name with an optional trailing bang, and
// reports whether the bang was present.
func cmdMatch(cmd, name string) (matches, bang bool) {
	if !strings.HasPrefix(cmd, name) {
		return false, false
	}
	end := len(name)
	if end < len(cmd) && cmd[end] == '!' {
		bang = true
		end++
	}
	if end < len(cmd) && cmd[end] != ' ' {
		return false, false
	}
	return true, bang
}

// execCmd parses and executes the command currently held in e.cmd.
// Returns nil on success; a *commandError on a user-visible failure,
// having already painted the status row with the message.
func execCmd(e *editorState) error {
	cmd := string(e.cmd.bytes)

	if matches, bang := cmdMatch(cmd, "q"); matches {
		if !bang && e.modified {
			statusMessage(e, colorRed, "buffer modified")
			return &commandError{"buffer modified"}
		}
		e.done = true
		return nil
	}

	wMatches, wBang := cmdMatch(cmd, "w")
	wqMatches, wqBang := cmdMatch(cmd, "wq")
	if wMatches || wqMatches {
		bang := wBang || wqBang
		isWq := wqMatches

		arg := cmdArg(cmd)
		name := e.filename
		if arg != "" {
			name = arg
		}

		if arg != "" && e.filename == "" {
			e.filename = arg
			e.filenameOwned = true
		}

		if name == "" {
			statusMessage(e, colorRed, "no file name specified")
			return &commandError{"no file name specified"}
		}

		overwrite := bang || e.writtenOnce
		if err := writeBuffer(e.buf, name, overwrite); err != nil {
			if errors.Is(err, fs.ErrExist) {
				statusMessage(e, colorRed, "file exists (add ! to override)")
			} else {
				statusMessagef(e, colorRed, "writing to file failed: %s", err.Error())
			}
			return &commandError{err.Error()}
		}
		e.modified = false
		e.writtenOnce = true

		if isWq {
			e.done = true
		}
		return nil
	}

	return nil
}
