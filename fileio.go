package main

import (
	"bufio"
	"os"

	"golang.org/x/sys/unix"
)

// NEW_FILE_MODE is the mode used for newly created files; modified by
// the process umask the same way open(2)'s mode argument is in C.
const NEW_FILE_MODE = 0666

// IOV_SIZE is the number of iovec entries batched per writev(2) call.
const IOV_SIZE = 64

// loadBuffer reads path line by line into a fresh buffer. Each line's
// trailing newline is stripped before becoming the owning storage of
// a row; an empty line is left as an empty slot. An error opening the
// file is reported to the caller, which falls back to a fresh empty
// buffer; an error while reading the opened file is fatal.
func loadBuffer(path string) (*buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := newBuffer(FILE_BUFFER_ROWS)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line := 0
	for scanner.Scan() {
		if line >= buf.cap() {
			newsize := line
			if newsize%FILE_BUF_GROW == 0 {
				newsize++
			}
			buf.resize(roundUpTo(newsize, FILE_BUF_GROW))
		}
		text := scanner.Bytes()
		if len(text) > 0 {
			b := make([]byte, len(text), len(text)+1)
			copy(b, text)
			buf.slots[line] = newRowFromBytes(b)
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		dief("reading %s: %s", path, err)
	}
	buf.length = line
	if buf.length == 0 {
		buf.length = 1
	}
	return buf, nil
}

// writeBuffer writes buf's contents to path using batched vectored
// writes, one newline-terminated line per buffer slot (an empty slot
// still emits a bare newline). overwrite chooses truncate-create vs.
// exclusive-create semantics.
func writeBuffer(buf *buffer, path string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, NEW_FILE_MODE)
	if err != nil {
		return err
	}
	defer f.Close()

	fd := int(f.Fd())
	newline := []byte{'\n'}
	iov := make([][]byte, 0, IOV_SIZE)

	flush := func() error {
		if len(iov) == 0 {
			return nil
		}
		if _, err := unix.Writev(fd, iov); err != nil {
			return err
		}
		iov = iov[:0]
		return nil
	}
	add := func(b []byte) error {
		if len(iov) >= IOV_SIZE {
			if err := flush(); err != nil {
				return err
			}
		}
		iov = append(iov, b)
		return nil
	}

	for i := 0; i < buf.length; i++ {
		if buf.slots[i] != nil {
			if err := add(buf.slots[i].bytes); err != nil {
				return err
			}
		}
		if err := add(newline); err != nil {
			return err
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return nil
}
