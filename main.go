package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	term := newUnixTerminal()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", os.Args[0], err.Error())
		os.Exit(1)
	}
	fatalTerm = term

	defer func() {
		if r := recover(); r != nil {
			term.Shutdown()
			fmt.Fprintf(os.Stderr, "%s: %v. quitting svi...\n", os.Args[0], r)
			os.Exit(1)
		}
	}()
	defer term.Shutdown()

	e := newEditorState(term)

	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	e.open(filename)

	run(e)
}
