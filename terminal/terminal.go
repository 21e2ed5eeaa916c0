// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package terminal reads single keystrokes and lines from the console.
//
// On a real terminal keys are read in raw mode, without waiting for Enter.
// Any other input (pipes, files, tests) is read as a byte stream where blank
// characters between keys are skipped.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// CtrlC is the byte a raw-mode terminal delivers for Ctrl+C.
const CtrlC = 0x03

const clearSequence = "\033[H\033[2J"

// Console is the menu's view of the terminal.
type Console struct {
	r   *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// New returns a Console reading from in and writing to out. Raw key input is
// used only when in is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{r: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			c.fd = int(fd)
			c.tty = true
		}
	}
	return c
}

// Interactive reports whether input comes from a terminal.
func (c *Console) Interactive() bool {
	return c.tty
}

// ReadKey returns the next keystroke.
func (c *Console) ReadKey() (byte, error) {
	if !c.tty {
		return c.readStreamKey()
	}
	state, err := term.MakeRaw(c.fd)
	if err != nil {
		// Some consoles refuse raw mode; fall back to line input.
		return c.readStreamKey()
	}
	defer term.Restore(c.fd, state)
	return c.r.ReadByte()
}

func (c *Console) readStreamKey() (byte, error) {
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case '\r', '\n':
			continue
		}
		c.skipLineEnd()
		return b, nil
	}
}

// skipLineEnd drops the line terminator directly following a streamed key so
// that a following ReadLine starts on the next line.
func (c *Console) skipLineEnd() {
	if next, err := c.r.Peek(1); err == nil && next[0] == '\r' {
		c.r.ReadByte()
	}
	if next, err := c.r.Peek(1); err == nil && next[0] == '\n' {
		c.r.ReadByte()
	}
}

// ReadLine reads one line of text without its line terminator. A final line
// without a terminator is returned with a nil error.
func (c *Console) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear clears the screen and homes the cursor. It does nothing when output
// is not a terminal.
func (c *Console) Clear() {
	if c.tty {
		fmt.Fprint(c.out, clearSequence)
	}
}
