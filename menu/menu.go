// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package menu implements the single-key command loop that drives the SDK.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
	"github.com/YindSoft/smartpredictor-go/terminal"
)

// Operations is the SDK surface the menu calls. *smartpredictor.Bridge implements it.
type Operations interface {
	Sign(modelDir, authCode string) int32
	Load(modelDir string, flag int32) int32
	Unload() int32
	UnloadSucceeded(code int32) bool
	Predict(img []byte, threshold float32) (int32, string)
	Register(img []byte, label string, pos int32) int32
	Save(modelDir string) int32
	Reset(modelDir string) bool
	Delete(label string) bool
}

// Terminal is the console the menu reads from. *terminal.Console implements it.
type Terminal interface {
	ReadKey() (byte, error)
	ReadLine() (string, error)
	Clear()
	Interactive() bool
}

// Options carries the fixed arguments passed to the SDK.
type Options struct {
	Title       string
	ModelDir    string
	Image       string
	Threshold   float32
	LoadFlag    int32
	RegisterPos int32
	// Pause waits for a key after each command before redrawing the menu.
	Pause bool
}

// Session is one run of the command loop.
type Session struct {
	ops  Operations
	term Terminal
	out  io.Writer
	log  *logrus.Logger
	opts Options

	readImage func(path string) ([]byte, error)
	now       func() time.Time
}

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// New returns a Session. A nil logger discards log output.
func New(ops Operations, term Terminal, out io.Writer, log *logrus.Logger, opts Options) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if opts.Title == "" {
		opts.Title = "Smart Predictor SDK Tool"
	}
	return &Session{
		ops:       ops,
		term:      term,
		out:       out,
		log:       log,
		opts:      opts,
		readImage: smartpredictor.ReadImage,
		now:       time.Now,
	}
}

// Run shows the menu and executes commands until the operator quits or input
// ends. Failed SDK calls are reported and never end the loop.
func (s *Session) Run() error {
	s.log.Info("command loop started")
	defer s.log.Info("command loop finished")

	running := true
	for running {
		s.drawMenu()
		key, err := s.term.ReadKey()
		fmt.Fprintln(s.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		switch key {
		case 'q', terminal.CtrlC:
			running = false
			continue
		}

		cmd, ok := lookup(key)
		if !ok {
			s.log.WithField("key", string(key)).Debug("invalid option")
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		} else {
			cmd.run(s)
		}

		fmt.Fprintln(s.out)
		if s.opts.Pause {
			fmt.Fprintln(s.out, "Press any key to continue...")
			if _, err := s.term.ReadKey(); err != nil {
				return nil
			}
		}
	}
	return nil
}

func (s *Session) drawMenu() {
	s.term.Clear()
	fmt.Fprintf(s.out, "==== %s ====\n", s.opts.Title)
	table := tablewriter.NewTable(s.out, tablewriter.WithHeader([]string{"Key", "Action"}))
	for _, c := range commands {
		table.Append(string(c.key), c.describe(s.opts))
	}
	table.Append("q", "Quit")
	table.Render()
	fmt.Fprint(s.out, "Enter your choice: ")
}

func (s *Session) ok(format string, a ...interface{}) {
	okColor.Fprintf(s.out, format+"\n", a...)
}

func (s *Session) fail(format string, a ...interface{}) {
	failColor.Fprintf(s.out, format+"\n", a...)
}

func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	line, err := s.term.ReadLine()
	if err != nil {
		fmt.Fprintln(s.out)
		s.fail("Failed to read input: %v", err)
		return "", false
	}
	return strings.TrimSpace(line), true
}

// traceCall logs one SDK call with its arguments and result.
func (s *Session) traceCall(op smartpredictor.Op, start time.Time, fields logrus.Fields) {
	fields["op"] = string(op)
	fields["duration"] = s.now().Sub(start).String()
	s.log.WithFields(fields).Debug("sdk call")
}
