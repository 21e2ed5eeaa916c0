// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Command smartpredictor is the interactive console demo for the Smart
// Predictor SDK: load the shared library, then authorize, load, predict,
// register, save, clear, delete labels and unload with single keys.
package main

import (
	"errors"
	"fmt"
	"os"
)

const version = "1.0.0"

// startupError marks failures to load or bind the SDK library. They exit
// with -1, every other error with 1.
type startupError struct {
	err error
	// reported is set once the error has been shown to the operator.
	reported bool
}

func (e *startupError) Error() string { return e.err.Error() }
func (e *startupError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *startupError
	if errors.As(err, &se) {
		return -1
	}
	return 1
}

func main() {
	err := rootCmd.Execute()
	var se *startupError
	if err != nil && !(errors.As(err, &se) && se.reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}
