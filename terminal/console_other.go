// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package terminal

// Init prepares the console for ANSI output. Unix terminals need nothing.
func Init() error {
	return nil
}
