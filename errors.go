// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package smartpredictor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShortRead is returned when an image file yields fewer bytes than its size.
var ErrShortRead = errors.New("short read")

// LoadError reports that the shared library could not be mapped.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// BindError reports entry points missing from a loaded library.
type BindError struct {
	Profile string
	Missing []string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("profile %s: missing symbols: %s", e.Profile, strings.Join(e.Missing, ", "))
}

// ImageError reports a failure to read an image payload.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("failed to read image file %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }
