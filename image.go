// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package smartpredictor

import (
	"fmt"
	"io"
	"os"
)

// ReadImage reads the whole file at path into a buffer sized exactly to the
// file. The returned slice must not be modified while a call borrows it.
func ReadImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ImageError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	buf := make([]byte, info.Size())
	if n, err := io.ReadFull(f, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, len(buf))
		}
		return nil, &ImageError{Path: path, Err: err}
	}
	return buf, nil
}
