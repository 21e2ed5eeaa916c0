// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package smartpredictor

import (
	"fmt"
	"path/filepath"
	"runtime"
	"syscall"

	"golang.org/x/sys/windows"
)

// cLong mirrors C long, which stays 32 bits on Windows.
type cLong = int32

func openLibrary(path string) (uintptr, error) {
	// Dependent DLLs ship next to the SDK.
	dir := filepath.Dir(path)
	dirErr := windows.SetDllDirectory(dir)
	lib, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, withSearchDirErr(err, dir, dirErr)
	}
	return uintptr(lib), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func closeLibrary(handle uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(handle))
}

// LibName is the file name of the SDK library on this platform.
func LibName() string {
	return "smart_predictor_jni.dll"
}

func defaultProfileName() string {
	if runtime.GOARCH == "386" {
		return ProfileWin32
	}
	return ProfileWin64
}
