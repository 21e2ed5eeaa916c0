// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package smartpredictor

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// cLong mirrors C long, 64 bits on LP64 platforms.
type cLong = int64

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, err
	}
	return sym, nil
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

// LibName is the file name of the SDK library on this platform.
func LibName() string {
	if runtime.GOOS == "darwin" {
		return "libsmart_predictor_jni.dylib"
	}
	return "libsmart_predictor_jni.so"
}

func defaultProfileName() string {
	return ProfileUnix
}
