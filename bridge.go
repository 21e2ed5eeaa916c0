// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package smartpredictor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

func init() {
	// The predictor is not reentrant and keeps per-thread state; every call is
	// made from the main OS thread.
	runtime.LockOSThread()
}

// Size of the result buffer handed to the predict entry point.
const predictBufferSize = 1024

// Directory, relative to the base directory, that holds the SDK libraries.
const libDir = "lib"

// SymbolSource resolves exported symbols of a loaded native module.
// *Library implements it; tests substitute their own.
type SymbolSource interface {
	Lookup(name string) (uintptr, error)
}

// Library is an open handle to the Smart Predictor shared library.
type Library struct {
	path   string
	handle uintptr
	closed bool
}

// Open maps the shared library at path into the process. A missing or
// unloadable module yields a *LoadError.
func Open(path string) (*Library, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	h, err := openLibrary(absPath)
	if err != nil {
		return nil, &LoadError{Path: absPath, Err: err}
	}
	return &Library{path: absPath, handle: h}, nil
}

// Path returns the absolute path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Lookup returns the address of an exported symbol.
func (l *Library) Lookup(name string) (uintptr, error) {
	return lookupSymbol(l.handle, name)
}

// Close unloads the library. Only the first call has an effect.
// Bound functions must not be called afterwards.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return closeLibrary(l.handle)
}

// ResolvePath returns the default location of the SDK library: lib/<name>
// under baseDir. An empty baseDir means the working directory, or the
// executable's directory when the library is not found there.
func ResolvePath(baseDir string) string {
	if baseDir == "" {
		baseDir, _ = os.Getwd()
		if _, err := os.Stat(filepath.Join(baseDir, libDir, LibName())); err != nil {
			if exe, _ := os.Executable(); exe != "" {
				baseDir = filepath.Dir(exe)
			}
		}
	}
	return filepath.Join(baseDir, libDir, LibName())
}

// Bridge is the complete set of bound predictor entry points.
// A Bridge only exists when every entry point resolved.
type Bridge struct {
	profile Profile

	load     func(modelDir string, flag int32) int32
	unload   func() int32
	predict  func(data uintptr, size cLong, threshold float32, out uintptr, outSize cLong) int32
	register func(data uintptr, size cLong, label string, pos int32) int32
	save     func(modelDir string) int32
	reset    func(modelDir string) bool
	del      func(label string) bool
	sign     func(modelDir, authCode string) int32
}

type binding struct {
	op   Op
	fptr interface{}
}

func (b *Bridge) bindings() []binding {
	return []binding{
		{OpLoad, &b.load},
		{OpUnload, &b.unload},
		{OpPredict, &b.predict},
		{OpRegister, &b.register},
		{OpSave, &b.save},
		{OpReset, &b.reset},
		{OpDelete, &b.del},
		{OpSign, &b.sign},
	}
}

// Bind resolves every entry point named by p from src. If any symbol is
// missing nothing is registered and a *BindError lists all missing names.
func Bind(src SymbolSource, p Profile) (*Bridge, error) {
	b := &Bridge{profile: p}
	regs := b.bindings()
	addrs := make([]uintptr, len(regs))
	var missing []string
	for i, reg := range regs {
		name := p.Symbol(reg.op)
		addr, err := src.Lookup(name)
		if err != nil || addr == 0 {
			missing = append(missing, name)
			continue
		}
		addrs[i] = addr
	}
	if len(missing) > 0 {
		return nil, &BindError{Profile: p.Name, Missing: missing}
	}
	for i, reg := range regs {
		purego.RegisterFunc(reg.fptr, addrs[i])
	}
	return b, nil
}

// Profile returns the binding profile the bridge was built from.
func (b *Bridge) Profile() Profile {
	return b.profile
}

// Load loads the model stored in modelDir. Negative codes are failures.
func (b *Bridge) Load(modelDir string, flag int32) int32 {
	return b.load(modelDir, flag)
}

// Unload releases the loaded model. See UnloadSucceeded for the meaning of the code.
func (b *Bridge) Unload() int32 {
	return b.unload()
}

// UnloadSucceeded reports whether code is the profile's unload success code.
func (b *Bridge) UnloadSucceeded(code int32) bool {
	return code == b.profile.UnloadOK
}

// Predict runs recognition on an encoded image. It returns the result code and
// the text the library wrote into its result buffer.
//
// img is borrowed for the duration of the call only.
func (b *Bridge) Predict(img []byte, threshold float32) (int32, string) {
	out := make([]byte, predictBufferSize)
	code := b.predict(bytesPtr(img), cLong(len(img)), threshold, bytesPtr(out), cLong(len(out)))
	runtime.KeepAlive(img)
	return code, cString(out)
}

// Register adds img to the model under label.
//
// img is borrowed for the duration of the call only.
func (b *Bridge) Register(img []byte, label string, pos int32) int32 {
	code := b.register(bytesPtr(img), cLong(len(img)), label, pos)
	runtime.KeepAlive(img)
	return code
}

// Save persists the model into modelDir. 1 means success.
func (b *Bridge) Save(modelDir string) int32 {
	return b.save(modelDir)
}

// Reset clears the model stored in modelDir.
func (b *Bridge) Reset(modelDir string) bool {
	return b.reset(modelDir)
}

// Delete removes every registered image carrying label.
func (b *Bridge) Delete(label string) bool {
	return b.del(label)
}

// Sign authorizes the SDK for modelDir. 0 means success.
func (b *Bridge) Sign(modelDir, authCode string) int32 {
	return b.sign(modelDir, authCode)
}

func bytesPtr(p []byte) uintptr {
	if len(p) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&p[0]))
}

// cString returns buf up to the first NUL byte.
func cString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// withSearchDirErr attaches a failed DLL search-path change to a load error.
// dirErr alone is not fatal; it only explains why dependents were not found.
func withSearchDirErr(err error, dir string, dirErr error) error {
	if err == nil || dirErr == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("set DLL directory %s: %w", dir, dirErr))
}
