// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package smartpredictor binds the prebuilt Smart Predictor image recognition
// SDK (libsmart_predictor_jni.so, libsmart_predictor_jni.dylib or
// smart_predictor_jni.dll) into typed Go functions, without cgo.
//
// Basic usage:
//
//	import smartpredictor "github.com/YindSoft/smartpredictor-go"
//
//	lib, err := smartpredictor.Open(smartpredictor.ResolvePath(""))
//	if err != nil { ... } // *LoadError
//	defer lib.Close()
//
//	sdk, err := smartpredictor.Bind(lib, smartpredictor.DefaultProfile())
//	if err != nil { ... } // *BindError lists every missing symbol
//
//	if sdk.Load("./model", 4) < 0 { ... }
//	img, err := smartpredictor.ReadImage("demo.jpg")
//	code, content := sdk.Predict(img, 0.3)
//
// All eight entry points (load, unload, predict, register, save, reset, delete,
// sign) must resolve before a Bridge is returned. SDK builds differ in a few
// export names and in the unload success code; a [Profile] captures those
// differences and [DefaultProfile] picks the one for the running platform.
//
// Every entry point takes raw C arguments: image payloads are passed as a
// pointer and an exact byte length, labels and paths as NUL-terminated strings.
// The library must not keep image pointers after a call returns.
//
// The SDK is not reentrant. The package locks the main goroutine to its OS
// thread; call the Bridge from that goroutine only.
//
// The interactive demo lives in cmd/smartpredictor.
package smartpredictor
