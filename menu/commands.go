// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package menu

import (
	"fmt"

	"github.com/sirupsen/logrus"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
)

type command struct {
	key   byte
	title string
	// usesImage appends the image path to the menu entry.
	usesImage bool
	run       func(*Session)
}

var commands = []command{
	{key: 'a', title: "SDK Authorization", run: (*Session).authorize},
	{key: 'l', title: "Load Model", run: (*Session).loadModel},
	{key: 'p', title: "Predict Image", usesImage: true, run: (*Session).predict},
	{key: 'r', title: "Register Image", usesImage: true, run: (*Session).register},
	{key: 's', title: "Save Model", run: (*Session).saveModel},
	{key: 'c', title: "Clear Model", run: (*Session).clearModel},
	{key: 'd', title: "Delete label from model", run: (*Session).deleteLabel},
	{key: 'u', title: "Unload Model", run: (*Session).unloadModel},
}

func (c command) describe(o Options) string {
	if c.usesImage {
		return fmt.Sprintf("%s (%s)", c.title, o.Image)
	}
	return c.title
}

func lookup(key byte) (command, bool) {
	for _, c := range commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

func (s *Session) authorize() {
	fmt.Fprintln(s.out, "SDK authorization...")
	code, ok := s.prompt("Enter authorization code: ")
	if !ok {
		return
	}
	start := s.now()
	rc := s.ops.Sign(s.opts.ModelDir, code)
	s.traceCall(smartpredictor.OpSign, start, logrus.Fields{"model_dir": s.opts.ModelDir, "code": rc})
	if rc == 0 {
		s.ok("Authorization successful")
	} else {
		s.fail("Authorization failed with code: %d", rc)
	}
}

func (s *Session) loadModel() {
	fmt.Fprintln(s.out, "Loading model...")
	start := s.now()
	rc := s.ops.Load(s.opts.ModelDir, s.opts.LoadFlag)
	s.traceCall(smartpredictor.OpLoad, start, logrus.Fields{"model_dir": s.opts.ModelDir, "flag": s.opts.LoadFlag, "code": rc})
	if rc < 0 {
		s.fail("Failed to load model")
	} else {
		s.ok("Model loaded successfully")
	}
}

func (s *Session) predict() {
	fmt.Fprintln(s.out, "Processing image for prediction...")
	img, err := s.readImage(s.opts.Image)
	if err != nil {
		s.log.WithError(err).Warn("predict skipped")
		s.fail("Failed to predict image: %v", err)
		return
	}
	start := s.now()
	rc, content := s.ops.Predict(img, s.opts.Threshold)
	s.traceCall(smartpredictor.OpPredict, start, logrus.Fields{
		"image": s.opts.Image, "size": len(img), "threshold": s.opts.Threshold, "code": rc,
	})
	fmt.Fprintf(s.out, "Prediction result: %d\n", rc)
	fmt.Fprintf(s.out, "Prediction content: %s\n", content)
}

func (s *Session) register() {
	label, ok := s.prompt("Enter label for the image: ")
	if !ok {
		return
	}
	img, err := s.readImage(s.opts.Image)
	if err != nil {
		s.log.WithError(err).Warn("register skipped")
		s.fail("Failed to register image: %v", err)
		return
	}
	start := s.now()
	rc := s.ops.Register(img, label, s.opts.RegisterPos)
	elapsed := s.now().Sub(start)
	s.traceCall(smartpredictor.OpRegister, start, logrus.Fields{
		"image": s.opts.Image, "size": len(img), "label": label, "pos": s.opts.RegisterPos, "code": rc,
	})
	fmt.Fprintf(s.out, "Registration time: %dms\n", elapsed.Milliseconds())
	fmt.Fprintf(s.out, "Registration result: %d\n", rc)
}

func (s *Session) saveModel() {
	fmt.Fprintln(s.out, "Saving model...")
	start := s.now()
	rc := s.ops.Save(s.opts.ModelDir)
	s.traceCall(smartpredictor.OpSave, start, logrus.Fields{"model_dir": s.opts.ModelDir, "code": rc})
	if rc != 1 {
		s.fail("Failed to save model")
	} else {
		s.ok("Model saved successfully")
	}
}

func (s *Session) clearModel() {
	fmt.Fprintln(s.out, "Clearing model...")
	start := s.now()
	ok := s.ops.Reset(s.opts.ModelDir)
	s.traceCall(smartpredictor.OpReset, start, logrus.Fields{"model_dir": s.opts.ModelDir, "ok": ok})
	if ok {
		s.ok("Model cleared successfully")
	} else {
		s.fail("Failed to clear model")
	}
}

func (s *Session) deleteLabel() {
	label, ok := s.prompt("Enter label to delete: ")
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Deleting label '%s'...\n", label)
	start := s.now()
	deleted := s.ops.Delete(label)
	s.traceCall(smartpredictor.OpDelete, start, logrus.Fields{"label": label, "ok": deleted})
	if deleted {
		s.ok("Label deleted successfully")
	} else {
		s.fail("Failed to delete label")
	}
}

func (s *Session) unloadModel() {
	fmt.Fprintln(s.out, "Unloading model...")
	start := s.now()
	rc := s.ops.Unload()
	s.traceCall(smartpredictor.OpUnload, start, logrus.Fields{"code": rc})
	if s.ops.UnloadSucceeded(rc) {
		s.ok("Model unloaded successfully")
	} else {
		s.fail("Failed to unload model")
	}
}
