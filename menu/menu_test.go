// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YindSoft/smartpredictor-go/terminal"
)

type fakeOps struct {
	calls []string

	signRC, loadRC, unloadRC, predictRC, registerRC, saveRC int32
	resetOK, deleteOK                                       bool
	predictContent                                          string

	modelDir, authCode, label string
	flag, pos                 int32
	threshold                 float32
	img                       []byte
}

func (f *fakeOps) Sign(modelDir, authCode string) int32 {
	f.calls = append(f.calls, "sign")
	f.modelDir, f.authCode = modelDir, authCode
	return f.signRC
}

func (f *fakeOps) Load(modelDir string, flag int32) int32 {
	f.calls = append(f.calls, "load")
	f.modelDir, f.flag = modelDir, flag
	return f.loadRC
}

func (f *fakeOps) Unload() int32 {
	f.calls = append(f.calls, "unload")
	return f.unloadRC
}

func (f *fakeOps) UnloadSucceeded(code int32) bool { return code == 0 }

func (f *fakeOps) Predict(img []byte, threshold float32) (int32, string) {
	f.calls = append(f.calls, "predict")
	f.img = append([]byte(nil), img...)
	f.threshold = threshold
	return f.predictRC, f.predictContent
}

func (f *fakeOps) Register(img []byte, label string, pos int32) int32 {
	f.calls = append(f.calls, "register")
	f.img = append([]byte(nil), img...)
	f.label, f.pos = label, pos
	return f.registerRC
}

func (f *fakeOps) Save(modelDir string) int32 {
	f.calls = append(f.calls, "save")
	f.modelDir = modelDir
	return f.saveRC
}

func (f *fakeOps) Reset(modelDir string) bool {
	f.calls = append(f.calls, "reset")
	f.modelDir = modelDir
	return f.resetOK
}

func (f *fakeOps) Delete(label string) bool {
	f.calls = append(f.calls, "delete")
	f.label = label
	return f.deleteOK
}

func testOptions(image string) Options {
	return Options{
		ModelDir:    "./model",
		Image:       image,
		Threshold:   0.3,
		LoadFlag:    4,
		RegisterPos: 6,
	}
}

func writeImage(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.jpg")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, ops *fakeOps, opts Options, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := New(ops, terminal.New(strings.NewReader(input), &out), &out, nil, opts)
	require.NoError(t, s.Run())
	return out.String()
}

func TestLoadPredictQuit(t *testing.T) {
	img := []byte("\xff\xd8\xff\xe0 not really a jpeg \x00\x01\x02")
	ops := &fakeOps{loadRC: 0, predictRC: 2, predictContent: "alice:0.97"}
	out := run(t, ops, testOptions(writeImage(t, img)), "lpq")

	assert.Equal(t, []string{"load", "predict"}, ops.calls)
	assert.Contains(t, out, "Model loaded successfully")
	assert.Contains(t, out, "Prediction result: 2")
	assert.Contains(t, out, "Prediction content: alice:0.97")
	assert.Less(t, strings.Index(out, "Model loaded successfully"), strings.Index(out, "Prediction result"))

	assert.Equal(t, "./model", ops.modelDir)
	assert.Equal(t, int32(4), ops.flag)
	assert.Equal(t, float32(0.3), ops.threshold)
	assert.Equal(t, img, ops.img, "predict receives the exact file bytes")
}

func TestPredictMissingImage(t *testing.T) {
	ops := &fakeOps{}
	missing := filepath.Join(t.TempDir(), "demo.jpg")
	out := run(t, ops, testOptions(missing), "pq")

	assert.Empty(t, ops.calls)
	assert.Contains(t, out, "Failed to predict image:")
	assert.Contains(t, out, missing)
}

func TestRegisterMissingImage(t *testing.T) {
	ops := &fakeOps{}
	out := run(t, ops, testOptions(filepath.Join(t.TempDir(), "nope.jpg")), "r\nbob\nq\n")

	assert.Empty(t, ops.calls)
	assert.Contains(t, out, "Failed to register image:")
}

func TestInvalidOption(t *testing.T) {
	ops := &fakeOps{}
	out := run(t, ops, testOptions("demo.jpg"), "xZ9q")

	assert.Empty(t, ops.calls)
	assert.Equal(t, 3, strings.Count(out, "Invalid option. Please try again."))
}

func TestBlankKeysAreInvalid(t *testing.T) {
	ops := &fakeOps{}
	out := run(t, ops, testOptions("demo.jpg"), " \tq")

	assert.Empty(t, ops.calls)
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please try again."))
}

func TestLabelOnSameLine(t *testing.T) {
	ops := &fakeOps{deleteOK: true}
	run(t, ops, testOptions("demo.jpg"), "d bob\nq")
	assert.Equal(t, []string{"delete"}, ops.calls)
	assert.Equal(t, "bob", ops.label)
}

func TestAuthorize(t *testing.T) {
	ops := &fakeOps{signRC: 0}
	out := run(t, ops, testOptions("demo.jpg"), "a\nABCD-1234\nq\n")
	assert.Equal(t, []string{"sign"}, ops.calls)
	assert.Equal(t, "ABCD-1234", ops.authCode)
	assert.Equal(t, "./model", ops.modelDir)
	assert.Contains(t, out, "Authorization successful")

	ops = &fakeOps{signRC: -7}
	out = run(t, ops, testOptions("demo.jpg"), "a\nwrong\nq\n")
	assert.Contains(t, out, "Authorization failed with code: -7")
}

func TestLoadFailure(t *testing.T) {
	ops := &fakeOps{loadRC: -1}
	out := run(t, ops, testOptions("demo.jpg"), "lq")
	assert.Contains(t, out, "Failed to load model")
	assert.NotContains(t, out, "Model loaded successfully")
}

func TestRegister(t *testing.T) {
	img := bytes.Repeat([]byte{0xab}, 3001)
	ops := &fakeOps{registerRC: 5}
	out := run(t, ops, testOptions(writeImage(t, img)), "r\nalice smith\nq\n")

	assert.Equal(t, []string{"register"}, ops.calls)
	assert.Equal(t, "alice smith", ops.label)
	assert.Equal(t, int32(6), ops.pos)
	assert.Len(t, ops.img, len(img))
	assert.Contains(t, out, "Registration time: ")
	assert.Contains(t, out, "Registration result: 5")
}

func TestSave(t *testing.T) {
	out := run(t, &fakeOps{saveRC: 1}, testOptions("demo.jpg"), "sq")
	assert.Contains(t, out, "Model saved successfully")

	out = run(t, &fakeOps{saveRC: 0}, testOptions("demo.jpg"), "sq")
	assert.Contains(t, out, "Failed to save model")
}

func TestClear(t *testing.T) {
	out := run(t, &fakeOps{resetOK: true}, testOptions("demo.jpg"), "cq")
	assert.Contains(t, out, "Model cleared successfully")

	out = run(t, &fakeOps{resetOK: false}, testOptions("demo.jpg"), "cq")
	assert.Contains(t, out, "Failed to clear model")
}

func TestDeleteLabel(t *testing.T) {
	ops := &fakeOps{deleteOK: true}
	out := run(t, ops, testOptions("demo.jpg"), "d\nbob\nq\n")
	assert.Equal(t, "bob", ops.label)
	assert.Contains(t, out, "Deleting label 'bob'...")
	assert.Contains(t, out, "Label deleted successfully")

	out = run(t, &fakeOps{deleteOK: false}, testOptions("demo.jpg"), "d\nbob\nq\n")
	assert.Contains(t, out, "Failed to delete label")
}

func TestUnload(t *testing.T) {
	out := run(t, &fakeOps{unloadRC: 0}, testOptions("demo.jpg"), "uq")
	assert.Contains(t, out, "Model unloaded successfully")

	out = run(t, &fakeOps{unloadRC: 1}, testOptions("demo.jpg"), "uq")
	assert.Contains(t, out, "Failed to unload model")
}

func TestEndOfInputStopsLoop(t *testing.T) {
	ops := &fakeOps{}
	run(t, ops, testOptions("demo.jpg"), "l")
	assert.Equal(t, []string{"load"}, ops.calls)
}

func TestLabelPromptEndOfInput(t *testing.T) {
	ops := &fakeOps{}
	out := run(t, ops, testOptions("demo.jpg"), "d")
	assert.Empty(t, ops.calls)
	assert.Contains(t, out, "Failed to read input")
}

func TestCtrlCQuits(t *testing.T) {
	ops := &fakeOps{}
	run(t, ops, testOptions("demo.jpg"), string([]byte{terminal.CtrlC})+"l")
	assert.Empty(t, ops.calls)
}

func TestPauseConsumesKey(t *testing.T) {
	opts := testOptions("demo.jpg")
	opts.Pause = true
	ops := &fakeOps{}
	out := run(t, ops, opts, "lxq")

	assert.Equal(t, []string{"load"}, ops.calls)
	assert.Contains(t, out, "Press any key to continue...")
	assert.NotContains(t, out, "Invalid option")
}

func TestMenuListsCommands(t *testing.T) {
	out := run(t, &fakeOps{}, testOptions("faces/demo.jpg"), "q")
	assert.Contains(t, out, "Smart Predictor SDK Tool")
	for _, c := range commands {
		assert.Contains(t, out, c.title)
	}
	assert.Contains(t, out, "faces/demo.jpg")
	assert.Contains(t, out, "Enter your choice: ")
}
