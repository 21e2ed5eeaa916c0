// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, float32(0.3), cfg.Threshold)
	assert.Equal(t, int32(4), cfg.LoadFlag)
	assert.Equal(t, int32(6), cfg.RegisterPos)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("image: faces/bob.jpg\nthreshold: 0.55\nprofile: win32\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "faces/bob.jpg", cfg.Image)
	assert.Equal(t, float32(0.55), cfg.Threshold)
	assert.Equal(t, "win32", cfg.Profile)
	assert.Equal(t, "./model", cfg.ModelDir, "unset keys keep defaults")
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("threshold: [oops"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Library = "/opt/sdk/lib/libsmart_predictor_jni.so"
	cfg.Pause = PauseNever
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"threshold low", func(s *Settings) { s.Threshold = -0.1 }},
		{"threshold high", func(s *Settings) { s.Threshold = 1.5 }},
		{"profile", func(s *Settings) { s.Profile = "amiga" }},
		{"pause", func(s *Settings) { s.Pause = "sometimes" }},
		{"model dir", func(s *Settings) { s.ModelDir = "" }},
		{"image", func(s *Settings) { s.Image = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLibraryPath(t *testing.T) {
	cfg := Default()
	cfg.Library = "custom.so"
	assert.Equal(t, "custom.so", cfg.LibraryPath())

	cfg.Library = ""
	assert.NotEmpty(t, cfg.LibraryPath())
}
