// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package config holds the demo's settings and their YAML file form.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
)

// DefaultFile is the settings file looked up when none is given.
const DefaultFile = "smartpredictor.yaml"

// Pause modes for the "Press any key to continue" prompt.
const (
	PauseAuto   = "auto"
	PauseAlways = "always"
	PauseNever  = "never"
)

// Settings configures the library location, the fixed SDK arguments and logging.
type Settings struct {
	// Library is the shared library path. Empty means lib/<platform name>
	// next to the working directory or the executable.
	Library string `yaml:"library"`
	// Profile selects the symbol table: auto, unix, win64 or win32.
	Profile string `yaml:"profile"`

	ModelDir    string  `yaml:"model_dir"`
	Image       string  `yaml:"image"`
	Threshold   float32 `yaml:"threshold"`
	LoadFlag    int32   `yaml:"load_flag"`
	RegisterPos int32   `yaml:"register_pos"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	Pause    string `yaml:"pause"`
}

// Default returns the stock demo settings.
func Default() *Settings {
	return &Settings{
		Profile:     smartpredictor.ProfileAuto,
		ModelDir:    "./model",
		Image:       "demo.jpg",
		Threshold:   0.3,
		LoadFlag:    4,
		RegisterPos: 6,
		LogFile:     "smartpredictor.log",
		LogLevel:    "info",
		Pause:       PauseAuto,
	}
}

// Load reads settings from path on top of Default. A missing file is not an error.
func Load(path string) (*Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to path.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the demo cannot run with.
func (s *Settings) Validate() error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0,1]", s.Threshold)
	}
	if _, err := smartpredictor.LookupProfile(s.Profile); err != nil {
		return err
	}
	switch s.Pause {
	case PauseAuto, PauseAlways, PauseNever:
	default:
		return fmt.Errorf("pause must be %s, %s or %s, got %q", PauseAuto, PauseAlways, PauseNever, s.Pause)
	}
	if s.ModelDir == "" {
		return errors.New("model_dir is empty")
	}
	if s.Image == "" {
		return errors.New("image is empty")
	}
	return nil
}

// LibraryPath returns the configured library path or the platform default.
func (s *Settings) LibraryPath() string {
	if s.Library != "" {
		return s.Library
	}
	return smartpredictor.ResolvePath("")
}
