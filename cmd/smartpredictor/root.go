// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
	"github.com/YindSoft/smartpredictor-go/config"
	"github.com/YindSoft/smartpredictor-go/menu"
	"github.com/YindSoft/smartpredictor-go/terminal"
)

var (
	configPath string
	library    string
	profile    string
	modelDir   string
	image      string
	threshold  float32
	logFile    string
	logLevel   string
	pause      string
)

var rootCmd = &cobra.Command{
	Use:           "smartpredictor",
	Short:         "Interactive console for the Smart Predictor SDK",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", config.DefaultFile, "Settings file (YAML)")
	pf.StringVarP(&library, "library", "l", "", "SDK shared library path (default lib/"+smartpredictor.LibName()+")")
	pf.StringVar(&profile, "profile", smartpredictor.ProfileAuto, "Symbol profile: auto, unix, win64, win32")
	pf.StringVarP(&modelDir, "model-dir", "m", "./model", "Model directory handed to the SDK")
	pf.StringVarP(&image, "image", "i", "demo.jpg", "Image used by predict and register")
	pf.Float32VarP(&threshold, "threshold", "t", 0.3, "Prediction threshold")
	pf.StringVar(&logFile, "log-file", "smartpredictor.log", "Log file, '-' for stderr, '' to disable")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug traces every SDK call)")
	pf.StringVar(&pause, "pause", config.PauseAuto, "Wait for a key after each command: auto, always, never")
}

// loadSettings reads the settings file and applies the flags given explicitly.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("library") {
		cfg.Library = library
	}
	if flags.Changed("profile") {
		cfg.Profile = profile
	}
	if flags.Changed("model-dir") {
		cfg.ModelDir = modelDir
	}
	if flags.Changed("image") {
		cfg.Image = image
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("pause") {
		cfg.Pause = pause
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openSDK opens and binds the library. On success the caller owns lib and
// must Close it; on a bind failure lib is already closed.
func openSDK(cfg *config.Settings, log *logrus.Logger) (*smartpredictor.Library, *smartpredictor.Bridge, error) {
	p, err := smartpredictor.LookupProfile(cfg.Profile)
	if err != nil {
		return nil, nil, err
	}
	path := cfg.LibraryPath()
	lib, err := smartpredictor.Open(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("library load failed")
		return nil, nil, &startupError{err: fmt.Errorf("load library: %w", err)}
	}
	sdk, err := smartpredictor.Bind(lib, p)
	if err != nil {
		log.WithError(err).WithField("path", lib.Path()).Error("symbol resolution failed")
		closeLibrary(lib, log)
		return nil, nil, &startupError{err: fmt.Errorf("bind library: %w", err)}
	}
	log.WithFields(logrus.Fields{"path": lib.Path(), "profile": p.Name}).Info("library bound")
	return lib, sdk, nil
}

func closeLibrary(lib *smartpredictor.Library, log *logrus.Logger) {
	if err := lib.Close(); err != nil {
		log.WithError(err).Warn("library close failed")
	}
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	terminal.Init()
	con := terminal.New(os.Stdin, os.Stdout)

	fmt.Println("Welcome to Smart Predictor SDK")
	fmt.Printf("Platform: %s/%s (%d-bit)\n", runtime.GOOS, runtime.GOARCH, strconv.IntSize)

	lib, sdk, err := openSDK(cfg, log)
	if err != nil {
		reportStartup(os.Stderr, os.Stdout, con, err)
		return err
	}
	defer closeLibrary(lib, log)

	s := menu.New(sdk, con, os.Stdout, log, menu.Options{
		ModelDir:    cfg.ModelDir,
		Image:       cfg.Image,
		Threshold:   cfg.Threshold,
		LoadFlag:    cfg.LoadFlag,
		RegisterPos: cfg.RegisterPos,
		Pause:       pauseEnabled(cfg.Pause, con.Interactive()),
	})
	return s.Run()
}

type keyWaiter interface {
	Interactive() bool
	ReadKey() (byte, error)
}

// reportStartup prints a startup failure, then keeps an interactive console
// open until a key is pressed.
func reportStartup(errOut, out io.Writer, con keyWaiter, err error) {
	fmt.Fprintln(errOut, "Error:", err)
	var se *startupError
	if errors.As(err, &se) {
		se.reported = true
	}
	if con.Interactive() {
		fmt.Fprintln(out, "Press any key to exit...")
		con.ReadKey()
	}
}

func pauseEnabled(mode string, interactive bool) bool {
	switch mode {
	case config.PauseAlways:
		return true
	case config.PauseNever:
		return false
	default:
		return interactive
	}
}
