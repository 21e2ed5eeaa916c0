// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/YindSoft/smartpredictor-go/config"
)

// newLogger builds the logger described by cfg. The returned func closes the
// log file, if any.
func newLogger(cfg *config.Settings) (*logrus.Logger, func(), error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	if level >= logrus.DebugLevel {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	closeFn := func() {}
	switch cfg.LogFile {
	case "":
		log.SetOutput(io.Discard)
	case "-":
		log.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Logging must not keep the menu from starting.
			fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", cfg.LogFile, err)
			log.SetOutput(io.Discard)
			break
		}
		log.SetOutput(f)
		closeFn = func() { f.Close() }
	}
	return log, closeFn, nil
}
