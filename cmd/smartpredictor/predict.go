// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
)

func init() {
	var loadFirst bool

	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "Run one prediction on the configured image and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			lib, sdk, err := openSDK(cfg, log)
			if err != nil {
				return err
			}
			defer closeLibrary(lib, log)

			if loadFirst {
				if rc := sdk.Load(cfg.ModelDir, cfg.LoadFlag); rc < 0 {
					return fmt.Errorf("load model %s: code %d", cfg.ModelDir, rc)
				}
			}
			img, err := smartpredictor.ReadImage(cfg.Image)
			if err != nil {
				return err
			}
			rc, content := sdk.Predict(img, cfg.Threshold)
			log.WithFields(logrus.Fields{"image": cfg.Image, "size": len(img), "code": rc}).Info("predict")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prediction result: %d\n", rc)
			fmt.Fprintf(out, "Prediction content: %s\n", content)
			return nil
		},
	}
	predictCmd.Flags().BoolVar(&loadFirst, "load", true, "Load the model directory before predicting")
	rootCmd.AddCommand(predictCmd)
}
