// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YindSoft/smartpredictor-go/config"
)

func init() {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := os.Stat(configPath)
			switch {
			case err == nil && !force:
				return fmt.Errorf("%s already exists (use --force)", configPath)
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return err
			}
			if err := config.Default().Save(configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
