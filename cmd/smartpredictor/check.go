// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	smartpredictor "github.com/YindSoft/smartpredictor-go"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load the SDK library and report which entry points resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			p, err := smartpredictor.LookupProfile(cfg.Profile)
			if err != nil {
				return err
			}
			lib, err := smartpredictor.Open(cfg.LibraryPath())
			if err != nil {
				return &startupError{err: err}
			}
			defer lib.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Library: %s\nProfile: %s\n", lib.Path(), p.Name)
			renderSymbols(out, lib, p)

			if _, err := smartpredictor.Bind(lib, p); err != nil {
				return &startupError{err: err}
			}
			color.New(color.FgGreen).Fprintf(out, "All %d entry points resolved\n", len(smartpredictor.Ops))
			return nil
		},
	}
	rootCmd.AddCommand(checkCmd)
}

func renderSymbols(w io.Writer, src smartpredictor.SymbolSource, p smartpredictor.Profile) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Operation", "Symbol", "Status"}),
	)
	for _, op := range smartpredictor.Ops {
		name := p.Symbol(op)
		status := "ok"
		if addr, err := src.Lookup(name); err != nil || addr == 0 {
			status = "missing"
		}
		table.Append(string(op), name, status)
	}
	table.Render()
}
