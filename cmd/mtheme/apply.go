// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/materialtheme/theme/dom"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newApplyCmd(rf *rootFlags) *cobra.Command {
	tf := &themeFlags{}
	var (
		htmlFile         string
		output           string
		stylesheet       bool
		brightnessSuffix bool
		paletteTones     []int
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "apply a theme to the root element of an html file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, rf, tf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("brightness-suffix") {
				cfg.BrightnessSuffix = brightnessSuffix
			}
			if cmd.Flags().Changed("palette-tones") {
				cfg.PaletteTones = paletteTones
			}
			t, err := buildTheme(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(htmlFile)
			if err != nil {
				return err
			}
			doc, err := dom.Parse(bytes.NewReader(data))
			if err != nil {
				return err
			}
			opts := cfg.ApplyOptions(nil)
			env := doc.Environment(termenv.HasDarkBackground)
			if err := env.Apply(t, opts); err != nil {
				return fmt.Errorf("%s: %w", htmlFile, err)
			}
			if stylesheet {
				if err := doc.AddStyleSheet(t, opts); err != nil {
					return fmt.Errorf("%s: %w", htmlFile, err)
				}
			}

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return err
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if output == "" {
				output = htmlFile
			}
			slog.Info("applied theme", "file", output, "dark", env.IsDark(opts))
			return os.WriteFile(output, buf.Bytes(), 0666)
		},
	}
	addThemeFlags(cmd, tf)
	f := cmd.Flags()
	f.StringVar(&htmlFile, "html", "", "html file to apply the theme to")
	f.StringVarP(&output, "output", "o", "", "output file, or - for standard output (default: the html file)")
	f.BoolVar(&stylesheet, "stylesheet", false, "also add a style element with light and dark rules")
	f.BoolVar(&brightnessSuffix, "brightness-suffix", false, "also set -light and -dark suffixed properties")
	f.IntSliceVar(&paletteTones, "palette-tones", nil, "palette tones to also set as properties")
	cmd.MarkFlagRequired("html")
	return cmd
}
