// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/materialtheme/theme"
	"cogentcore.org/materialtheme/theme/term"
	"github.com/spf13/cobra"
)

func newPaletteCmd(rf *rootFlags) *cobra.Command {
	tf := &themeFlags{}
	var tones []int
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "show the tonal palettes of a theme in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, rf, tf)
			if err != nil {
				return err
			}
			t, err := buildTheme(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return term.PreviewPalettes(cmd.OutOrStdout(), t.Palettes, tones)
		},
	}
	addThemeFlags(cmd, tf)
	cmd.Flags().IntSliceVar(&tones, "tones", theme.DefaultPaletteTones, "tones to show")
	return cmd
}
