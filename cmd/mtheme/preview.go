// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/materialtheme/theme/term"
	"github.com/spf13/cobra"
)

func newPreviewCmd(rf *rootFlags) *cobra.Command {
	tf := &themeFlags{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "show the roles of a theme scheme in the terminal",
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
			dark := term.Environment(nil).IsDark(cfg.ApplyOptions(nil))
			out := cmd.OutOrStdout()
			name := "light"
			if dark {
				name = "dark"
			}
			fmt.Fprintf(out, "seed %s, %s scheme\n", t.Seed, name)
			if err := term.Preview(out, t.Schemes.Get(dark)); err != nil {
				return err
			}
			for _, cc := range t.CustomColors {
				g := cc.Light
				if dark {
					g = cc.Dark
				}
				fmt.Fprintf(out, "%s %s: color %s, container %s\n", cc.Color.Name, cc.Value, g.Base, g.Container)
			}
			return nil
		},
	}
	addThemeFlags(cmd, tf)
	return cmd
}
