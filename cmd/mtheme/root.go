// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/materialtheme/base/logx"
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/config"
	"cogentcore.org/materialtheme/theme"
	"github.com/spf13/cobra"
)

// rootFlags are the flags shared by all commands.
type rootFlags struct {
	config      string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

// NewRootCmd returns the root mtheme command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:          "mtheme",
		Short:        "mtheme generates Material color themes from a seed color or an image",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(rf.veryVerbose, rf.verbose, rf.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&rf.config, "config", "", "config file (default: "+config.DefaultFile+" in the current or user config directory)")
	pf.BoolVarP(&rf.verbose, "verbose", "v", false, "print verbose output")
	pf.BoolVar(&rf.veryVerbose, "vv", false, "print debug output")
	pf.BoolVarP(&rf.quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(newGenerateCmd(rf))
	root.AddCommand(newApplyCmd(rf))
	root.AddCommand(newPreviewCmd(rf))
	root.AddCommand(newPaletteCmd(rf))
	return root
}

// themeFlags are the flags that select the theme.
type themeFlags struct {
	seed         string
	image        string
	custom       []string
	dark         bool
	content      bool
	quantizer    string
	maxColors    int
	maxDimension int
}

func addThemeFlags(cmd *cobra.Command, tf *themeFlags) {
	f := cmd.Flags()
	f.StringVar(&tf.seed, "seed", "", "seed color as a hex string")
	f.StringVar(&tf.image, "image", "", "file path or URL of an image to extract the seed color from")
	f.StringArrayVar(&tf.custom, "custom", nil, "custom color as name=hex, or name=hex:blend to harmonize it (repeatable)")
	f.BoolVar(&tf.dark, "dark", false, "use the dark scheme (default: environment preference)")
	f.BoolVar(&tf.content, "content", false, "use palettes that follow the chroma of the seed color")
	f.StringVar(&tf.quantizer, "quantizer", "", "image quantizer: celebi, wu or kmeans")
	f.IntVar(&tf.maxColors, "max-colors", 0, "number of colors images are quantized to")
	f.IntVar(&tf.maxDimension, "max-dimension", 0, "size images are downscaled to before extraction")
}

// loadConfig opens the config file and applies the flags that were set.
// It also returns the config file that was used, if any.
func loadConfig(cmd *cobra.Command, rf *rootFlags, tf *themeFlags) (*config.Config, string, error) {
	var cfg *config.Config
	var err error
	file := rf.config
	if file != "" {
		cfg, err = config.Open(file)
	} else {
		cfg, file, err = config.Find()
		if file != "" {
			slog.Debug("using config file", "file", file)
		}
	}
	if err != nil {
		return nil, "", err
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = tf.seed
		cfg.Image = ""
	}
	if f.Changed("image") {
		cfg.Image = tf.image
		if !f.Changed("seed") {
			cfg.Seed = ""
		}
	}
	if f.Changed("dark") {
		cfg.Dark = &tf.dark
	}
	if f.Changed("content") {
		cfg.Content = tf.content
	}
	if f.Changed("quantizer") {
		cfg.Quantizer = tf.quantizer
	}
	if f.Changed("max-colors") {
		cfg.MaxColors = tf.maxColors
	}
	if f.Changed("max-dimension") {
		cfg.MaxDimension = tf.maxDimension
	}
	for _, c := range tf.custom {
		cc, err := parseCustom(c)
		if err != nil {
			return nil, "", err
		}
		cfg.Custom = append(cfg.Custom, cc)
	}
	return cfg, file, nil
}

// parseCustom parses a custom color flag of the form name=hex[:blend].
func parseCustom(s string) (config.CustomColor, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return config.CustomColor{}, fmt.Errorf("custom color %q: want name=hex or name=hex:blend", s)
	}
	cc := config.CustomColor{Name: name, Value: value}
	if v, opt, ok := strings.Cut(value, ":"); ok {
		if opt != "blend" {
			return config.CustomColor{}, fmt.Errorf("custom color %q: unknown option %q", s, opt)
		}
		cc.Value = v
		cc.Blend = true
	}
	if _, err := colors.ParseHex(cc.Value); err != nil {
		return config.CustomColor{}, fmt.Errorf("custom color %q: %w", s, err)
	}
	return cc, nil
}

// buildTheme derives the theme configured by cfg.
func buildTheme(ctx context.Context, cfg *config.Config) (*theme.Theme, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := cfg.Source()
	if err != nil {
		return nil, err
	}
	custom, err := cfg.CustomColors()
	if err != nil {
		return nil, err
	}
	if !cfg.Content {
		return theme.FromImage(ctx, src, custom...)
	}
	seed, err := src.Seed(ctx)
	if err != nil {
		return nil, err
	}
	return theme.FromContentSeed(seed, custom...), nil
}
