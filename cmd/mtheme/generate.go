// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/materialtheme/theme"
	"github.com/spf13/cobra"
)

func newGenerateCmd(rf *rootFlags) *cobra.Command {
	tf := &themeFlags{}
	var (
		format           string
		output           string
		brightnessSuffix bool
		paletteTones     []int
		highlightStyle   string
		watchFiles       bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a theme and write it as json, yaml, toml or css",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfgFile, image string
			generate := func() error {
				cfg, file, err := loadConfig(cmd, rf, tf)
				if err != nil {
					return err
				}
				cfgFile, image = file, cfg.Image
				f := cmd.Flags()
				if f.Changed("format") {
					cfg.Format = format
				}
				if f.Changed("output") {
					cfg.Output = output
				}
				if f.Changed("brightness-suffix") {
					cfg.BrightnessSuffix = brightnessSuffix
				}
				if f.Changed("palette-tones") {
					cfg.PaletteTones = paletteTones
				}

				t, err := buildTheme(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				slog.Info("generated theme", "seed", t.Seed, "custom", len(t.CustomColors))

				var buf bytes.Buffer
				if cfg.Format == "css" {
					err = t.Encode(&buf, cfg.Format, cfg.ApplyOptions(nil))
				} else {
					tones := cfg.PaletteTones
					if len(tones) == 0 {
						tones = theme.DefaultPaletteTones
					}
					err = encodeExport(&buf, t.ExportTones(tones), cfg.Format)
				}
				if err != nil {
					return err
				}
				if cfg.Output == "" {
					if highlightStyle != "" {
						return highlight(cmd.OutOrStdout(), buf.String(), cfg.Format, highlightStyle)
					}
					_, err = cmd.OutOrStdout().Write(buf.Bytes())
					return err
				}
				slog.Info("writing theme", "file", cfg.Output, "format", cfg.Format)
				return os.WriteFile(cfg.Output, buf.Bytes(), 0666)
			}

			if err := generate(); err != nil || !watchFiles {
				return err
			}
			var files []string
			if cfgFile != "" {
				files = append(files, cfgFile)
			}
			if image != "" && !strings.Contains(image, "://") {
				files = append(files, image)
			}
			return watch(cmd.Context(), files, generate)
		},
	}
	addThemeFlags(cmd, tf)
	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", "json", "output format: json, yaml, toml or css")
	f.StringVarP(&output, "output", "o", "", "output file (default: standard output)")
	f.BoolVar(&brightnessSuffix, "brightness-suffix", false, "css: also write -light and -dark suffixed properties")
	f.IntSliceVar(&paletteTones, "palette-tones", nil, "palette tones to include (default: all standard tones)")
	f.StringVar(&highlightStyle, "highlight", "", "syntax highlight standard output with the given style, such as monokai")
	f.BoolVarP(&watchFiles, "watch", "w", false, "generate again whenever the config file or image file changes")
	return cmd
}

// encodeExport writes the export in the given data format.
func encodeExport(buf *bytes.Buffer, ex theme.Export, format string) error {
	switch format {
	case "yaml", "yml":
		return ex.EncodeYAML(buf)
	case "toml":
		return ex.EncodeTOML(buf)
	}
	return ex.EncodeJSON(buf)
}
