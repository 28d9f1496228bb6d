// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of theme generation,
// which is read from TOML files and overridden by command line flags.
package config

import (
	"fmt"
	"slices"

	"cogentcore.org/materialtheme/base/errors"
	"cogentcore.org/materialtheme/base/fsx"
	"cogentcore.org/materialtheme/base/iox/tomlx"
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/quantize"
	"cogentcore.org/materialtheme/colors/seed"
	"cogentcore.org/materialtheme/theme"
	"github.com/mitchellh/go-homedir"
)

// ErrNoSource is returned when neither a seed color nor an image is configured.
var ErrNoSource = errors.New("config: no seed color or image given")

// DefaultFile is the name of the config file looked for by [Find].
const DefaultFile = "mtheme.toml"

// Formats are the supported output formats.
var Formats = []string{"json", "yaml", "yml", "toml", "css"}

// Config is the configuration of theme generation.
type Config struct {

	// Seed is the seed color as a hex string; it takes precedence over Image.
	Seed string `toml:"seed"`

	// Image is the file path or URL of an image to extract the seed color from.
	Image string `toml:"image"`

	// Dark is whether to use the dark scheme; if unset,
	// the preference of the environment is used.
	Dark *bool `toml:"dark"`

	// Content uses palettes that follow the chroma of the seed color.
	Content bool `toml:"content"`

	// Format is the output format: json, yaml, toml or css.
	Format string `toml:"format"`

	// Output is the file to write to; empty means standard output.
	Output string `toml:"output"`

	// MaxDimension is the size that images are downscaled to before extraction.
	MaxDimension int `toml:"max_dimension"`

	// MaxColors is the number of colors images are quantized to.
	MaxColors int `toml:"max_colors"`

	// Quantizer is the quantizer used for images: celebi, wu or kmeans.
	Quantizer string `toml:"quantizer"`

	// BrightnessSuffix also writes the light and dark
	// schemes with -light and -dark suffixes.
	BrightnessSuffix bool `toml:"brightness_suffix"`

	// PaletteTones are the palette tones to also write as properties.
	PaletteTones []int `toml:"palette_tones"`

	// Custom are the custom colors to include.
	Custom []CustomColor `toml:"custom"`
}

// CustomColor is a custom color in a [Config].
type CustomColor struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
	Blend bool   `toml:"blend"`
}

// Defaults returns a new [Config] with the default values.
func Defaults() *Config {
	return &Config{
		Format:       "json",
		MaxDimension: 128,
		MaxColors:    128,
		Quantizer:    "celebi",
	}
}

// Open returns the [Defaults] overridden by the values in the given
// TOML file. A leading ~ in the path is expanded to the home directory.
func Open(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := Defaults()
	if err := tomlx.Open(c, path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Find returns the [Defaults] overridden by the first [DefaultFile]
// found in the current directory or the user config directory.
// It returns the defaults if there is no such file.
func Find() (*Config, string, error) {
	files := fsx.FindFilesOnPaths(fsx.UserConfigPaths("mtheme"), DefaultFile)
	if len(files) == 0 {
		return Defaults(), "", nil
	}
	c, err := Open(files[0])
	return c, files[0], err
}

// Validate returns an error describing every invalid value.
func (c *Config) Validate() error {
	var errs []error
	if c.Seed != "" {
		if _, err := colors.ParseHex(c.Seed); err != nil {
			errs = append(errs, fmt.Errorf("seed: %w", err))
		}
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("format: %q is not one of %v", c.Format, Formats))
	}
	if c.MaxDimension < 0 {
		errs = append(errs, fmt.Errorf("max_dimension: %d is negative", c.MaxDimension))
	}
	if c.MaxColors < 1 {
		errs = append(errs, fmt.Errorf("max_colors: %d is less than 1", c.MaxColors))
	}
	if _, err := quantize.ByName(c.Quantizer); err != nil {
		errs = append(errs, fmt.Errorf("quantizer: %w", err))
	}
	for _, t := range c.PaletteTones {
		if t < 0 || t > 100 {
			errs = append(errs, fmt.Errorf("palette_tones: %d is not in [0, 100]", t))
		}
	}
	if _, err := c.CustomColors(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Extractor returns the seed extractor configured by c.
func (c *Config) Extractor() (*seed.Extractor, error) {
	q, err := quantize.ByName(c.Quantizer)
	if err != nil {
		return nil, err
	}
	e := seed.NewExtractor()
	e.MaxDimension = c.MaxDimension
	e.MaxColors = c.MaxColors
	e.Quantizer = q
	return e, nil
}

// Source returns the source of the seed color: the seed color if
// it is set, and otherwise the image. It returns [ErrNoSource]
// if neither is set.
func (c *Config) Source() (seed.Source, error) {
	if c.Seed != "" {
		s, err := colors.ParseHex(c.Seed)
		if err != nil {
			return nil, fmt.Errorf("config: seed: %w", err)
		}
		return seed.Color(s), nil
	}
	if c.Image != "" {
		e, err := c.Extractor()
		if err != nil {
			return nil, err
		}
		return e.Reference(c.Image), nil
	}
	return nil, ErrNoSource
}

// CustomColors returns the custom colors with their values parsed.
func (c *Config) CustomColors() ([]theme.CustomColor, error) {
	res := make([]theme.CustomColor, len(c.Custom))
	for i, cc := range c.Custom {
		v, err := colors.ParseHex(cc.Value)
		if err != nil {
			return nil, fmt.Errorf("custom color %q: %w", cc.Name, err)
		}
		res[i] = theme.CustomColor{Name: cc.Name, Value: v, Blend: cc.Blend}
	}
	return res, nil
}

// ApplyOptions returns the [theme.ApplyOptions] configured by c,
// with the given target.
func (c *Config) ApplyOptions(target theme.Target) theme.ApplyOptions {
	return theme.ApplyOptions{
		Dark:             c.Dark,
		Target:           target,
		BrightnessSuffix: c.BrightnessSuffix,
		PaletteTones:     c.PaletteTones,
	}
}
