// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/hct"
	"cogentcore.org/materialtheme/colors/matcolor"
)

// CustomColor is a named brand color to include in a [Theme].
type CustomColor struct {

	// Value is the color.
	Value colors.ARGB `json:"value" yaml:"value" toml:"value"`

	// Name is the name of the color; names do not need to be unique.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Blend is whether to harmonize the color with the seed color.
	Blend bool `json:"blend" yaml:"blend" toml:"blend"`
}

// ColorGroup is a color with its on, container and on-container variants.
type ColorGroup = matcolor.Accent

// CustomColorGroup is the derived light and dark [ColorGroup] of a [CustomColor].
type CustomColorGroup struct {

	// Color is the custom color as given.
	Color CustomColor

	// Value is the color that the groups were derived from:
	// the harmonized color if Color.Blend is set, and Color.Value otherwise.
	Value colors.ARGB

	// Light is the color group for light schemes.
	Light ColorGroup

	// Dark is the color group for dark schemes.
	Dark ColorGroup
}

// NewCustomColorGroup returns the [CustomColorGroup] of the given custom
// color in a theme with the given seed color. If c.Blend is set, the hue
// of the color is first rotated toward the seed by [hct.Harmonize].
func NewCustomColorGroup(seed colors.ARGB, c CustomColor) CustomColorGroup {
	value := c.Value
	if c.Blend {
		value = hct.Harmonize(value, seed)
	}
	tones := matcolor.NewPalette(value).Primary
	return CustomColorGroup{
		Color: c,
		Value: value,
		Light: matcolor.NewAccentLight(tones),
		Dark:  matcolor.NewAccentDark(tones),
	}
}
