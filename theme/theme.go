// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme derives Material Design 3 color themes from a seed color
// or an image, harmonizes custom brand colors into them, and applies
// a chosen scheme of a theme to a presentation target as style properties.
package theme

import (
	"context"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/matcolor"
	"cogentcore.org/materialtheme/colors/seed"
)

// Theme is a complete color theme derived from one seed color.
// All of its schemes and palettes come from the same seed.
// A Theme is not modified after it is made.
type Theme struct {

	// Seed is the color the theme was derived from.
	Seed colors.ARGB

	// Schemes are the light and dark color schemes.
	Schemes matcolor.Schemes

	// Palettes are the tonal palettes the schemes are built from.
	Palettes Palettes

	// CustomColors are the derived custom color groups,
	// in the order they were given.
	CustomColors []CustomColorGroup
}

// Palettes are the six key tonal palettes of a [Theme].
type Palettes struct {
	Primary        *matcolor.Tones
	Secondary      *matcolor.Tones
	Tertiary       *matcolor.Tones
	Neutral        *matcolor.Tones
	NeutralVariant *matcolor.Tones
	Error          *matcolor.Tones
}

// PaletteKeys are the names of the palettes in [Palettes.Tones] order.
var PaletteKeys = matcolor.PaletteKeys

// Tones returns the palettes in [PaletteKeys] order.
func (p Palettes) Tones() []*matcolor.Tones {
	return []*matcolor.Tones{p.Primary, p.Secondary, p.Tertiary, p.Neutral, p.NeutralVariant, p.Error}
}

// FromSeed returns a new [Theme] derived from the given seed color,
// with the given custom colors. The result only depends on the
// arguments, and every call returns new scheme values. Any color
// is accepted as a seed.
func FromSeed(seed colors.ARGB, custom ...CustomColor) *Theme {
	schemes := matcolor.Schemes{
		Light: matcolor.NewLightScheme(seed),
		Dark:  matcolor.NewDarkScheme(seed),
	}
	return newTheme(seed, matcolor.NewPalette(seed), schemes, custom)
}

// FromContentSeed is like [FromSeed], but the schemes and palettes
// follow the chroma of the seed color, for themes that should stay
// close to content such as an image.
func FromContentSeed(seed colors.ARGB, custom ...CustomColor) *Theme {
	schemes := matcolor.Schemes{
		Light: matcolor.NewLightContentScheme(seed),
		Dark:  matcolor.NewDarkContentScheme(seed),
	}
	return newTheme(seed, matcolor.NewContentPalette(seed), schemes, custom)
}

func newTheme(seed colors.ARGB, p *matcolor.Palette, schemes matcolor.Schemes, custom []CustomColor) *Theme {
	t := &Theme{
		Seed:    seed,
		Schemes: schemes,
		Palettes: Palettes{
			Primary:        p.Primary,
			Secondary:      p.Secondary,
			Tertiary:       p.Tertiary,
			Neutral:        p.Neutral,
			NeutralVariant: p.NeutralVariant,
			Error:          p.Error,
		},
		CustomColors: make([]CustomColorGroup, len(custom)),
	}
	for i, c := range custom {
		t.CustomColors[i] = NewCustomColorGroup(seed, c)
	}
	return t
}

// FromImage returns a new [Theme] derived from the seed color of the
// given image source. It waits for the seed extraction once and then
// behaves like [FromSeed]. Extraction errors are returned unchanged.
func FromImage(ctx context.Context, src seed.Source, custom ...CustomColor) (*Theme, error) {
	s, err := src.Seed(ctx)
	if err != nil {
		return nil, err
	}
	return FromSeed(s, custom...), nil
}

// FromImageData returns a new [Theme] derived from the given encoded image.
func FromImageData(ctx context.Context, data []byte, custom ...CustomColor) (*Theme, error) {
	return FromImage(ctx, seed.Bytes(data), custom...)
}

// FromImageReference returns a new [Theme] derived from the image
// at the given file path or URL.
func FromImageReference(ctx context.Context, ref string, custom ...CustomColor) (*Theme, error) {
	return FromImage(ctx, seed.Reference(ref), custom...)
}
