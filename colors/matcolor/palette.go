// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/hct"
)

// Palette contains the six key tonal palettes derived from a seed color.
type Palette struct {

	// Primary is the primary accent palette (a1)
	Primary *Tones

	// Secondary is the secondary accent palette (a2)
	Secondary *Tones

	// Tertiary is the tertiary accent palette (a3)
	Tertiary *Tones

	// Neutral is the neutral palette used for surfaces and backgrounds (n1)
	Neutral *Tones

	// NeutralVariant is the neutral palette used for outlines and variant surfaces (n2)
	NeutralVariant *Tones

	// Error is the palette used for error colors
	Error *Tones
}

// Hue and chroma of the error palette.
const (
	ErrorHue    = 25
	ErrorChroma = 84
)

// NewPalette returns a new [Palette] for the given seed color,
// using the standard chroma levels for each palette.
func NewPalette(seed colors.ARGB) *Palette {
	h := hct.FromARGB(seed)
	return &Palette{
		Primary:        NewTones(h.Hue, max(48, h.Chroma)),
		Secondary:      NewTones(h.Hue, 16),
		Tertiary:       NewTones(h.Hue+60, 24),
		Neutral:        NewTones(h.Hue, 4),
		NeutralVariant: NewTones(h.Hue, 8),
		Error:          NewTones(ErrorHue, ErrorChroma),
	}
}

// NewContentPalette returns a new [Palette] for the given seed
// color in which every palette follows the chroma of the seed,
// for schemes that should stay close to content such as images.
func NewContentPalette(seed colors.ARGB) *Palette {
	h := hct.FromARGB(seed)
	return &Palette{
		Primary:        NewTones(h.Hue, h.Chroma),
		Secondary:      NewTones(h.Hue, h.Chroma/3),
		Tertiary:       NewTones(h.Hue+60, h.Chroma/2),
		Neutral:        NewTones(h.Hue, min(h.Chroma/12, 4)),
		NeutralVariant: NewTones(h.Hue, min(h.Chroma/6, 8)),
		Error:          NewTones(ErrorHue, ErrorChroma),
	}
}

// PaletteKeys are the names of the palettes in [Palette.Tones] order.
var PaletteKeys = []string{"primary", "secondary", "tertiary", "neutral", "neutral-variant", "error"}

// Tones returns the palettes in [PaletteKeys] order.
func (p *Palette) Tones() []*Tones {
	return []*Tones{p.Primary, p.Secondary, p.Tertiary, p.Neutral, p.NeutralVariant, p.Error}
}
