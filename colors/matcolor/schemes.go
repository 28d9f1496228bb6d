// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/materialtheme/colors"

// Schemes contains the light and dark color schemes of one palette.
type Schemes struct {
	Light *Scheme
	Dark  *Scheme
}

// NewSchemes returns new [Schemes] for the given
// [Palette] containing both light and dark schemes.
func NewSchemes(p *Palette) Schemes {
	return Schemes{
		Light: NewLightSchemeFromPalette(p),
		Dark:  NewDarkSchemeFromPalette(p),
	}
}

// NewSchemesFromSeed returns new [Schemes] for the given seed color,
// building the light and dark schemes independently.
func NewSchemesFromSeed(seed colors.ARGB) Schemes {
	return Schemes{
		Light: NewLightScheme(seed),
		Dark:  NewDarkScheme(seed),
	}
}

// Get returns the dark scheme if dark is true and the light scheme otherwise.
func (s Schemes) Get(dark bool) *Scheme {
	if dark {
		return s.Dark
	}
	return s.Light
}
