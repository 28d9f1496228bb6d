// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct implements the HCT (hue, chroma, tone) color system,
// along with the hue and tone transformations built on it.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/cam16"
	"cogentcore.org/materialtheme/colors/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
type HCT struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32 `min:"0" max:"360"`

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma. The maximum varies as a function of hue and tone, but 150 is an upper bound.
	Chroma float32 `min:"0" max:"150"`

	// tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	Tone float32 `min:"0" max:"100"`

	// the sRGB color these values were measured from
	argb colors.ARGB
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// The color is solved into the sRGB gamut, which may cause the chroma
// to decrease until it is inside the gamut; the returned values are
// those of the resulting color.
func New(hue, chroma, tone float32) HCT {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB returns the HCT representation of the given color.
// Alpha is preserved in [HCT.ARGB] but does not affect the dimensions.
func FromARGB(c colors.ARGB) HCT {
	cam := cam16.FromARGB(c)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: cie.LstarFromARGB(c), argb: c}
}

// FromColor constructs a new HCT color from a standard [color.Color]
func FromColor(c color.Color) HCT {
	return FromARGB(colors.FromColor(c))
}

// ARGB returns the color as a packed [colors.ARGB].
func (h HCT) ARGB() colors.ARGB {
	return h.argb
}

// RGBA implements the [color.Color] interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.argb.RGBA()
}

// AsRGBA returns a standard [color.RGBA] type
func (h HCT) AsRGBA() color.RGBA {
	return h.argb.AsRGBA()
}

// WithHue returns a new color with the given hue. Chroma may decrease
// because chroma has a different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h HCT) WithHue(hue float32) HCT {
	return h.with(New(hue, h.Chroma, h.Tone))
}

// WithChroma returns a new color with the given chroma (0 to max
// that depends on other params), while keeping the sRGB representation
// within its gamut, which may cause the chroma to decrease until it
// is inside the gamut.
func (h HCT) WithChroma(chroma float32) HCT {
	return h.with(New(h.Hue, chroma, h.Tone))
}

// WithTone returns a new color with the given tone (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h HCT) WithTone(tone float32) HCT {
	return h.with(New(h.Hue, h.Chroma, tone))
}

// with returns n with the alpha channel of h.
func (h HCT) with(n HCT) HCT {
	n.argb = n.argb.WithAlpha(h.argb.Alpha())
	return n
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}
