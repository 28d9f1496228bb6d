// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor provides Material Design 3 tonal palettes,
// core palettes and color schemes built on the HCT color system.
package matcolor

import (
	"image"
	"sync"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/hct"
)

// Tones contains cached color values for each tone
// of a hue and chroma. To get a tonal value, use [Tones.AbsTone].
type Tones struct {
	hue    float32
	chroma float32

	mu sync.Mutex

	// the cached map of tonal color values
	tones map[int]colors.ARGB
}

// NewTones returns a new set of [Tones] for the given hue and chroma.
func NewTones(hue, chroma float32) *Tones {
	return &Tones{
		hue:    hue,
		chroma: chroma,
		tones:  map[int]colors.ARGB{},
	}
}

// TonesFromColor returns a new set of [Tones] with the
// hue and chroma of the given color.
func TonesFromColor(c colors.ARGB) *Tones {
	h := hct.FromARGB(c)
	return NewTones(h.Hue, h.Chroma)
}

// Hue returns the hue of the tones.
func (t *Tones) Hue() float32 { return t.hue }

// Chroma returns the requested chroma of the tones. Actual
// tones may have lower chroma where the gamut requires it.
func (t *Tones) Chroma() float32 { return t.chroma }

// KeyColor returns the color at tone 50.
func (t *Tones) KeyColor() colors.ARGB { return t.AbsTone(50) }

// AbsTone returns the color at the given absolute
// tone on a scale of 0 to 100. It uses the cached
// value if it exists, and it caches the value if
// it is not already.
func (t *Tones) AbsTone(tone int) colors.ARGB {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.tones[tone]; ok {
		return c
	}
	c := hct.SolveToARGB(t.hue, t.chroma, float32(tone))
	t.tones[tone] = c
	return c
}

// AbsToneUniform returns [image.Uniform] of [Tones.AbsTone].
func (t *Tones) AbsToneUniform(tone int) *image.Uniform {
	return image.NewUniform(t.AbsTone(tone))
}
