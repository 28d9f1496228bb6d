// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/cam16"
	"github.com/chewxy/math32"
)

// Lighten returns a color that is lighter by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Lighten(c colors.ARGB, amount float32) colors.ARGB {
	h := FromARGB(c)
	return h.WithTone(h.Tone + amount).ARGB()
}

// Darken returns a color that is darker by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Darken(c colors.ARGB, amount float32) colors.ARGB {
	h := FromARGB(c)
	return h.WithTone(h.Tone - amount).ARGB()
}

// Spin returns a color that has a different hue by the
// given absolute HCT hue amount (±0-360, ranges enforced)
func Spin(c colors.ARGB, amount float32) colors.ARGB {
	h := FromARGB(c)
	return h.WithHue(h.Hue + amount).ARGB()
}

// MinHueDistance finds the minimum distance between two hues.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance(a, b float32) float32 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := b - (a + 360)
	d1a := math32.Abs(d1)
	d2a := math32.Abs(d2)
	d3a := math32.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// DifferenceDegrees returns the unsigned distance between two
// hues in degrees, in the range [0, 180].
func DifferenceDegrees(a, b float32) float32 {
	return 180 - math32.Abs(math32.Abs(a-b)-180)
}

// RotationDirection returns the sign of the shortest rotation
// from hue from to hue to: 1 for increasing degrees, -1 otherwise.
func RotationDirection(from, to float32) float32 {
	if cam16.SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// MaxHarmonizeRotation is the largest hue rotation in degrees
// that [Harmonize] applies.
const MaxHarmonizeRotation = 15

// Harmonize returns the from color with its hue rotated toward the
// hue of the to color, by half of the hue difference and at most
// [MaxHarmonizeRotation] degrees. Chroma and tone of from are kept.
// This makes brand colors feel consonant with a theme seed color.
func Harmonize(from, to colors.ARGB) colors.ARGB {
	fh := FromARGB(from)
	th := FromARGB(to)
	diff := DifferenceDegrees(fh.Hue, th.Hue)
	rotation := min(diff*0.5, MaxHarmonizeRotation)
	hue := cam16.SanitizeDegrees(fh.Hue + rotation*RotationDirection(fh.Hue, th.Hue))
	return SolveToARGB(hue, fh.Chroma, fh.Tone).WithAlpha(from.Alpha())
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on HCT values, weighting the hue by
// chroma because the hue of a near grey color is unreliable.
func Blend(pct float32, x, y colors.ARGB) colors.ARGB {
	hx := FromARGB(x)
	hy := FromARGB(y)
	pct = min(max(pct, 0), 100)
	px := pct / 100
	py := 1 - px

	dhue := MinHueDistance(hx.Hue, hy.Hue)

	cpy := float32(0)
	if sum := px*hx.Chroma + py*hy.Chroma; sum > 0 {
		cpy = py * hy.Chroma / sum
	}
	hue := hx.Hue + cpy*dhue

	chroma := px*hx.Chroma + py*hy.Chroma
	tone := px*hx.Tone + py*hy.Tone
	a := math32.Floor(px*float32(x.Alpha())+py*float32(y.Alpha()) + 0.5)
	return SolveToARGB(hue, chroma, tone).WithAlpha(uint8(a))
}

// IsLight returns whether the given color is light
// (has an HCT tone greater than or equal to 50)
func IsLight(c colors.ARGB) bool {
	return FromARGB(c).Tone >= 50
}

// IsDark returns whether the given color is dark
// (has an HCT tone less than 50)
func IsDark(c colors.ARGB) bool {
	return FromARGB(c).Tone < 50
}
