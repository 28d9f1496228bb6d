// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"cogentcore.org/materialtheme/colors"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	blue := colors.ARGB(0xff0000ff)
	assert.Greater(t, FromARGB(Lighten(blue, 30)).Tone, FromARGB(blue).Tone+25)
	assert.Less(t, FromARGB(Darken(blue, 30)).Tone, FromARGB(blue).Tone-25)

	spun := FromARGB(Spin(0xff1e5574, 91))
	expectTol(t, FromARGB(0xff1e5574).Hue+91, spun.Hue, 3, spun.String())

	assert.Equal(t, float32(80), MinHueDistance(240, 320))
	assert.Equal(t, float32(-80), MinHueDistance(320, 240))
	assert.Equal(t, float32(46), MinHueDistance(320, 6))
	assert.Equal(t, float32(-46), MinHueDistance(6, 320))

	c := Blend(50, 0xffffffff, 0xff000000)
	assert.Equal(t, c.Red(), c.Green())
	expectTol(t, 50, FromARGB(c).Tone, 1, c.String())

	assert.False(t, IsLight(colors.FromRGB(17, 38, 91)))
	assert.True(t, IsLight(colors.FromRGB(178, 89, 203)))
	assert.True(t, IsDark(colors.FromRGB(17, 38, 91)))
	assert.False(t, IsDark(colors.FromRGB(178, 89, 203)))
}

func TestDifferenceDegrees(t *testing.T) {
	assert.Equal(t, float32(80), DifferenceDegrees(240, 320))
	assert.Equal(t, float32(80), DifferenceDegrees(320, 240))
	assert.Equal(t, float32(46), DifferenceDegrees(320, 6))
	assert.Equal(t, float32(180), DifferenceDegrees(0, 180))
	assert.Equal(t, float32(0), DifferenceDegrees(42, 42))

	assert.Equal(t, float32(1), RotationDirection(240, 320))
	assert.Equal(t, float32(-1), RotationDirection(320, 240))
	assert.Equal(t, float32(1), RotationDirection(320, 6))
	assert.Equal(t, float32(-1), RotationDirection(6, 320))
}

func TestHarmonize(t *testing.T) {
	tests := []struct {
		name     string
		from, to colors.ARGB
	}{
		{"red to blue", 0xffff0000, 0xff0000ff},
		{"red to green", 0xffff0000, 0xff00ff00},
		{"teal to red", 0xff1e8a8a, 0xffc0392b},
		{"blue to orange", 0xff0000ff, 0xffff8800},
		{"brand to purple", 0xff1b998b, 0xff6750a4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := FromARGB(tt.from)
			to := FromARGB(tt.to)
			got := FromARGB(Harmonize(tt.from, tt.to))

			before := DifferenceDegrees(from.Hue, to.Hue)
			after := DifferenceDegrees(got.Hue, to.Hue)
			assert.Less(t, after, before)
			// the rotation is bounded; allow for the gamut solver
			assert.LessOrEqual(t, DifferenceDegrees(from.Hue, got.Hue), float32(MaxHarmonizeRotation+2))
			expectTol(t, from.Tone, got.Tone, 1, got.String())
		})
	}
}

func TestHarmonizeSameHue(t *testing.T) {
	c := colors.ARGB(0xff6750a4)
	got := Harmonize(c, c)
	assert.InDelta(t, int(c.Red()), int(got.Red()), 1)
	assert.InDelta(t, int(c.Green()), int(got.Green()), 1)
	assert.InDelta(t, int(c.Blue()), int(got.Blue()), 1)
	assert.Equal(t, uint8(0x40), Harmonize(c.WithAlpha(0x40), 0xffff0000).Alpha())
}
