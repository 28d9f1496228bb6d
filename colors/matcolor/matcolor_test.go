// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"sync"
	"testing"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/cie"
	"cogentcore.org/materialtheme/colors/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// googleBlue is #4285f4
const googleBlue colors.ARGB = 0xff4285f4

func TestTones(t *testing.T) {
	tn := NewTones(270, 36)
	assert.Equal(t, colors.ARGB(0xff000000), tn.AbsTone(0))
	assert.Equal(t, colors.ARGB(0xffffffff), tn.AbsTone(100))
	for _, tone := range []int{10, 40, 50, 90} {
		c := tn.AbsTone(tone)
		assert.InDelta(t, float64(tone), float64(cie.LstarFromARGB(c)), 1, "tone %d", tone)
		assert.Equal(t, c, tn.AbsTone(tone))
	}
	assert.Equal(t, tn.AbsTone(50), tn.KeyColor())
	assert.Equal(t, float32(270), tn.Hue())
	assert.Equal(t, float32(36), tn.Chroma())
}

func TestTonesConcurrent(t *testing.T) {
	tn := TonesFromColor(googleBlue)
	want := NewTones(tn.Hue(), tn.Chroma()).AbsTone(40)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, tn.AbsTone(40))
		}()
	}
	wg.Wait()
}

func TestNewPalette(t *testing.T) {
	h := hct.FromARGB(googleBlue)
	p := NewPalette(googleBlue)
	assert.Equal(t, h.Hue, p.Primary.Hue())
	assert.Equal(t, max(48, h.Chroma), p.Primary.Chroma())
	assert.Equal(t, float32(16), p.Secondary.Chroma())
	assert.InDelta(t, h.Hue+60, p.Tertiary.Hue(), 0.001)
	assert.Equal(t, float32(24), p.Tertiary.Chroma())
	assert.Equal(t, float32(4), p.Neutral.Chroma())
	assert.Equal(t, float32(8), p.NeutralVariant.Chroma())
	assert.Equal(t, float32(25), p.Error.Hue())
	assert.Equal(t, float32(84), p.Error.Chroma())

	grey := NewPalette(0xff808080)
	assert.Equal(t, float32(48), grey.Primary.Chroma())

	assert.Len(t, p.Tones(), len(PaletteKeys))
}

func TestNewContentPalette(t *testing.T) {
	h := hct.FromARGB(googleBlue)
	p := NewContentPalette(googleBlue)
	assert.Equal(t, h.Chroma, p.Primary.Chroma())
	assert.InDelta(t, h.Chroma/3, p.Secondary.Chroma(), 0.001)
	assert.InDelta(t, h.Chroma/2, p.Tertiary.Chroma(), 0.001)
	assert.Equal(t, float32(4), p.Neutral.Chroma())
	assert.Equal(t, float32(8), p.NeutralVariant.Chroma())
}

func TestAccent(t *testing.T) {
	tn := TonesFromColor(0xff1b998b)
	l := NewAccentLight(tn)
	assert.Equal(t, tn.AbsTone(40), l.Base)
	assert.Equal(t, tn.AbsTone(100), l.On)
	assert.Equal(t, tn.AbsTone(90), l.Container)
	assert.Equal(t, tn.AbsTone(10), l.OnContainer)

	d := NewAccentDark(tn)
	assert.Equal(t, tn.AbsTone(80), d.Base)
	assert.Equal(t, tn.AbsTone(20), d.On)
	assert.Equal(t, tn.AbsTone(30), d.Container)
	assert.Equal(t, tn.AbsTone(90), d.OnContainer)
}

func TestSchemeRoles(t *testing.T) {
	p := NewPalette(googleBlue)
	light := NewLightSchemeFromPalette(p)
	dark := NewDarkSchemeFromPalette(p)

	roles := light.Roles()
	require.Len(t, roles, 29)
	for i, r := range roles {
		assert.Equal(t, RoleNames[i], r.Name)
	}
	assert.Equal(t, "primary", roles[0].Name)
	assert.Equal(t, "inversePrimary", roles[28].Name)

	v, ok := light.Role("onPrimaryContainer")
	assert.True(t, ok)
	assert.Equal(t, p.Primary.AbsTone(10), v)
	_, ok = light.Role("nope")
	assert.False(t, ok)

	assert.Equal(t, p.Neutral.AbsTone(99), light.Background)
	assert.Equal(t, p.NeutralVariant.AbsTone(50), light.Outline)
	assert.Equal(t, p.Primary.AbsTone(80), light.InversePrimary)
	assert.Equal(t, p.Neutral.AbsTone(10), dark.Surface)
	assert.Equal(t, p.NeutralVariant.AbsTone(60), dark.Outline)
	assert.Equal(t, p.Primary.AbsTone(40), dark.InversePrimary)
	assert.Equal(t, colors.ARGB(0xff000000), dark.Shadow)

	assert.NotEqual(t, light.Primary.Base, dark.Primary.Base)
}

func TestNewSchemes(t *testing.T) {
	s := NewSchemesFromSeed(googleBlue)
	s2 := NewSchemesFromSeed(googleBlue)
	assert.NotSame(t, s.Light, s2.Light)
	assert.Equal(t, *s.Light, *s2.Light)
	assert.Same(t, s.Dark, s.Get(true))
	assert.Same(t, s.Light, s.Get(false))

	ps := NewSchemes(NewPalette(googleBlue))
	assert.Equal(t, *s.Dark, *ps.Dark)

	c := NewLightContentScheme(googleBlue)
	assert.Equal(t, NewContentPalette(googleBlue).Primary.AbsTone(40), c.Primary.Base)
	assert.NotNil(t, NewDarkContentScheme(googleBlue))
}
