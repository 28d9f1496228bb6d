// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"errors"
	"testing"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/hct"
	"cogentcore.org/materialtheme/colors/matcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const purple colors.ARGB = 0xff6750a4

func TestFromSeed(t *testing.T) {
	th := FromSeed(purple)
	require.NotNil(t, th.Schemes.Light)
	require.NotNil(t, th.Schemes.Dark)
	assert.Equal(t, purple, th.Seed)
	assert.NotNil(t, th.CustomColors)
	assert.Empty(t, th.CustomColors)

	for i, tn := range th.Palettes.Tones() {
		assert.NotNil(t, tn, PaletteKeys[i])
	}

	differs := false
	dark := th.Schemes.Dark.Roles()
	for i, r := range th.Schemes.Light.Roles() {
		if r.Value != dark[i].Value {
			differs = true
		}
	}
	assert.True(t, differs)

	p := matcolor.NewPalette(purple)
	assert.Equal(t, p.Primary.AbsTone(40), th.Schemes.Light.Primary.Base)
	assert.Equal(t, p.Primary.AbsTone(80), th.Schemes.Dark.Primary.Base)
	assert.Equal(t, p.Neutral.AbsTone(99), th.Schemes.Light.Background)
}

func TestFromSeedFresh(t *testing.T) {
	a := FromSeed(purple)
	b := FromSeed(purple)
	assert.NotSame(t, a.Schemes.Light, b.Schemes.Light)
	assert.NotSame(t, a.Schemes.Dark, b.Schemes.Dark)
	assert.Equal(t, *a.Schemes.Light, *b.Schemes.Light)
	assert.Equal(t, *a.Schemes.Dark, *b.Schemes.Dark)
}

func TestFromSeedAnyColor(t *testing.T) {
	for _, c := range []colors.ARGB{0, 0xff000000, 0xffffffff, 0x80ff0000, 0xff808080} {
		th := FromSeed(c)
		assert.Len(t, th.Schemes.Light.Roles(), 29)
		assert.Len(t, th.Schemes.Dark.Roles(), 29)
	}
}

func TestFromContentSeed(t *testing.T) {
	th := FromContentSeed(purple)
	p := matcolor.NewContentPalette(purple)
	assert.Equal(t, p.Primary.AbsTone(40), th.Schemes.Light.Primary.Base)
	assert.Equal(t, p.Secondary.Chroma(), th.Palettes.Secondary.Chroma())
}

func TestCustomColors(t *testing.T) {
	custom := []CustomColor{
		{Name: "brand", Value: 0xffff0000, Blend: true},
		{Name: "brand", Value: 0xff00ff00},
		{Name: "accent", Value: 0xff1b998b, Blend: true},
	}
	th := FromSeed(purple, custom...)
	require.Len(t, th.CustomColors, 3)
	for i, cc := range th.CustomColors {
		assert.Equal(t, custom[i], cc.Color)
	}
	assert.Equal(t, colors.ARGB(0xff00ff00), th.CustomColors[1].Value)
}

func TestCustomColorNoBlend(t *testing.T) {
	c := CustomColor{Name: "x", Value: 0xff00ff00}
	g := NewCustomColorGroup(purple, c)
	assert.Equal(t, c, g.Color)
	assert.Equal(t, c.Value, g.Value)
}

func TestCustomColorBlend(t *testing.T) {
	c := CustomColor{Name: "x", Value: 0xffff0000, Blend: true}
	g := NewCustomColorGroup(0xff0000ff, c)
	assert.Equal(t, colors.ARGB(0xffff0000), g.Color.Value)
	assert.NotEqual(t, c.Value, g.Value)

	seedHue := hct.FromARGB(0xff0000ff).Hue
	before := hct.DifferenceDegrees(hct.FromARGB(c.Value).Hue, seedHue)
	after := hct.DifferenceDegrees(hct.FromARGB(g.Value).Hue, seedHue)
	assert.Less(t, after, before)
}

func TestCustomColorTones(t *testing.T) {
	for _, blend := range []bool{false, true} {
		g := NewCustomColorGroup(purple, CustomColor{Name: "x", Value: 0xff1b998b, Blend: blend})
		tones := matcolor.NewPalette(g.Value).Primary
		assert.Equal(t, tones.AbsTone(40), g.Light.Base)
		assert.Equal(t, tones.AbsTone(100), g.Light.On)
		assert.Equal(t, tones.AbsTone(90), g.Light.Container)
		assert.Equal(t, tones.AbsTone(10), g.Light.OnContainer)
		assert.Equal(t, tones.AbsTone(80), g.Dark.Base)
		assert.Equal(t, tones.AbsTone(20), g.Dark.On)
		assert.Equal(t, tones.AbsTone(30), g.Dark.Container)
		assert.Equal(t, tones.AbsTone(90), g.Dark.OnContainer)
	}
}

type colorSource colors.ARGB

func (c colorSource) Seed(ctx context.Context) (colors.ARGB, error) {
	return colors.ARGB(c), nil
}

var errExtract = errors.New("extraction failed")

type failingSource struct{ calls *int }

func (f failingSource) Seed(ctx context.Context) (colors.ARGB, error) {
	*f.calls++
	return 0, errExtract
}

func TestFromImage(t *testing.T) {
	ctx := context.Background()
	th, err := FromImage(ctx, colorSource(purple), CustomColor{Name: "a", Value: 0xff00ff00})
	require.NoError(t, err)
	want := FromSeed(purple, CustomColor{Name: "a", Value: 0xff00ff00})
	assert.Equal(t, want.Seed, th.Seed)
	assert.Equal(t, *want.Schemes.Light, *th.Schemes.Light)
	assert.Equal(t, want.CustomColors, th.CustomColors)

	calls := 0
	_, err = FromImage(ctx, failingSource{&calls})
	assert.Equal(t, errExtract, err)
	assert.Equal(t, 1, calls)
}
