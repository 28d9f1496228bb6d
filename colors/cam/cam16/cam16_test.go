// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"testing"

	"cogentcore.org/materialtheme/colors"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func expect(t *testing.T, ref, val float32) {
	t.Helper()
	if math32.Abs(ref-val) > 0.01 {
		t.Errorf("expected value: %g != %g\n", ref, val)
	}
}

func TestView(t *testing.T) {
	vw := NewStdView()
	expect(t, 11.725676537, vw.AdaptingLuminance)
	expect(t, 50.000000000, vw.BgLuminance)
	expect(t, 2.000000000, vw.Surround)
	expect(t, 0.184186503, vw.BgYToWhiteY)
	expect(t, 29.981000900, vw.AW)
	expect(t, 1.016919255, vw.NBB)
	expect(t, 1.016919255, vw.NCB)
	expect(t, 0.689999998, vw.C)
	expect(t, 1.000000000, vw.NC)
	expect(t, 0.388481468, vw.FL)
	expect(t, 0.789482653, vw.FLRoot)
	expect(t, 1.909169555, vw.Z)

	expect(t, 1.021177769, vw.RGBD[0])
	expect(t, 0.986307740, vw.RGBD[1])
	expect(t, 0.933960497, vw.RGBD[2])

	assert.Same(t, vw, NewStdView())

	nvw := *vw
	nvw.Surround = 0.5
	nvw.Update()
	expect(t, 0.55749995, nvw.C)
	expect(t, 0.689999998, NewStdView().C)
}

func TestCAM(t *testing.T) {
	camw := FromSRGB(1, 1, 1)
	expect(t, 209.492, camw.Hue)
	expect(t, 2.869, camw.Chroma)
	expect(t, 100, camw.Lightness)
	expect(t, 2.265, camw.Colorfulness)
	expect(t, 12.068, camw.Saturation)
	expect(t, 155.521, camw.Brightness)

	camr := FromSRGB(1, 0, 0)
	expect(t, 27.408, camr.Hue)
	expect(t, 113.354, camr.Chroma)
	expect(t, 46.445, camr.Lightness)
	expect(t, 89.490, camr.Colorfulness)
	expect(t, 91.889, camr.Saturation)
	expect(t, 105.988, camr.Brightness)

	camg := FromARGB(0xff00ff00)
	expect(t, 142.139, camg.Hue)
	expect(t, 108.406, camg.Chroma)
	expect(t, 79.331, camg.Lightness)

	camb := FromARGB(0xff0000ff)
	expect(t, 282.788, camb.Hue)
	expect(t, 87.227, camb.Chroma)
	expect(t, 25.465, camb.Lightness)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []colors.ARGB{0xffff0000, 0xff00ff00, 0xff0000ff, 0xff6750a4, 0xff808080, 0xffffffff} {
		cam := FromARGB(c)
		assert.Equal(t, c, cam.ARGB(), c.String())

		jch := FromJCH(cam.Lightness, cam.Chroma, cam.Hue)
		assert.Equal(t, c, jch.ARGB(), c.String())
	}
}

func TestDistance(t *testing.T) {
	red := FromARGB(0xffff0000)
	assert.Zero(t, red.Distance(red))
	near := FromARGB(0xfffe0101)
	blue := FromARGB(0xff0000ff)
	assert.Less(t, red.Distance(near), red.Distance(blue))
	assert.InDelta(t, red.Distance(blue), blue.Distance(red), 0.001)
}

func TestAngles(t *testing.T) {
	assert.Equal(t, float32(10), SanitizeDegrees(370))
	assert.Equal(t, float32(350), SanitizeDegrees(-10))
	assert.Equal(t, float32(0), SanitizeDegrees(360))
	assert.True(t, InCyclicOrder(0.1, 0.2, 0.3))
	assert.False(t, InCyclicOrder(0.3, 0.2, 0.1))
	assert.True(t, InCyclicOrder(6, 0.1, 0.5))
}
