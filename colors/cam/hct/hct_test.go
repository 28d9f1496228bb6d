// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
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

func expectTol(t *testing.T, ref, val, tol float32, str string) {
	t.Helper()
	if math32.Abs(ref-val) > tol {
		t.Errorf("expected value: %g != %g with tolerance: %g for %s\n", ref, val, tol, str)
	}
}

func TestHCT(t *testing.T) {
	h := FromARGB(0xffffffff)
	expect(t, 209.492, h.Hue)
	expect(t, 2.869, h.Chroma)
	expect(t, 100, h.Tone)

	h = FromColor(color.RGBA{255, 0, 0, 255})
	expect(t, 27.408, h.Hue)
	expect(t, 113.354, h.Chroma)
	expect(t, 53.233, h.Tone)
	assert.Equal(t, colors.ARGB(0xffff0000), h.ARGB())

	h = New(120, 60, 50)
	expectTol(t, 120, h.Hue, 1, h.String())
	expectTol(t, 50, h.Tone, 0.5, h.String())
	assert.LessOrEqual(t, h.Chroma, float32(62))
}

func TestHCTAll(t *testing.T) {
	hues := []float32{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float32{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 {
					expectTol(t, hue, h.Hue, 4.0, hs)
				}
				if h.Chroma > chroma+2.5 {
					t.Errorf("expected chroma value: %g != %g with tolerance: %g for h: %s\n", chroma, h.Chroma, 2.5, hs)
				}
				expectTol(t, tone, h.Tone, 0.5, hs)
			}
		}
	}
}

func TestSolveEdges(t *testing.T) {
	assert.Equal(t, colors.ARGB(0xff000000), SolveToARGB(120, 40, 0))
	assert.Equal(t, colors.ARGB(0xffffffff), SolveToARGB(120, 40, 100))
	grey := SolveToARGB(300, 0, 50)
	assert.Equal(t, grey.Red(), grey.Green())
	assert.Equal(t, grey.Green(), grey.Blue())
}

func TestWith(t *testing.T) {
	h := FromARGB(0xff6750a4)
	l := h.WithTone(90)
	expectTol(t, 90, l.Tone, 0.5, l.String())
	expectTol(t, h.Hue, l.Hue, 2, l.String())

	s := FromARGB(0x806750a4).WithHue(h.Hue + 60)
	assert.Equal(t, uint8(0x80), s.ARGB().Alpha())
	expectTol(t, h.Hue+60, s.Hue, 2, s.String())

	d := h.WithChroma(0)
	assert.Less(t, d.Chroma, float32(2))
}

func BenchmarkHCT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 45, 56)
	}
}
