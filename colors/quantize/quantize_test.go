// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"testing"

	"cogentcore.org/materialtheme/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red   colors.ARGB = 0xffff0000
	green colors.ARGB = 0xff00ff00
	blue  colors.ARGB = 0xff0000ff
)

func repeat(n int, cs ...colors.ARGB) []colors.ARGB {
	var res []colors.ARGB
	for _, c := range cs {
		for range n {
			res = append(res, c)
		}
	}
	return res
}

func total(pops map[colors.ARGB]int) int {
	n := 0
	for _, p := range pops {
		n += p
	}
	return n
}

func near(a, b colors.ARGB) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.Red(), b.Red()) <= 1 && d(a.Green(), b.Green()) <= 1 && d(a.Blue(), b.Blue()) <= 1
}

func TestMap(t *testing.T) {
	pops := Map(repeat(3, red, green, red))
	assert.Equal(t, map[colors.ARGB]int{red: 6, green: 3}, pops)
	assert.Empty(t, Map(nil))
}

func TestWu(t *testing.T) {
	pops := Wu(repeat(10, red, green, blue), 128)
	assert.Equal(t, map[colors.ARGB]int{red: 10, green: 10, blue: 10}, pops)

	one := Wu(repeat(5, red, blue), 1)
	require.Len(t, one, 1)
	assert.Equal(t, 10, total(one))
	for c := range one {
		assert.Equal(t, uint8(128), c.Red())
		assert.Equal(t, uint8(0), c.Green())
		assert.Equal(t, uint8(128), c.Blue())
	}

	assert.Empty(t, Wu(nil, 128))
	assert.Empty(t, Wu(repeat(2, red), 0))
}

func TestWSMeans(t *testing.T) {
	pixels := repeat(10, red, green, blue)
	pops := WSMeans(pixels, []colors.ARGB{red, green, blue}, 128)
	require.Len(t, pops, 3)
	assert.Equal(t, 30, total(pops))
	for c, n := range pops {
		assert.True(t, near(c, red) || near(c, green) || near(c, blue), c.String())
		assert.Equal(t, 10, n)
	}

	// without starting clusters
	pops = WSMeans(pixels, nil, 2)
	assert.Len(t, pops, 2)
	assert.Equal(t, 30, total(pops))
}

func TestCelebi(t *testing.T) {
	pixels := repeat(20, red, blue)
	pixels = append(pixels, repeat(5, green)...)
	pops := Celebi(pixels, 128)
	require.Len(t, pops, 3)
	assert.Equal(t, len(pixels), total(pops))

	again := Celebi(pixels, 128)
	assert.Equal(t, pops, again)
}

func TestKMeans(t *testing.T) {
	pixels := repeat(4, red, green)
	assert.Equal(t, map[colors.ARGB]int{red: 4, green: 4}, KMeans(pixels, 4))

	pixels = repeat(6, red, 0xfffe0101, blue, 0xff0101fe)
	pops := KMeans(pixels, 2)
	assert.LessOrEqual(t, len(pops), 2)
	assert.Equal(t, len(pixels), total(pops))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"celebi", "Wu", "KMEANS", "map"} {
		q, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, q(repeat(2, red), 8))
	}
	_, err := ByName("octree")
	assert.Error(t, err)
}
