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

package quantize

import (
	"math"

	"cogentcore.org/materialtheme/colors"
)

const (
	// wuIndexBits is the number of bits of each channel kept in the histogram
	wuIndexBits = 5

	// wuMaxIndex is the largest histogram index along one axis
	wuMaxIndex = 1 << wuIndexBits

	// wuSideLength is the number of cells along one axis, including the zero border
	wuSideLength = wuMaxIndex + 1

	wuTotalSize = wuSideLength * wuSideLength * wuSideLength
)

type wuAxis int

const (
	wuRed wuAxis = iota
	wuGreen
	wuBlue
)

// wuBox is a box in the histogram; the lower bounds are exclusive
// and the upper bounds inclusive.
type wuBox struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// wu holds the cumulative moments of a color histogram.
type wu struct {
	weights  []float64
	momentsR []float64
	momentsG []float64
	momentsB []float64
	moments  []float64
	cubes    []wuBox
}

// Wu quantizes pixels with Xiaolin Wu's greedy orthogonal bipartitioning
// of the RGB color cube, which minimizes the variance of each box. It
// is fast and deterministic, and is the first stage of [Celebi].
// The population of each color is the number of pixels in its box.
func Wu(pixels []colors.ARGB, maxColors int) map[colors.ARGB]int {
	if maxColors <= 0 || len(pixels) == 0 {
		return map[colors.ARGB]int{}
	}
	q := &wu{}
	q.histogram(Map(pixels))
	q.computeMoments()
	n := q.createBoxes(maxColors)
	return q.results(n)
}

func wuIndex(r, g, b int) int {
	return (r << (wuIndexBits * 2)) + (r << (wuIndexBits + 1)) + r + (g << wuIndexBits) + g + b
}

func (q *wu) histogram(counts map[colors.ARGB]int) {
	q.weights = make([]float64, wuTotalSize)
	q.momentsR = make([]float64, wuTotalSize)
	q.momentsG = make([]float64, wuTotalSize)
	q.momentsB = make([]float64, wuTotalSize)
	q.moments = make([]float64, wuTotalSize)

	const shift = 8 - wuIndexBits
	for c, count := range counts {
		r, g, b := int(c.Red()), int(c.Green()), int(c.Blue())
		idx := wuIndex((r>>shift)+1, (g>>shift)+1, (b>>shift)+1)
		n := float64(count)
		q.weights[idx] += n
		q.momentsR[idx] += n * float64(r)
		q.momentsG[idx] += n * float64(g)
		q.momentsB[idx] += n * float64(b)
		q.moments[idx] += n * float64(r*r+g*g+b*b)
	}
}

// computeMoments converts the histogram into cumulative sums so that
// the moment of any box can be computed from its eight corners.
func (q *wu) computeMoments() {
	var area, areaR, areaG, areaB, area2 [wuSideLength]float64
	for r := 1; r < wuSideLength; r++ {
		clear(area[:])
		clear(areaR[:])
		clear(areaG[:])
		clear(areaB[:])
		clear(area2[:])
		for g := 1; g < wuSideLength; g++ {
			var line, lineR, lineG, lineB, line2 float64
			for b := 1; b < wuSideLength; b++ {
				idx := wuIndex(r, g, b)
				line += q.weights[idx]
				lineR += q.momentsR[idx]
				lineG += q.momentsG[idx]
				lineB += q.momentsB[idx]
				line2 += q.moments[idx]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				q.weights[idx] = q.weights[prev] + area[b]
				q.momentsR[idx] = q.momentsR[prev] + areaR[b]
				q.momentsG[idx] = q.momentsG[prev] + areaG[b]
				q.momentsB[idx] = q.momentsB[prev] + areaB[b]
				q.moments[idx] = q.moments[prev] + area2[b]
			}
		}
	}
}

// createBoxes splits the color cube into at most maxColors boxes,
// always splitting the box with the largest variance, and returns
// the number of boxes created.
func (q *wu) createBoxes(maxColors int) int {
	q.cubes = make([]wuBox, maxColors)
	q.cubes[0] = wuBox{r1: wuMaxIndex, g1: wuMaxIndex, b1: wuMaxIndex}
	variance := make([]float64, maxColors)

	n := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if q.cut(&q.cubes[next], &q.cubes[i]) {
			variance[next] = 0
			if q.cubes[next].vol > 1 {
				variance[next] = q.variance(&q.cubes[next])
			}
			variance[i] = 0
			if q.cubes[i].vol > 1 {
				variance[i] = q.variance(&q.cubes[i])
			}
		} else {
			variance[next] = 0
			i--
		}

		next = 0
		temp := variance[0]
		for j := 1; j <= i; j++ {
			if variance[j] > temp {
				temp = variance[j]
				next = j
			}
		}
		if temp <= 0 {
			n = i + 1
			break
		}
	}
	return n
}

func (q *wu) results(n int) map[colors.ARGB]int {
	res := map[colors.ARGB]int{}
	for i := range n {
		cube := &q.cubes[i]
		weight := q.volume(cube, q.weights)
		if weight <= 0 {
			continue
		}
		r := uint8(math.Round(q.volume(cube, q.momentsR) / weight))
		g := uint8(math.Round(q.volume(cube, q.momentsG) / weight))
		b := uint8(math.Round(q.volume(cube, q.momentsB) / weight))
		res[colors.FromRGB(r, g, b)] += int(math.Round(weight))
	}
	return res
}

func (q *wu) variance(cube *wuBox) float64 {
	dr := q.volume(cube, q.momentsR)
	dg := q.volume(cube, q.momentsG)
	db := q.volume(cube, q.momentsB)
	xx := q.volume(cube, q.moments)
	hyp := dr*dr + dg*dg + db*db
	return xx - hyp/q.volume(cube, q.weights)
}

func (q *wu) cut(one, two *wuBox) bool {
	wholeR := q.volume(one, q.momentsR)
	wholeG := q.volume(one, q.momentsG)
	wholeB := q.volume(one, q.momentsB)
	wholeW := q.volume(one, q.weights)

	cutR, maxR := q.maximize(one, wuRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	cutG, maxG := q.maximize(one, wuGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	cutB, maxB := q.maximize(one, wuBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir wuAxis
	switch {
	case maxR >= maxG && maxR >= maxB:
		if cutR < 0 {
			return false
		}
		dir = wuRed
	case maxG >= maxR && maxG >= maxB:
		dir = wuGreen
	default:
		dir = wuBlue
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case wuRed:
		one.r1 = cutR
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case wuGreen:
		one.g1 = cutG
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case wuBlue:
		one.b1 = cutB
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}
	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

// maximize finds the position along the given axis at which splitting
// the cube gives the largest between-box variance, or -1 if none does.
func (q *wu) maximize(cube *wuBox, dir wuAxis, first, last int, wholeR, wholeG, wholeB, wholeW float64) (int, float64) {
	bottomR := q.bottom(cube, dir, q.momentsR)
	bottomG := q.bottom(cube, dir, q.momentsG)
	bottomB := q.bottom(cube, dir, q.momentsB)
	bottomW := q.bottom(cube, dir, q.weights)

	best := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + q.top(cube, dir, i, q.momentsR)
		halfG := bottomG + q.top(cube, dir, i, q.momentsG)
		halfB := bottomB + q.top(cube, dir, i, q.momentsB)
		halfW := bottomW + q.top(cube, dir, i, q.weights)
		if halfW == 0 {
			continue
		}
		temp := (halfR*halfR + halfG*halfG + halfB*halfB) / halfW

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += (halfR*halfR + halfG*halfG + halfB*halfB) / halfW

		if temp > best {
			best = temp
			cut = i
		}
	}
	return cut, best
}

func (q *wu) volume(c *wuBox, m []float64) float64 {
	return m[wuIndex(c.r1, c.g1, c.b1)] -
		m[wuIndex(c.r1, c.g1, c.b0)] -
		m[wuIndex(c.r1, c.g0, c.b1)] +
		m[wuIndex(c.r1, c.g0, c.b0)] -
		m[wuIndex(c.r0, c.g1, c.b1)] +
		m[wuIndex(c.r0, c.g1, c.b0)] +
		m[wuIndex(c.r0, c.g0, c.b1)] -
		m[wuIndex(c.r0, c.g0, c.b0)]
}

func (q *wu) bottom(c *wuBox, dir wuAxis, m []float64) float64 {
	switch dir {
	case wuRed:
		return -m[wuIndex(c.r0, c.g1, c.b1)] +
			m[wuIndex(c.r0, c.g1, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	case wuGreen:
		return -m[wuIndex(c.r1, c.g0, c.b1)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	default:
		return -m[wuIndex(c.r1, c.g1, c.b0)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g1, c.b0)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	}
}

func (q *wu) top(c *wuBox, dir wuAxis, pos int, m []float64) float64 {
	switch dir {
	case wuRed:
		return m[wuIndex(pos, c.g1, c.b1)] -
			m[wuIndex(pos, c.g1, c.b0)] -
			m[wuIndex(pos, c.g0, c.b1)] +
			m[wuIndex(pos, c.g0, c.b0)]
	case wuGreen:
		return m[wuIndex(c.r1, pos, c.b1)] -
			m[wuIndex(c.r1, pos, c.b0)] -
			m[wuIndex(c.r0, pos, c.b1)] +
			m[wuIndex(c.r0, pos, c.b0)]
	default:
		return m[wuIndex(c.r1, c.g1, pos)] -
			m[wuIndex(c.r1, c.g0, pos)] -
			m[wuIndex(c.r0, c.g1, pos)] +
			m[wuIndex(c.r0, c.g0, pos)]
	}
}
