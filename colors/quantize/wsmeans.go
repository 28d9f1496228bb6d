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
	"slices"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/cie"
	"github.com/chewxy/math32"
)

const (
	// wsmeansMaxIterations is the maximum number of k-means iterations
	wsmeansMaxIterations = 10

	// wsmeansMinMovement is the L*a*b* distance that a point must
	// move by to count as having changed clusters
	wsmeansMinMovement = 3.0
)

// lab is a color in the L*a*b* color space.
type lab [3]float32

func labFromARGB(c colors.ARGB) lab {
	l, a, b := cie.LABFromARGB(c)
	return lab{l, a, b}
}

func (p lab) ARGB() colors.ARGB {
	return cie.ARGBFromLAB(p[0], p[1], p[2])
}

// distance returns the squared L*a*b* distance between two points.
func (p lab) distance(o lab) float32 {
	dl := p[0] - o[0]
	da := p[1] - o[1]
	db := p[2] - o[2]
	return dl*dl + da*da + db*db
}

type clusterDistance struct {
	index    int
	distance float32
}

// WSMeans quantizes pixels with weighted spherical k-means in the L*a*b*
// color space, where the weight of each distinct color is its pixel count.
// The starting clusters are used as the initial centroids; when none are
// given, they are spread over the distinct colors of the input.
// The result is deterministic.
func WSMeans(pixels []colors.ARGB, starting []colors.ARGB, maxColors int) map[colors.ARGB]int {
	res := map[colors.ARGB]int{}
	if maxColors <= 0 || len(pixels) == 0 {
		return res
	}

	counts := Map(pixels)
	distinct := sortedColors(counts)
	points := make([]lab, len(distinct))
	weights := make([]int, len(distinct))
	for i, c := range distinct {
		points[i] = labFromARGB(c)
		weights[i] = counts[c]
	}

	k := min(maxColors, len(points))
	if len(starting) > 0 {
		k = min(k, len(starting))
	}
	clusters := make([]lab, 0, k)
	for _, c := range starting[:min(len(starting), k)] {
		clusters = append(clusters, labFromARGB(c))
	}
	if need := k - len(clusters); need > 0 {
		step := len(points) / need
		for i := range need {
			clusters = append(clusters, points[i*step])
		}
	}

	assign := make([]int, len(points))
	for i, p := range points {
		best := p.distance(clusters[0])
		for j := 1; j < k; j++ {
			if d := p.distance(clusters[j]); d < best {
				best = d
				assign[i] = j
			}
		}
	}

	neighbors := make([][]clusterDistance, k)
	for i := range neighbors {
		neighbors[i] = make([]clusterDistance, k)
	}
	sums := make([]int, k)

	for iter := range wsmeansMaxIterations {
		for i := range k {
			for j := range k {
				neighbors[i][j] = clusterDistance{index: j, distance: clusters[i].distance(clusters[j])}
			}
			slices.SortFunc(neighbors[i], func(a, b clusterDistance) int {
				switch {
				case a.distance < b.distance:
					return -1
				case a.distance > b.distance:
					return 1
				}
				return a.index - b.index
			})
		}

		moved := 0
		for i, p := range points {
			prev := assign[i]
			prevDist := p.distance(clusters[prev])
			minDist := prevDist
			next := -1
			for _, n := range neighbors[prev] {
				// clusters at least twice as far from the current
				// centroid as the point cannot be closer to it
				if n.distance >= 4*prevDist {
					break
				}
				if d := p.distance(clusters[n.index]); d < minDist {
					minDist = d
					next = n.index
				}
			}
			if next != -1 {
				if math32.Abs(math32.Sqrt(minDist)-math32.Sqrt(prevDist)) > wsmeansMinMovement {
					moved++
					assign[i] = next
				}
			}
		}
		if moved == 0 && iter != 0 {
			break
		}

		compSums := make([]lab, k)
		clear(sums)
		for i, p := range points {
			ci := assign[i]
			w := float32(weights[i])
			sums[ci] += weights[i]
			compSums[ci][0] += p[0] * w
			compSums[ci][1] += p[1] * w
			compSums[ci][2] += p[2] * w
		}
		for i := range k {
			if sums[i] == 0 {
				clusters[i] = lab{}
				continue
			}
			n := float32(sums[i])
			clusters[i] = lab{compSums[i][0] / n, compSums[i][1] / n, compSums[i][2] / n}
		}
	}

	// the final populations follow the final assignment
	clear(sums)
	for i := range points {
		sums[assign[i]] += weights[i]
	}
	for i := range k {
		if sums[i] == 0 {
			continue
		}
		c := clusters[i].ARGB()
		if _, ok := res[c]; ok {
			continue
		}
		res[c] = sums[i]
	}
	return res
}
