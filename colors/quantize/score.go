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
	"cogentcore.org/materialtheme/colors/cam/hct"
	"github.com/chewxy/math32"
)

const (
	// TargetChroma is the chroma that scores neither a bonus nor a penalty.
	TargetChroma = 48

	weightProportion  = 0.7
	weightChromaAbove = 0.3
	weightChromaBelow = 0.1

	// CutoffChroma is the chroma below which colors are filtered out.
	CutoffChroma = 5

	// CutoffExcitedProportion is the hue neighborhood proportion at or
	// below which colors are filtered out.
	CutoffExcitedProportion = 0.01
)

// DefaultFallback is the color returned by [Score] when no
// color qualifies: #4285f4 (Google Blue).
const DefaultFallback colors.ARGB = 0xff4285f4

// Options are the options for [Score].
type Options struct {

	// Desired is the maximum number of colors returned; 0 means 4.
	Desired int

	// Fallback is returned when no color qualifies; 0 means [DefaultFallback].
	Fallback colors.ARGB

	// Filter removes colors that are nearly grey or whose hue
	// is too rare in the image to represent it.
	Filter bool
}

// DefaultOptions returns the default [Options], with filtering on.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: DefaultFallback, Filter: true}
}

type scored struct {
	hct   hct.HCT
	score float32
}

// Score ranks the given colors by their suitability as theme seed
// colors, based on the proportion of the image taken by similar
// hues and on chroma. It returns at most opts.Desired colors whose
// hues are spread as far apart as possible, best first. It always
// returns at least one color, using opts.Fallback if needed.
func Score(populations map[colors.ARGB]int, opts Options) []colors.ARGB {
	if opts.Desired <= 0 {
		opts.Desired = 4
	}
	if opts.Fallback == 0 {
		opts.Fallback = DefaultFallback
	}

	var huePopulation [360]float32
	total := float32(0)
	cs := sortedColors(populations)
	hcts := make([]hct.HCT, len(cs))
	for i, c := range cs {
		h := hct.FromARGB(c)
		hcts[i] = h
		pop := float32(populations[c])
		huePopulation[hueIndex(math32.Floor(h.Hue))] += pop
		total += pop
	}

	var excited [360]float32
	if total > 0 {
		for hue := range 360 {
			prop := huePopulation[hue] / total
			for i := hue - 14; i < hue+16; i++ {
				excited[hueIndex(float32(i))] += prop
			}
		}
	}

	var all []scored
	for _, h := range hcts {
		prop := excited[hueIndex(math32.Floor(h.Hue+0.5))]
		if opts.Filter && (h.Chroma < CutoffChroma || prop <= CutoffExcitedProportion) {
			continue
		}
		weight := float32(weightChromaAbove)
		if h.Chroma < TargetChroma {
			weight = weightChromaBelow
		}
		s := prop*100*weightProportion + (h.Chroma-TargetChroma)*weight
		all = append(all, scored{hct: h, score: s})
	}
	slices.SortStableFunc(all, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	var chosen []hct.HCT
	for diff := 90; diff >= 15; diff-- {
		chosen = chosen[:0]
		for _, s := range all {
			dup := slices.ContainsFunc(chosen, func(c hct.HCT) bool {
				return hct.DifferenceDegrees(s.hct.Hue, c.Hue) < float32(diff)
			})
			if !dup {
				chosen = append(chosen, s.hct)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []colors.ARGB{opts.Fallback}
	}
	res := make([]colors.ARGB, len(chosen))
	for i, c := range chosen {
		res[i] = c.ARGB()
	}
	return res
}

// hueIndex returns the integer hue in [0, 360) for the given whole degrees.
func hueIndex(deg float32) int {
	h := int(deg) % 360
	if h < 0 {
		h += 360
	}
	return h
}
