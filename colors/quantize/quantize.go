// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quantize reduces the colors of an image to a small set of
// representative colors with populations, and ranks those colors
// by their suitability as the seed of a color theme.
package quantize

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/materialtheme/colors"
)

// Func is a quantizer: it reduces the given pixels to at most
// maxColors colors, returning the number of pixels represented
// by each resulting color.
type Func func(pixels []colors.ARGB, maxColors int) map[colors.ARGB]int

// Quantizers are the named quantizers available through [ByName].
var Quantizers = map[string]Func{
	"celebi": Celebi,
	"wu":     Wu,
	"kmeans": KMeans,
	"map":    func(pixels []colors.ARGB, maxColors int) map[colors.ARGB]int { return Map(pixels) },
}

// ByName returns the quantizer with the given (case insensitive) name.
func ByName(name string) (Func, error) {
	q, ok := Quantizers[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(Quantizers))
		for k := range Quantizers {
			names = append(names, k)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("quantize: unknown quantizer %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return q, nil
}

// sortedColors returns the keys of the given populations in increasing order,
// so that results do not depend on map iteration order.
func sortedColors(pops map[colors.ARGB]int) []colors.ARGB {
	cs := make([]colors.ARGB, 0, len(pops))
	for c := range pops {
		cs = append(cs, c)
	}
	slices.Sort(cs)
	return cs
}
