// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import "cogentcore.org/materialtheme/colors"

// Celebi quantizes pixels by running [Wu] and then refining its
// colors with [WSMeans], seeded with the Wu colors.
func Celebi(pixels []colors.ARGB, maxColors int) map[colors.ARGB]int {
	wu := Wu(pixels, maxColors)
	return WSMeans(pixels, sortedColors(wu), maxColors)
}
