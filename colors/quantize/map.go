// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import "cogentcore.org/materialtheme/colors"

// Map counts the number of times each distinct color occurs in pixels.
// It does not reduce the number of colors.
func Map(pixels []colors.ARGB) map[colors.ARGB]int {
	counts := map[colors.ARGB]int{}
	for _, p := range pixels {
		counts[p]++
	}
	return counts
}
