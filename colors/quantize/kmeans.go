// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"log/slog"

	"cogentcore.org/materialtheme/colors"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeans quantizes pixels with plain k-means clustering in the L*a*b*
// color space. Unlike [Celebi], the initial centroids are random, so
// results can differ between runs. If there are fewer distinct colors
// than maxColors, the distinct colors are returned as they are.
func KMeans(pixels []colors.ARGB, maxColors int) map[colors.ARGB]int {
	counts := Map(pixels)
	if maxColors <= 0 {
		return map[colors.ARGB]int{}
	}
	if len(counts) <= maxColors {
		return counts
	}

	obs := make(clusters.Observations, len(pixels))
	for i, p := range pixels {
		l := labFromARGB(p)
		obs[i] = clusters.Coordinates{float64(l[0]), float64(l[1]), float64(l[2])}
	}
	cs, err := kmeans.New().Partition(obs, maxColors)
	if err != nil {
		slog.Debug("kmeans quantization failed, using wu", "err", err)
		return Wu(pixels, maxColors)
	}

	res := map[colors.ARGB]int{}
	for _, c := range cs {
		if len(c.Observations) == 0 {
			continue
		}
		ctr := lab{float32(c.Center[0]), float32(c.Center[1]), float32(c.Center[2])}
		res[ctr.ARGB()] += len(c.Observations)
	}
	return res
}
