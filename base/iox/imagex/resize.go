// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// Downscale returns the image scaled down so that neither side exceeds
// maxDim, keeping the aspect ratio. The image is returned unchanged if
// it already fits or maxDim <= 0.
func Downscale(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return src
	}
	if w >= h {
		h = max(1, h*maxDim/w)
		w = maxDim
	} else {
		w = max(1, w*maxDim/h)
		h = maxDim
	}
	return transform.Resize(src, w, h, transform.Linear)
}

// AsNRGBA returns the image as an NRGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a copy.
func AsNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	img := image.NewNRGBA(b)
	draw.Draw(img, b, src, b.Min, draw.Src)
	return img
}
