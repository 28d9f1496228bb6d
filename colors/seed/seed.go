// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seed extracts the seed color of a color theme from an image.
package seed

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/materialtheme/base/iox/imagex"
	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/quantize"
)

// Extractor extracts a seed color from an image by downscaling it,
// quantizing its opaque pixels, and scoring the resulting colors.
type Extractor struct {

	// MaxDimension is the largest width or height the image is
	// downscaled to before quantization; 0 disables downscaling.
	MaxDimension int

	// MaxColors is the number of colors the image is quantized to.
	MaxColors int

	// Quantizer is the quantizer used; nil means [quantize.Celebi].
	Quantizer quantize.Func

	// Score are the options used to rank the quantized colors.
	Score quantize.Options
}

// NewExtractor returns a new [Extractor] with the default settings.
func NewExtractor() *Extractor {
	return &Extractor{
		MaxDimension: 128,
		MaxColors:    128,
		Quantizer:    quantize.Celebi,
		Score:        quantize.DefaultOptions(),
	}
}

// Default is the [Extractor] used by the package-level functions.
var Default = NewExtractor()

// Pixels returns the opaque pixels of the given image.
// Pixels that are not fully opaque are skipped.
func Pixels(img image.Image) []colors.ARGB {
	n := imagex.AsNRGBA(img)
	b := n.Bounds()
	pixels := make([]colors.ARGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := n.NRGBAAt(x, y)
			if c.A != 255 {
				continue
			}
			pixels = append(pixels, colors.FromRGB(c.R, c.G, c.B))
		}
	}
	return pixels
}

// FromImage returns the seed color of the given image. An image
// without any opaque pixels gives the fallback color of the scoring.
func (e *Extractor) FromImage(ctx context.Context, img image.Image) (colors.ARGB, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	img = imagex.Downscale(img, e.MaxDimension)
	pixels := Pixels(img)
	slog.Debug("collected pixels", "bounds", img.Bounds(), "opaque", len(pixels))

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	q := e.Quantizer
	if q == nil {
		q = quantize.Celebi
	}
	pops := q(pixels, max(1, e.MaxColors))
	slog.Debug("quantized image", "colors", len(pops))

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ranked := quantize.Score(pops, e.Score)
	slog.Debug("scored colors", "seed", ranked[0], "candidates", len(ranked))
	return ranked[0], nil
}

// FromBytes decodes the given encoded image and returns its seed color.
func (e *Extractor) FromBytes(ctx context.Context, data []byte) (colors.ARGB, error) {
	img, _, err := imagex.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return e.FromImage(ctx, img)
}

// FromReference loads the image at the given file path or URL
// and returns its seed color.
func (e *Extractor) FromReference(ctx context.Context, ref string) (colors.ARGB, error) {
	data, err := imagex.Fetch(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("seed: loading %q: %w", ref, err)
	}
	return e.FromBytes(ctx, data)
}

// FromImage returns the seed color of the given image using [Default].
func FromImage(ctx context.Context, img image.Image) (colors.ARGB, error) {
	return Default.FromImage(ctx, img)
}

// FromBytes returns the seed color of the given encoded image using [Default].
func FromBytes(ctx context.Context, data []byte) (colors.ARGB, error) {
	return Default.FromBytes(ctx, data)
}

// FromReference returns the seed color of the image at the given
// file path or URL using [Default].
func FromReference(ctx context.Context, ref string) (colors.ARGB, error) {
	return Default.FromReference(ctx, ref)
}
