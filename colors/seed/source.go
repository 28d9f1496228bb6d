// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"context"
	"image"

	"cogentcore.org/materialtheme/colors"
)

// Source is an image that a seed color can be extracted from.
type Source interface {

	// Seed extracts the seed color. It blocks until the image
	// is loaded and analyzed or the context is done.
	Seed(ctx context.Context) (colors.ARGB, error)
}

// Bytes is a [Source] of encoded image data.
type Bytes []byte

// Seed implements [Source] using [FromBytes].
func (b Bytes) Seed(ctx context.Context) (colors.ARGB, error) {
	return FromBytes(ctx, b)
}

// Reference is a [Source] referring to an image by file path or URL.
type Reference string

// Seed implements [Source] using [FromReference].
func (r Reference) Seed(ctx context.Context) (colors.ARGB, error) {
	return FromReference(ctx, string(r))
}

// Image is a [Source] of an already decoded image.
type Image struct {
	image.Image
}

// Seed implements [Source] using [FromImage].
func (i Image) Seed(ctx context.Context) (colors.ARGB, error) {
	return FromImage(ctx, i.Image)
}

// Color is a [Source] that is already a color.
type Color colors.ARGB

// Seed implements [Source] by returning the color.
func (c Color) Seed(ctx context.Context) (colors.ARGB, error) {
	return colors.ARGB(c), nil
}

// SourceFunc is a function that is a [Source].
type SourceFunc func(ctx context.Context) (colors.ARGB, error)

// Seed implements [Source] by calling the function.
func (f SourceFunc) Seed(ctx context.Context) (colors.ARGB, error) {
	return f(ctx)
}

// Reference returns a [Source] for the image at the given file
// path or URL that uses this extractor.
func (e *Extractor) Reference(ref string) Source {
	return SourceFunc(func(ctx context.Context) (colors.ARGB, error) {
		return e.FromReference(ctx, ref)
	})
}
