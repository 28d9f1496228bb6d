// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex loads images from bytes, files and URLs,
// and prepares them for color analysis.
package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrNotImage is returned when data is not an image of a supported format.
var ErrNotImage = errors.New("imagex: not a supported image")

// Formats are the supported image decoding formats
type Formats int32

// The supported image formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int(f))
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Sniff returns the format of the given encoded image data,
// based on its magic numbers. It returns an error wrapping
// [ErrNotImage] if the data is not a supported image.
func Sniff(data []byte) (Formats, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return None, fmt.Errorf("%w: unknown file type", ErrNotImage)
	}
	if !filetype.IsImage(data) {
		return None, fmt.Errorf("%w: file type %s", ErrNotImage, kind.MIME.Value)
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return None, fmt.Errorf("%w: image type %s", ErrNotImage, kind.MIME.Value)
	}
	return f, nil
}

// Decode decodes the given encoded image data.
// The format is inferred from the data, and is returned
// using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Decode(data []byte) (image.Image, Formats, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, None, err
	}
	r := bytes.NewReader(data)
	var im image.Image
	switch f {
	case PNG:
		im, err = png.Decode(r)
	case JPEG:
		im, err = jpeg.Decode(r)
	case GIF:
		im, err = gif.Decode(r)
	case TIFF:
		im, err = tiff.Decode(r)
	case BMP:
		im, err = bmp.Decode(r)
	case WebP:
		im, err = webp.Decode(r)
	}
	if err != nil {
		return nil, f, fmt.Errorf("imagex: decoding %s: %w", f, err)
	}
	return im, f, nil
}

// Read reads and decodes an image from the given reader.
func Read(r io.Reader) (image.Image, Formats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, None, err
	}
	return Decode(data)
}

// Open opens an image from the given filename.
// The format is inferred automatically,
// and is returned using the Formats enum.
func Open(filename string) (image.Image, Formats, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, None, err
	}
	return Decode(data)
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("imagex.Write: format %q not valid", f)
	}
}
