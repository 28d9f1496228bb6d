// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the packed ARGB color value used throughout
// the theme packages, along with hex conversion.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGB is a color packed into a 32 bit unsigned integer as
// 0xAARRGGBB. Every value is a valid color.
type ARGB uint32

// ErrInvalidHex is returned by [ParseHex] for strings that
// are not hex colors.
var ErrInvalidHex = errors.New("invalid hex color")

// FromRGBA returns the [ARGB] value for the given channels.
func FromRGBA(r, g, b, a uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGB returns the opaque [ARGB] value for the given channels.
func FromRGB(r, g, b uint8) ARGB {
	return FromRGBA(r, g, b, 255)
}

// FromColor converts the given standard [color.Color] to [ARGB],
// un-premultiplying the color channels by alpha.
func FromColor(c color.Color) ARGB {
	if c == nil {
		return 0
	}
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque returns whether the alpha channel is 255.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 255 }

// WithAlpha returns the color with the given alpha channel.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return FromRGBA(c.Red(), c.Green(), c.Blue(), a)
}

// AsNRGBA returns the color as a non-premultiplied [color.NRGBA].
func (c ARGB) AsNRGBA() color.NRGBA {
	return color.NRGBA{c.Red(), c.Green(), c.Blue(), c.Alpha()}
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (c ARGB) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.AsNRGBA()).(color.RGBA)
}

// RGBA implements the [color.Color] interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// String returns the color as a #rrggbb hex string, or
// #aarrggbb if it is not fully opaque.
func (c ARGB) String() string {
	if c.IsOpaque() {
		return HexFromARGB(c)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// MarshalText implements [encoding.TextMarshaler] using [ARGB.String].
func (c ARGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseHex].
func (c *ARGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// HexFromARGB returns the given color as a lowercase #rrggbb
// hex string. The alpha channel is dropped.
func HexFromARGB(c ARGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// ParseHex parses the given hex color string. The leading # is
// optional, and the #rgb, #rrggbb, and #aarrggbb forms are accepted.
// Colors without an alpha component are opaque.
func ParseHex(s string) (ARGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		a, err := parseHexByte(h[:2])
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrInvalidHex, s)
		}
		c, err := ParseHex(h[2:])
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrInvalidHex, s)
		}
		return c.WithAlpha(a), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidHex, s)
	}
	cf, err := colorful.Hex("#" + h)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
	}
	r, g, b := cf.RGB255()
	return FromRGB(r, g, b), nil
}

func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	return uint8(v), err
}
