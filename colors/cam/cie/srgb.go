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

// Package cie provides conversions between sRGB, linear RGB,
// CIE XYZ, and CIE L*a*b* color coordinates.
package cie

import (
	"cogentcore.org/materialtheme/colors"
	"github.com/chewxy/math32"
)

// SRGBToLinearComp converts an sRGB gamma-corrected 0-1 component
// into its linear 0-1 value.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear 0-1 component into its
// sRGB gamma-corrected 0-1 value.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math32.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma-corrected 0-1 values
// into linear 0-1 values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGB100ToLinear converts sRGB gamma-corrected 0-1 values
// into linear 0-100 values.
func SRGB100ToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl, gl, bl = SRGBToLinear(r, g, b)
	return 100 * rl, 100 * gl, 100 * bl
}

// SRGBFromLinear converts linear 0-1 values into
// sRGB gamma-corrected 0-1 values.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinear100 converts linear 0-100 values into
// sRGB gamma-corrected 0-1 values.
func SRGBFromLinear100(rl, gl, bl float32) (r, g, b float32) {
	return SRGBFromLinear(rl/100, gl/100, bl/100)
}

// Delinearize100 converts a linear 0-100 component into
// a rounded, clamped 0-255 sRGB channel value.
func Delinearize100(lin float32) uint8 {
	v := SRGBFromLinearComp(lin/100) * 255
	v = math32.Floor(v + 0.5)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Linearize100 converts a 0-255 sRGB channel value into
// its linear 0-100 value.
func Linearize100(c uint8) float32 {
	return 100 * SRGBToLinearComp(float32(c)/255)
}

// LinearFromARGB returns the linear 0-100 RGB components of
// the given color.
func LinearFromARGB(c colors.ARGB) (rl, gl, bl float32) {
	return Linearize100(c.Red()), Linearize100(c.Green()), Linearize100(c.Blue())
}

// ARGBFromLinear100 returns the opaque color for the given
// linear 0-100 RGB components, clamping to the sRGB gamut.
func ARGBFromLinear100(rl, gl, bl float32) colors.ARGB {
	return colors.FromRGB(Delinearize100(rl), Delinearize100(gl), Delinearize100(bl))
}
