// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/materialtheme/colors"

// WhiteD65 is the standard D65 white point in 0-100 XYZ coordinates.
var WhiteD65 = [3]float32{95.047, 100, 108.883}

// SRGBLinToXYZ converts linear sRGB to XYZ. The scale of the
// output matches the scale of the input.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ to linear sRGB. The scale of the
// output matches the scale of the input.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	gl = -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	bl = 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z
	return
}

// SRGBToXYZ converts sRGB gamma-corrected 0-1 values to 0-1 XYZ.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// SRGBToXYZ100 converts sRGB gamma-corrected 0-1 values to 0-100 XYZ.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGB100ToLinear(r, g, b))
}

// XYZ100ToSRGB converts 0-100 XYZ to sRGB gamma-corrected 0-1 values.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return SRGBFromLinear100(XYZToSRGBLin(x, y, z))
}

// XYZFromARGB returns the 0-100 XYZ coordinates of the given color.
func XYZFromARGB(c colors.ARGB) (x, y, z float32) {
	return SRGBLinToXYZ(LinearFromARGB(c))
}

// ARGBFromXYZ returns the opaque color for the given 0-100 XYZ
// coordinates, clamping to the sRGB gamut.
func ARGBFromXYZ(x, y, z float32) colors.ARGB {
	return ARGBFromLinear100(XYZToSRGBLin(x, y, z))
}
