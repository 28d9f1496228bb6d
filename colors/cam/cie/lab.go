// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"cogentcore.org/materialtheme/colors"
	"github.com/chewxy/math32"
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress is the compressive nonlinearity of the L*a*b*
// transform (often called f(t)).
func LABCompress(t float32) float32 {
	if t > labEpsilon {
		return math32.Pow(t, 1.0/3.0)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts 0-1 XYZ coordinates to L*a*b*,
// relative to the D65 white point.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / (WhiteD65[0] / 100))
	fy := LABCompress(y / (WhiteD65[1] / 100))
	fz := LABCompress(z / (WhiteD65[2] / 100))
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* to 0-1 XYZ coordinates,
// relative to the D65 white point.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0] / 100
	y = LABUncompress(fy) * WhiteD65[1] / 100
	z = LABUncompress(fz) * WhiteD65[2] / 100
	return
}

// LToY converts an L* lightness (0-100) to a 0-100 Y luminance.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a 0-100 Y luminance to an L* lightness (0-100).
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}

// LABFromARGB returns the L*a*b* coordinates of the given color.
func LABFromARGB(c colors.ARGB) (l, a, b float32) {
	x, y, z := XYZFromARGB(c)
	return XYZToLAB(x/100, y/100, z/100)
}

// ARGBFromLAB returns the opaque color for the given L*a*b*
// coordinates, clamping to the sRGB gamut.
func ARGBFromLAB(l, a, b float32) colors.ARGB {
	x, y, z := LABToXYZ(l, a, b)
	return ARGBFromXYZ(100*x, 100*y, 100*z)
}

// LstarFromARGB returns the L* lightness of the given color,
// which is the HCT tone.
func LstarFromARGB(c colors.ARGB) float32 {
	_, y, _ := XYZFromARGB(c)
	return YToL(y)
}

// ARGBFromLstar returns the grey color with the given L* lightness.
func ARGBFromLstar(l float32) colors.ARGB {
	comp := Delinearize100(LToY(l))
	return colors.FromRGB(comp, comp, comp)
}
