// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "github.com/chewxy/math32"

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT16 transform.
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LuminanceAdaptComp performs luminance adaptation
// based on the luminance adaptation factor and
// the discounted cone response of one component.
func LuminanceAdaptComp(v, d, fl float32) float32 {
	vd := v * d
	f := math32.Pow((fl*math32.Abs(vd))/100, 0.42)
	return signum(vd) * 400 * f / (f + 27.13)
}

// InverseAdaptComp is the inverse of [LuminanceAdaptComp]
// without the discounting factor.
func InverseAdaptComp(v, fl float32) float32 {
	va := math32.Abs(v)
	base := max(0, 27.13*va/(400-va))
	return signum(v) * (100 / fl) * math32.Pow(base, 1/0.42)
}

// LuminanceAdapt performs luminance adaptation on each
// of the LMS components using the given viewing conditions.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	lA = LuminanceAdaptComp(l, vw.RGBD[0], vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD[1], vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD[2], vw.FL)
	return
}

// LMSToOps converts the LMS cone responses to the opponent channels
// and the grey responses used by CAM16.
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA + -12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	grey = (40*lA + 20*mA + sA) / 20
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	return
}

// SanitizeDegrees returns the given angle in degrees
// wrapped into the range [0, 360).
func SanitizeDegrees(deg float32) float32 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// SanitizeRadians returns the given angle in radians
// wrapped into the range [0, 2π).
func SanitizeRadians(rad float32) float32 {
	for rad < 0 {
		rad += 2 * math32.Pi
	}
	for rad >= 2*math32.Pi {
		rad -= 2 * math32.Pi
	}
	return rad
}

// InCyclicOrder returns whether the given angles in radians are in
// cyclic order a < b < c, wrapping around the circle.
func InCyclicOrder(a, b, c float32) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}

func signum(v float32) float32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
