// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"sync"

	"cogentcore.org/materialtheme/colors/cam/cie"
	"github.com/chewxy/math32"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
type View struct {

	// white point illumination, typically [cie.WhiteD65]
	WhitePoint [3]float32

	// the ambient light strength in lux
	Luminance float32 `default:"200"`

	// the average L* lightness of 10 degrees around the color in question
	BgLuminance float32 `default:"50"`

	// the brightness of the entire environment
	Surround float32 `default:"2"`

	// whether the person's eyes have adapted to the lighting
	Adapted bool `default:"false"`

	// computed from Luminance
	AdaptingLuminance float32 `display:"-"`

	// ratio of the background Y to the white point Y
	BgYToWhiteY float32 `display:"-"`

	// achromatic response to the white point
	AW float32 `display:"-"`

	// luminance level induction factor
	NBB float32 `display:"-"`

	// luminance level induction factor
	NCB float32 `display:"-"`

	// exponential nonlinearity
	C float32 `display:"-"`

	// chromatic induction factor
	NC float32 `display:"-"`

	// luminance-level adaptation factor, based on the HuntLiLuo03 equations
	FL float32 `display:"-"`

	// FL to the 1/4 power
	FLRoot float32 `display:"-"`

	// base exponential nonlinearity
	Z float32 `display:"-"`

	// cone responses to white point, adjusted for discounting
	RGBD [3]float32 `display:"-"`
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint [3]float32, lum, bgLum, surround float32, adapt bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw
}

var stdView = sync.OnceValue(func() *View {
	return NewView(cie.WhiteD65, 200, 50, 2, false)
})

// NewStdView returns the standard viewing conditions model.
// It is computed once and shared; it must not be modified.
func NewStdView() *View {
	return stdView()
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math32.Pi) * (cie.LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	vw.BgLuminance = max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	vw.Surround = min(max(vw.Surround, 0), 2)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}
	// Calculate degree of adaptation to illuminant
	d := float32(1)
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math32.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = min(max(d, 0), 1)

	vw.NC = f

	// Cone responses to the white point, adjusted for discounting.
	// 100 is used instead of the Y of the white point (Fairchild).
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math32.Pow(5*vw.AdaptingLuminance, 1.0/3.0))
	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	n := cie.LToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math32.Sqrt(n)

	vw.NBB = 0.725 / math32.Pow(n, 0.2)
	vw.NCB = vw.NBB

	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

func lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}
