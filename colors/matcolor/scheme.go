// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/materialtheme/colors"

// Scheme contains the colors for one Material Design 3 color scheme
// (ie: light or dark).
type Scheme struct {

	// Primary is the primary color applied to important elements
	Primary Accent

	// Secondary is the secondary color applied to less important elements
	Secondary Accent

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary Accent

	// Error is the error color applied to elements that indicate an error or danger
	Error Accent

	// Background is the color applied to the background of the app and other low-emphasis areas
	Background colors.ARGB

	// OnBackground is the color applied to content on top of Background
	OnBackground colors.ARGB

	// Surface is the color applied to contained areas, like the background of an app
	Surface colors.ARGB

	// OnSurface is the color applied to content on top of Surface elements
	OnSurface colors.ARGB

	// SurfaceVariant is the color applied to contained areas that contrast standard Surface elements
	SurfaceVariant colors.ARGB

	// OnSurfaceVariant is the color applied to content on top of SurfaceVariant elements
	OnSurfaceVariant colors.ARGB

	// Outline is the color applied to borders to create emphasized boundaries that need to have sufficient contrast
	Outline colors.ARGB

	// OutlineVariant is the color applied to create decorative boundaries
	OutlineVariant colors.ARGB

	// Shadow is the color applied to shadows
	Shadow colors.ARGB

	// Scrim is the color applied to scrims (semi-transparent overlays)
	Scrim colors.ARGB

	// InverseSurface is the color applied to elements to make them the reverse color of the surrounding elements and create a contrasting effect
	InverseSurface colors.ARGB

	// InverseOnSurface is the color applied to content on top of InverseSurface
	InverseOnSurface colors.ARGB

	// InversePrimary is the color applied to interactive elements on top of InverseSurface
	InversePrimary colors.ARGB
}

// Role is one named color role of a [Scheme].
type Role struct {
	Name  string
	Value colors.ARGB
}

// RoleNames are the names of the roles of a [Scheme] in enumeration order.
var RoleNames = []string{
	"primary", "onPrimary", "primaryContainer", "onPrimaryContainer",
	"secondary", "onSecondary", "secondaryContainer", "onSecondaryContainer",
	"tertiary", "onTertiary", "tertiaryContainer", "onTertiaryContainer",
	"error", "onError", "errorContainer", "onErrorContainer",
	"background", "onBackground", "surface", "onSurface",
	"surfaceVariant", "onSurfaceVariant", "outline", "outlineVariant",
	"shadow", "scrim", "inverseSurface", "inverseOnSurface", "inversePrimary",
}

// Roles returns all of the roles of the scheme in [RoleNames] order.
func (s *Scheme) Roles() []Role {
	values := []colors.ARGB{
		s.Primary.Base, s.Primary.On, s.Primary.Container, s.Primary.OnContainer,
		s.Secondary.Base, s.Secondary.On, s.Secondary.Container, s.Secondary.OnContainer,
		s.Tertiary.Base, s.Tertiary.On, s.Tertiary.Container, s.Tertiary.OnContainer,
		s.Error.Base, s.Error.On, s.Error.Container, s.Error.OnContainer,
		s.Background, s.OnBackground, s.Surface, s.OnSurface,
		s.SurfaceVariant, s.OnSurfaceVariant, s.Outline, s.OutlineVariant,
		s.Shadow, s.Scrim, s.InverseSurface, s.InverseOnSurface, s.InversePrimary,
	}
	roles := make([]Role, len(values))
	for i, v := range values {
		roles[i] = Role{Name: RoleNames[i], Value: v}
	}
	return roles
}

// Role returns the value of the role with the given name,
// and whether such a role exists.
func (s *Scheme) Role(name string) (colors.ARGB, bool) {
	for _, r := range s.Roles() {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}

// NewLightScheme returns a new light-themed [Scheme]
// based on the given seed color.
func NewLightScheme(seed colors.ARGB) *Scheme {
	return NewLightSchemeFromPalette(NewPalette(seed))
}

// NewDarkScheme returns a new dark-themed [Scheme]
// based on the given seed color.
func NewDarkScheme(seed colors.ARGB) *Scheme {
	return NewDarkSchemeFromPalette(NewPalette(seed))
}

// NewLightContentScheme returns a new light-themed [Scheme]
// based on the content palette of the given seed color.
func NewLightContentScheme(seed colors.ARGB) *Scheme {
	return NewLightSchemeFromPalette(NewContentPalette(seed))
}

// NewDarkContentScheme returns a new dark-themed [Scheme]
// based on the content palette of the given seed color.
func NewDarkContentScheme(seed colors.ARGB) *Scheme {
	return NewDarkSchemeFromPalette(NewContentPalette(seed))
}

// NewLightSchemeFromPalette returns a new light-themed [Scheme]
// based on the given [Palette].
func NewLightSchemeFromPalette(p *Palette) *Scheme {
	return &Scheme{
		Primary:   NewAccentLight(p.Primary),
		Secondary: NewAccentLight(p.Secondary),
		Tertiary:  NewAccentLight(p.Tertiary),
		Error:     NewAccentLight(p.Error),

		Background:   p.Neutral.AbsTone(99),
		OnBackground: p.Neutral.AbsTone(10),
		Surface:      p.Neutral.AbsTone(99),
		OnSurface:    p.Neutral.AbsTone(10),

		SurfaceVariant:   p.NeutralVariant.AbsTone(90),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(30),
		Outline:          p.NeutralVariant.AbsTone(50),
		OutlineVariant:   p.NeutralVariant.AbsTone(80),

		Shadow: p.Neutral.AbsTone(0),
		Scrim:  p.Neutral.AbsTone(0),

		InverseSurface:   p.Neutral.AbsTone(20),
		InverseOnSurface: p.Neutral.AbsTone(95),
		InversePrimary:   p.Primary.AbsTone(80),
	}
}

// NewDarkSchemeFromPalette returns a new dark-themed [Scheme]
// based on the given [Palette].
func NewDarkSchemeFromPalette(p *Palette) *Scheme {
	return &Scheme{
		Primary:   NewAccentDark(p.Primary),
		Secondary: NewAccentDark(p.Secondary),
		Tertiary:  NewAccentDark(p.Tertiary),
		Error:     NewAccentDark(p.Error),

		Background:   p.Neutral.AbsTone(10),
		OnBackground: p.Neutral.AbsTone(90),
		Surface:      p.Neutral.AbsTone(10),
		OnSurface:    p.Neutral.AbsTone(90),

		SurfaceVariant:   p.NeutralVariant.AbsTone(30),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(80),
		Outline:          p.NeutralVariant.AbsTone(60),
		OutlineVariant:   p.NeutralVariant.AbsTone(30),

		Shadow: p.Neutral.AbsTone(0),
		Scrim:  p.Neutral.AbsTone(0),

		InverseSurface:   p.Neutral.AbsTone(90),
		InverseOnSurface: p.Neutral.AbsTone(20),
		InversePrimary:   p.Primary.AbsTone(40),
	}
}
