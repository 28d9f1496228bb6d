// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/materialtheme/colors"

// Accent contains the four standard variations of a base accent color.
type Accent struct {

	// Base is the base color
	Base colors.ARGB `json:"color" yaml:"color" toml:"color"`

	// On is the color applied to content on top of [Accent.Base]
	On colors.ARGB `json:"onColor" yaml:"onColor" toml:"onColor"`

	// Container is the color applied to elements with less emphasis than [Accent.Base]
	Container colors.ARGB `json:"colorContainer" yaml:"colorContainer" toml:"colorContainer"`

	// OnContainer is the color applied to content on top of [Accent.Container]
	OnContainer colors.ARGB `json:"onColorContainer" yaml:"onColorContainer" toml:"onColorContainer"`
}

// NewAccentLight returns a new light theme [Accent] from the given [Tones]
func NewAccentLight(tones *Tones) Accent {
	return Accent{
		Base:        tones.AbsTone(40),
		On:          tones.AbsTone(100),
		Container:   tones.AbsTone(90),
		OnContainer: tones.AbsTone(10),
	}
}

// NewAccentDark returns a new dark theme [Accent] from the given [Tones]
func NewAccentDark(tones *Tones) Accent {
	return Accent{
		Base:        tones.AbsTone(80),
		On:          tones.AbsTone(20),
		Container:   tones.AbsTone(30),
		OnContainer: tones.AbsTone(90),
	}
}
