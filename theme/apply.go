// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"cogentcore.org/materialtheme/base/errors"
)

// ErrNoTarget is returned by [Apply] when no target is given
// and the environment does not have a default target.
var ErrNoTarget = errors.New("theme: no target to apply to")

// Target is anything that style properties can be set on.
type Target interface {

	// SetProperty sets the style property with the given name to the given value.
	SetProperty(name, value string)
}

// Environment provides the defaults used by [Environment.Apply].
type Environment struct {

	// PrefersDark returns whether a dark scheme is preferred.
	// If it is nil, light is used.
	PrefersDark func() bool

	// DefaultTarget returns the target used when none is given.
	// If it is nil or returns nil, there is no default target.
	DefaultTarget func() Target
}

// Root is the [StyleMap] that is the default target of [DefaultEnvironment].
var Root = NewStyleMap()

// DefaultEnvironment is the [Environment] used by [Apply]. It does not
// prefer dark, and its default target is [Root]. Code that knows its
// environment calls [Environment.Apply] on it instead.
var DefaultEnvironment = Environment{
	PrefersDark:   func() bool { return false },
	DefaultTarget: func() Target { return Root },
}

// ApplyOptions are the options for [Apply].
type ApplyOptions struct {

	// Dark is whether to apply the dark scheme.
	// If it is nil, the preference of the environment is used.
	Dark *bool

	// Target is the target to set the properties on.
	// If it is nil, the default target of the environment is used.
	Target Target

	// BrightnessSuffix also sets the properties of the light scheme with
	// a -light suffix and those of the dark scheme with a -dark suffix.
	BrightnessSuffix bool

	// PaletteTones are tones of each palette to also set as
	// --md-ref-palette-<key>-<key><tone> properties.
	PaletteTones []int
}

// Apply is shorthand for DefaultEnvironment.Apply(t, opts).
// See [Environment.Apply].
func Apply(t *Theme, opts ApplyOptions) error {
	return DefaultEnvironment.Apply(t, opts)
}

// Apply sets a --md-sys-color-<role> property on the target for every
// role of the light or dark scheme of the theme, with the color value
// as a lowercase #rrggbb hex string. Applying the same theme with the
// same options again gives the same target state. It returns
// [ErrNoTarget] and does nothing when there is no target.
func (e Environment) Apply(t *Theme, opts ApplyOptions) error {
	target := opts.Target
	if target == nil && e.DefaultTarget != nil {
		target = e.DefaultTarget()
	}
	if target == nil {
		return ErrNoTarget
	}
	dark := e.IsDark(opts)
	setProperties(target, SchemeProperties(t.Schemes.Get(dark), ""))
	if opts.BrightnessSuffix {
		setProperties(target, SchemeProperties(t.Schemes.Dark, "-dark"))
		setProperties(target, SchemeProperties(t.Schemes.Light, "-light"))
	}
	if len(opts.PaletteTones) > 0 {
		setProperties(target, PaletteProperties(t.Palettes, opts.PaletteTones))
	}
	return nil
}

// IsDark returns whether the dark scheme is selected by the given
// options in this environment: an explicit choice wins, and
// otherwise the environment preference is used.
func (e Environment) IsDark(opts ApplyOptions) bool {
	if opts.Dark != nil {
		return *opts.Dark
	}
	if e.PrefersDark != nil {
		return e.PrefersDark()
	}
	return false
}

func setProperties(target Target, props []Property) {
	for _, p := range props {
		target.SetProperty(p.Name, p.Value)
	}
}
