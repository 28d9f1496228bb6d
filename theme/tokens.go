// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"strconv"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/matcolor"
	"github.com/iancoleman/strcase"
)

const (
	// SysColorPrefix is the prefix of the style property of a scheme role.
	SysColorPrefix = "--md-sys-color-"

	// RefPalettePrefix is the prefix of the style property of a palette tone.
	RefPalettePrefix = "--md-ref-palette-"
)

// DefaultPaletteTones are the tones of each palette included in exports.
var DefaultPaletteTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// Property is one named style property value.
type Property struct {
	Name  string
	Value string
}

// RoleToken returns the kebab-case token of the given role name,
// with a hyphen at every lower to upper case boundary:
// onPrimaryContainer gives on-primary-container.
func RoleToken(name string) string {
	return strcase.ToKebab(name)
}

// RoleProperty returns the style property name of the given role name,
// with the given suffix appended (such as "-dark").
func RoleProperty(name, suffix string) string {
	return SysColorPrefix + RoleToken(name) + suffix
}

// SchemeProperties returns the style properties of every role of the
// given scheme in role order, with the given suffix appended to the names.
func SchemeProperties(s *matcolor.Scheme, suffix string) []Property {
	roles := s.Roles()
	props := make([]Property, len(roles))
	for i, r := range roles {
		props[i] = Property{Name: RoleProperty(r.Name, suffix), Value: colors.HexFromARGB(r.Value)}
	}
	return props
}

// PaletteProperty returns the style property name of the given tone of
// the palette with the given key, such as --md-ref-palette-primary-primary40.
func PaletteProperty(key string, tone int) string {
	return RefPalettePrefix + key + "-" + key + strconv.Itoa(tone)
}

// PaletteProperties returns the style properties of the given tones
// of every palette of the theme, in [PaletteKeys] order.
func PaletteProperties(p Palettes, tones []int) []Property {
	var props []Property
	for i, tn := range p.Tones() {
		for _, tone := range tones {
			props = append(props, Property{Name: PaletteProperty(PaletteKeys[i], tone), Value: colors.HexFromARGB(tn.AbsTone(tone))})
		}
	}
	return props
}
