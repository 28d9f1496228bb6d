// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term shows themes in terminals.
package term

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/cam/hct"
	"cogentcore.org/materialtheme/colors/matcolor"
	"cogentcore.org/materialtheme/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/iancoleman/strcase"
	"github.com/muesli/termenv"
)

// Environment returns a [theme.Environment] that prefers dark when
// the terminal has a dark background, with the given default target.
func Environment(target theme.Target) theme.Environment {
	return theme.Environment{
		PrefersDark: termenv.HasDarkBackground,
		DefaultTarget: func() theme.Target {
			return target
		},
	}
}

// OnRole returns the name of the role that is used for content on
// top of the given role, and the reverse. It returns "" if the
// role does not have such a pair.
func OnRole(s *matcolor.Scheme, name string) string {
	var pair string
	switch {
	case name == "inverseSurface":
		pair = "inverseOnSurface"
	case name == "inverseOnSurface":
		pair = "inverseSurface"
	case strings.HasPrefix(name, "on"):
		pair = strcase.ToLowerCamel(strings.TrimPrefix(name, "on"))
	default:
		pair = "on" + strcase.ToCamel(name)
	}
	if _, ok := s.Role(pair); !ok {
		return ""
	}
	return pair
}

// contrast returns black or white, whichever reads better on c.
func contrast(c colors.ARGB) colors.ARGB {
	if hct.IsLight(c) {
		return 0xff000000
	}
	return 0xffffffff
}

func color(c colors.ARGB) lipgloss.Color {
	return lipgloss.Color(colors.HexFromARGB(c))
}

// Preview writes one swatch line for each role of the given scheme,
// with the name of the role written in its on color.
func Preview(w io.Writer, s *matcolor.Scheme) error {
	r := lipgloss.NewRenderer(w)
	width := 0
	for _, name := range matcolor.RoleNames {
		width = max(width, len(name))
	}
	for _, role := range s.Roles() {
		fg := contrast(role.Value)
		if on := OnRole(s, role.Name); on != "" {
			fg, _ = s.Role(on)
		}
		st := r.NewStyle().
			Background(color(role.Value)).
			Foreground(color(fg)).
			Padding(0, 1).
			Width(width + 2)
		if _, err := fmt.Fprintln(w, st.Render(role.Name), colors.HexFromARGB(role.Value)); err != nil {
			return err
		}
	}
	return nil
}

// PreviewPalettes writes one line of swatches for each palette of
// the theme, with one swatch for each of the given tones.
func PreviewPalettes(w io.Writer, p theme.Palettes, tones []int) error {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Width(16)
	for i, tn := range p.Tones() {
		cells := []string{label.Render(theme.PaletteKeys[i])}
		for _, tone := range tones {
			c := tn.AbsTone(tone)
			st := r.NewStyle().
				Background(color(c)).
				Foreground(color(contrast(c))).
				Width(5).
				Align(lipgloss.Center)
			cells = append(cells, st.Render(fmt.Sprint(tone)))
		}
		if _, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...)); err != nil {
			return err
		}
	}
	return nil
}
