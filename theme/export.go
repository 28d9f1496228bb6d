// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/colors/matcolor"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Export is the serializable form of a [Theme], with all
// colors as lowercase #rrggbb hex strings.
type Export struct {
	Seed         string                   `json:"seed" yaml:"seed"`
	Schemes      ExportSchemes            `json:"schemes" yaml:"schemes"`
	Palettes     Ordered[Ordered[string]] `json:"palettes" yaml:"palettes"`
	CustomColors []ExportCustomColor      `json:"customColors" yaml:"customColors"`
}

// ExportSchemes are the light and dark schemes of an [Export],
// each mapping role names to colors in role order.
type ExportSchemes struct {
	Light Ordered[string] `json:"light" yaml:"light"`
	Dark  Ordered[string] `json:"dark" yaml:"dark"`
}

// ExportCustomColor is a [CustomColorGroup] in an [Export].
type ExportCustomColor struct {
	Name  string          `json:"name" yaml:"name"`
	Color string          `json:"color" yaml:"color"`
	Blend bool            `json:"blend" yaml:"blend"`
	Value string          `json:"value" yaml:"value"`
	Light Ordered[string] `json:"light" yaml:"light"`
	Dark  Ordered[string] `json:"dark" yaml:"dark"`
}

// Export returns the serializable form of the theme, including
// the [DefaultPaletteTones] of each palette.
func (t *Theme) Export() Export {
	return t.ExportTones(DefaultPaletteTones)
}

// ExportTones is like [Theme.Export] with the given palette tones.
func (t *Theme) ExportTones(tones []int) Export {
	ex := Export{
		Seed: colors.HexFromARGB(t.Seed),
		Schemes: ExportSchemes{
			Light: exportScheme(t.Schemes.Light),
			Dark:  exportScheme(t.Schemes.Dark),
		},
		CustomColors: make([]ExportCustomColor, len(t.CustomColors)),
	}
	for i, tn := range t.Palettes.Tones() {
		p := make(Ordered[string], len(tones))
		for j, tone := range tones {
			p[j] = Entry[string]{Key: strconv.Itoa(tone), Value: colors.HexFromARGB(tn.AbsTone(tone))}
		}
		ex.Palettes = append(ex.Palettes, Entry[Ordered[string]]{Key: PaletteKeys[i], Value: p})
	}
	for i, cc := range t.CustomColors {
		ex.CustomColors[i] = ExportCustomColor{
			Name:  cc.Color.Name,
			Color: colors.HexFromARGB(cc.Color.Value),
			Blend: cc.Color.Blend,
			Value: colors.HexFromARGB(cc.Value),
			Light: exportGroup(cc.Light),
			Dark:  exportGroup(cc.Dark),
		}
	}
	return ex
}

func exportScheme(s *matcolor.Scheme) Ordered[string] {
	roles := s.Roles()
	o := make(Ordered[string], len(roles))
	for i, r := range roles {
		o[i] = Entry[string]{Key: r.Name, Value: colors.HexFromARGB(r.Value)}
	}
	return o
}

func exportGroup(g ColorGroup) Ordered[string] {
	return Ordered[string]{
		{Key: "color", Value: colors.HexFromARGB(g.Base)},
		{Key: "onColor", Value: colors.HexFromARGB(g.On)},
		{Key: "colorContainer", Value: colors.HexFromARGB(g.Container)},
		{Key: "onColorContainer", Value: colors.HexFromARGB(g.OnContainer)},
	}
}

// EncodeJSON writes the export as indented JSON.
func (ex Export) EncodeJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(ex)
}

// EncodeYAML writes the export as YAML.
func (ex Export) EncodeYAML(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(ex); err != nil {
		return err
	}
	return e.Close()
}

// EncodeTOML writes the export as TOML. TOML tables are
// written with sorted keys, so role order is not kept.
func (ex Export) EncodeTOML(w io.Writer) error {
	palettes := map[string]map[string]string{}
	for _, p := range ex.Palettes {
		palettes[p.Key] = p.Value.Map()
	}
	custom := make([]map[string]any, len(ex.CustomColors))
	for i, c := range ex.CustomColors {
		custom[i] = map[string]any{
			"name":  c.Name,
			"color": c.Color,
			"blend": c.Blend,
			"value": c.Value,
			"light": c.Light.Map(),
			"dark":  c.Dark.Map(),
		}
	}
	doc := map[string]any{
		"seed": ex.Seed,
		"schemes": map[string]any{
			"light": ex.Schemes.Light.Map(),
			"dark":  ex.Schemes.Dark.Map(),
		},
		"palettes": palettes,
	}
	if len(custom) > 0 {
		doc["customColors"] = custom
	}
	e := toml.NewEncoder(w)
	e.SetIndentTables(true)
	return e.Encode(doc)
}

// Encode writes the theme in the given format:
// json, yaml, toml or css. CSS uses the given options.
func (t *Theme) Encode(w io.Writer, format string, opts ApplyOptions) error {
	switch format {
	case "", "json":
		return t.Export().EncodeJSON(w)
	case "yaml", "yml":
		return t.Export().EncodeYAML(w)
	case "toml":
		return t.Export().EncodeTOML(w)
	case "css":
		_, err := io.WriteString(w, Stylesheet(t, opts))
		return err
	}
	return fmt.Errorf("theme: unknown format %q (want json, yaml, toml or css)", format)
}
