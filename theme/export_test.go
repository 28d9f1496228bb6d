// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/materialtheme/colors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testTheme() *Theme {
	return FromSeed(purple, CustomColor{Name: "brand", Value: 0xff1b998b, Blend: true})
}

func TestExport(t *testing.T) {
	th := testTheme()
	ex := th.Export()
	assert.Equal(t, "#6750a4", ex.Seed)
	assert.Len(t, ex.Schemes.Light, 29)
	assert.Equal(t, "primary", ex.Schemes.Light[0].Key)
	v, ok := ex.Schemes.Dark.Get("onSurface")
	assert.True(t, ok)
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.OnSurface), v)

	require.Len(t, ex.Palettes, 6)
	assert.Equal(t, "neutral-variant", ex.Palettes[4].Key)
	assert.Len(t, ex.Palettes[0].Value, len(DefaultPaletteTones))
	v, _ = ex.Palettes[0].Value.Get("100")
	assert.Equal(t, "#ffffff", v)

	require.Len(t, ex.CustomColors, 1)
	cc := ex.CustomColors[0]
	assert.Equal(t, "brand", cc.Name)
	assert.Equal(t, "#1b998b", cc.Color)
	assert.Equal(t, colors.HexFromARGB(th.CustomColors[0].Value), cc.Value)
	v, _ = cc.Light.Get("onColorContainer")
	assert.Equal(t, colors.HexFromARGB(th.CustomColors[0].Light.OnContainer), v)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTheme().Export().EncodeJSON(&buf))
	s := buf.String()

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "#6750a4", m["seed"])

	// roles keep their order
	assert.Less(t, strings.Index(s, `"onPrimary"`), strings.Index(s, `"secondary"`))
	assert.Less(t, strings.Index(s, `"scrim"`), strings.Index(s, `"inverseSurface"`))
	assert.Less(t, strings.Index(s, `"90"`), strings.Index(s, `"100"`))
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTheme().Export().EncodeYAML(&buf))
	s := buf.String()

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "#6750a4", m["seed"])
	assert.Less(t, strings.Index(s, "onPrimary:"), strings.Index(s, "secondary:"))
}

func TestEncodeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTheme().Export().EncodeTOML(&buf))

	var m map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "#6750a4", m["seed"])
	schemes := m["schemes"].(map[string]any)
	light := schemes["light"].(map[string]any)
	assert.Len(t, light, 29)
	assert.Len(t, m["customColors"], 1)
}

func TestEncode(t *testing.T) {
	th := testTheme()
	for _, f := range []string{"", "json", "yaml", "toml", "css"} {
		var buf bytes.Buffer
		require.NoError(t, th.Encode(&buf, f, ApplyOptions{}), f)
		assert.NotZero(t, buf.Len(), f)
	}
	var buf bytes.Buffer
	assert.Error(t, th.Encode(&buf, "xml", ApplyOptions{}))
}

func TestStylesheet(t *testing.T) {
	th := FromSeed(purple)
	s := Stylesheet(th, ApplyOptions{})
	assert.Contains(t, s, ":root {")
	assert.Contains(t, s, "--md-sys-color-primary: "+colors.HexFromARGB(th.Schemes.Light.Primary.Base)+";")
	assert.Contains(t, s, "@media (prefers-color-scheme: dark)")
	assert.Contains(t, s, "--md-sys-color-primary: "+colors.HexFromARGB(th.Schemes.Dark.Primary.Base)+";")

	lightPrimary := "--md-sys-color-primary: " + colors.HexFromARGB(th.Schemes.Light.Primary.Base) + ";"
	darkPrimary := "--md-sys-color-primary: " + colors.HexFromARGB(th.Schemes.Dark.Primary.Base) + ";"
	assert.True(t, strings.HasPrefix(s, ":root {\n  "+lightPrimary+"\n"), s)
	assert.Contains(t, s, "\n}\n@media (prefers-color-scheme: dark) {\n  :root {\n    "+darkPrimary+"\n")
	assert.True(t, strings.HasSuffix(s, "\n  }\n}\n"), s)
	assert.Equal(t, 1, strings.Count(s, "@media"))

	s = Stylesheet(th, ApplyOptions{Dark: ptr(true), PaletteTones: []int{50}})
	assert.NotContains(t, s, "@media")
	assert.Contains(t, s, "--md-sys-color-primary: "+colors.HexFromARGB(th.Schemes.Dark.Primary.Base)+";")
	assert.Contains(t, s, "--md-ref-palette-tertiary-tertiary50: ")

	r := NewRuleSet("html")
	r.SetProperty("--a", "1")
	r.SetProperty("--a", "2")
	assert.Len(t, r.Declarations, 1)
	assert.Equal(t, "2", r.Declarations[0].Value)
}
