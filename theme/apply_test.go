// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"cogentcore.org/materialtheme/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRoleToken(t *testing.T) {
	tests := map[string]string{
		"primary":            "primary",
		"onPrimary":          "on-primary",
		"onPrimaryContainer": "on-primary-container",
		"inverseOnSurface":   "inverse-on-surface",
		"surfaceVariant":     "surface-variant",
		"outlineVariant":     "outline-variant",
	}
	for in, want := range tests {
		assert.Equal(t, want, RoleToken(in))
	}
	assert.Equal(t, "--md-sys-color-on-error-dark", RoleProperty("onError", "-dark"))
	assert.Equal(t, "--md-ref-palette-neutral-variant-neutral-variant40", PaletteProperty("neutral-variant", 40))
}

func ExampleRoleToken() {
	fmt.Println(RoleToken("onPrimaryContainer"))
	fmt.Println(RoleToken("inverseOnSurface"))
	// Output:
	// on-primary-container
	// inverse-on-surface
}

func TestApply(t *testing.T) {
	th := FromSeed(purple)
	m := NewStyleMap()
	require.NoError(t, Apply(th, ApplyOptions{Target: m, Dark: ptr(false)}))
	assert.Equal(t, 29, m.Len())

	for _, r := range th.Schemes.Light.Roles() {
		v, ok := m.Get("--md-sys-color-" + RoleToken(r.Name))
		assert.True(t, ok, r.Name)
		assert.Equal(t, colors.HexFromARGB(r.Value), v)
	}
	v, _ := m.Get("--md-sys-color-on-primary-container")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Light.Primary.OnContainer), v)
	props := m.Properties()
	assert.Equal(t, "--md-sys-color-primary", props[0].Name)
	assert.Equal(t, "--md-sys-color-inverse-primary", props[28].Name)
	for _, p := range props {
		assert.Len(t, p.Value, 7)
		assert.Equal(t, strings.ToLower(p.Value), p.Value)
	}
}

func TestApplyIdempotent(t *testing.T) {
	th := FromSeed(purple)
	m := NewStyleMap()
	opts := ApplyOptions{Target: m, Dark: ptr(true)}
	require.NoError(t, Apply(th, opts))
	first := m.Properties()
	require.NoError(t, Apply(th, opts))
	assert.Equal(t, first, m.Properties())
}

func TestApplyDark(t *testing.T) {
	th := FromSeed(purple)
	dark := func() bool { return true }
	m := NewStyleMap()
	env := Environment{PrefersDark: dark}
	require.NoError(t, env.Apply(th, ApplyOptions{Target: m}))
	v, _ := m.Get("--md-sys-color-primary")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.Primary.Base), v)

	// an explicit choice wins over the environment
	require.NoError(t, env.Apply(th, ApplyOptions{Target: m, Dark: ptr(false)}))
	v, _ = m.Get("--md-sys-color-primary")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Light.Primary.Base), v)

	assert.False(t, Environment{}.IsDark(ApplyOptions{}))
	assert.True(t, Environment{}.IsDark(ApplyOptions{Dark: ptr(true)}))
}

func TestApplyDefaultTarget(t *testing.T) {
	th := FromSeed(purple)
	require.NoError(t, Apply(th, ApplyOptions{}))
	v, ok := Root.Get("--md-sys-color-primary")
	assert.True(t, ok)
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Light.Primary.Base), v)

	err := Environment{}.Apply(th, ApplyOptions{})
	assert.ErrorIs(t, err, ErrNoTarget)

	err = Environment{DefaultTarget: func() Target { return nil }}.Apply(th, ApplyOptions{})
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestApplyEnvironment(t *testing.T) {
	th := FromSeed(purple)
	m := NewStyleMap()
	env := Environment{
		PrefersDark:   func() bool { return true },
		DefaultTarget: func() Target { return m },
	}
	require.NoError(t, env.Apply(th, ApplyOptions{}))
	v, _ := m.Get("--md-sys-color-primary")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.Primary.Base), v)

	old := DefaultEnvironment
	defer func() { DefaultEnvironment = old }()
	DefaultEnvironment = env
	n := NewStyleMap()
	require.NoError(t, Apply(th, ApplyOptions{Target: n}))
	assert.Equal(t, m.Properties(), n.Properties())
}

func TestApplyExtras(t *testing.T) {
	th := FromSeed(purple)
	m := NewStyleMap()
	require.NoError(t, Apply(th, ApplyOptions{Target: m, BrightnessSuffix: true, PaletteTones: []int{40, 90}}))
	assert.Equal(t, 29*3+6*2, m.Len())

	v, _ := m.Get("--md-sys-color-primary-dark")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.Primary.Base), v)
	v, _ = m.Get("--md-sys-color-primary-light")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Light.Primary.Base), v)
	v, _ = m.Get("--md-ref-palette-primary-primary40")
	assert.Equal(t, colors.HexFromARGB(th.Palettes.Primary.AbsTone(40)), v)
	v, _ = m.Get("--md-ref-palette-error-error90")
	assert.Equal(t, colors.HexFromARGB(th.Palettes.Error.AbsTone(90)), v)
}

func TestStyleMapConcurrent(t *testing.T) {
	m := &StyleMap{}
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.SetProperty("--shared", "x")
			m.SetProperty(fmt.Sprintf("--own-%d", i), "y")
		}()
	}
	wg.Wait()
	assert.Equal(t, 11, m.Len())
	v, _ := m.Get("--shared")
	assert.Equal(t, "x", v)
	assert.Contains(t, m.String(), "--shared: x;\n")
}
