// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/materialtheme/colors"
	"cogentcore.org/materialtheme/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html style="color: red; --md-sys-color-primary: #000000">
<head><title>t</title></head>
<body><p>hi</p></body>
</html>`

func TestElement(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	root := doc.Root()
	require.NotNil(t, root)
	assert.Same(t, root, doc.Root())

	v, ok := root.Property("color")
	assert.True(t, ok)
	assert.Equal(t, "red", v)

	root.SetProperty("--md-sys-color-primary", "#6750a4")
	root.SetProperty("--md-sys-color-on-primary", "#ffffff")
	v, _ = root.Property("--md-sys-color-primary")
	assert.Equal(t, "#6750a4", v)
	v, _ = root.Property("color")
	assert.Equal(t, "red", v)
	assert.Equal(t, "color: red; --md-sys-color-primary: #6750a4; --md-sys-color-on-primary: #ffffff;", root.attr("style"))
}

func TestApplyDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	th := theme.FromSeed(0xff6750a4)
	env := doc.Environment(func() bool { return true })
	require.NoError(t, env.Apply(th, theme.ApplyOptions{}))

	v, ok := doc.Root().Property("--md-sys-color-primary")
	assert.True(t, ok)
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.Primary.Base), v)
	v, _ = doc.Root().Property("--md-sys-color-inverse-on-surface")
	assert.Equal(t, colors.HexFromARGB(th.Schemes.Dark.InverseOnSurface), v)

	before := doc.Root().attr("style")
	require.NoError(t, env.Apply(th, theme.ApplyOptions{}))
	assert.Equal(t, before, doc.Root().attr("style"))

	require.NoError(t, doc.AddStyleSheet(th, theme.ApplyOptions{}))
	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "--md-sys-color-on-primary-container:")
}

func TestNoRoot(t *testing.T) {
	doc := &Document{Node: &html.Node{Type: html.DocumentNode}}
	assert.Nil(t, doc.Root())
	assert.Nil(t, doc.Head())

	th := theme.FromSeed(0xff6750a4)
	err := doc.Environment(nil).Apply(th, theme.ApplyOptions{})
	assert.ErrorIs(t, err, theme.ErrNoTarget)
	assert.Error(t, doc.AddStyleSheet(th, theme.ApplyOptions{}))
}
