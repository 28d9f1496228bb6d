// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
	Tags  []int  `toml:"tags"`
}

func TestSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.toml")
	in := testStruct{Name: "x", Count: 3, Tags: []int{1, 2}}
	require.NoError(t, Save(in, path))

	var out testStruct
	require.NoError(t, Open(&out, path))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("name = \"a\"\ncount = 1\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("count = 2\n"), 0666))

	v := testStruct{Tags: []int{9}}
	require.NoError(t, OpenFiles(&v, a, b))
	assert.Equal(t, testStruct{Name: "a", Count: 2, Tags: []int{9}}, v)

	err := Read(&v, strings.NewReader("count = \"nope\""))
	assert.Error(t, err)
	assert.Error(t, Open(&v, filepath.Join(dir, "missing.toml")))
}
