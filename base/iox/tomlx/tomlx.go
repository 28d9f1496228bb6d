// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx opens and saves values as TOML files.
package tomlx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Read reads the given value from the given reader. Fields that are
// not in the TOML keep their existing values.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// Open reads the given value from the given file.
func Open(v any, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := Read(v, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// OpenFiles reads the given value from the given files in order,
// so that later files override values set by earlier ones.
func OpenFiles(v any, filenames ...string) error {
	for _, f := range filenames {
		if err := Open(v, f); err != nil {
			return err
		}
	}
	return nil
}

// Write writes the given value to the given writer.
func Write(v any, w io.Writer) error {
	e := toml.NewEncoder(w)
	e.SetIndentTables(true)
	return e.Encode(v)
}

// Save writes the given value to the given file.
func Save(v any, filename string) error {
	var b bytes.Buffer
	if err := Write(v, &b); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}
