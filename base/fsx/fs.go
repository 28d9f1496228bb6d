// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/materialtheme/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths returns the paths of the files with the given name
// in the given directories, in the order of the directories. Absolute
// file names are returned as they are if they exist.
func FindFilesOnPaths(paths []string, file string) []string {
	if filepath.IsAbs(file) {
		if ok, _ := FileExists(file); ok {
			return []string{file}
		}
		return nil
	}
	var res []string
	for _, dir := range paths {
		p := filepath.Join(dir, file)
		if ok, err := FileExists(p); ok {
			res = append(res, p)
		} else if err != nil {
			errors.Log(err)
		}
	}
	return res
}

// UserConfigPaths returns the current directory followed by the
// user configuration directory for the given app name, skipping
// any that cannot be determined.
func UserConfigPaths(app string) []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return paths
}
