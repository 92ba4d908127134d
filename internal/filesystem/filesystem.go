// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filesystem creates file fixtures for command tests.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// A File describes a regular file to create.
type File struct {
	// Name is a slash-separated path relative to the directory.
	Name string
	// Content is the raw file content. It need not be valid UTF-8.
	Content string
	// Mode is the permission bits of the file. Zero means 0666.
	Mode fs.FileMode
}

// A Dir is a filesystem path to a directory holding fixtures.
type Dir string

// TempDir creates a new temporary directory that is removed when tb's
// test finishes, writes files into it, and returns it. Any error fails
// the test immediately.
func TempDir(tb testing.TB, files ...File) Dir {
	tb.Helper()
	dir := Dir(tb.TempDir())
	if err := dir.Write(files...); err != nil {
		tb.Fatal(err)
	}
	return dir
}

// Write creates the given files, along with any missing parent
// directories. It stops at the first file that fails.
func (dir Dir) Write(files ...File) error {
	for _, f := range files {
		p := dir.FromSlash(f.Name)
		if err := os.MkdirAll(filepath.Dir(p), 0777); err != nil {
			return err
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0666
		}
		if err := os.WriteFile(p, []byte(f.Content), mode); err != nil {
			return err
		}
	}
	return nil
}

// FromSlash resolves the given slash-separated path relative to dir.
// path must not be an absolute path.
func (dir Dir) FromSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		panic("absolute path to filesystem.Dir.FromSlash")
	}
	return filepath.Join(string(dir), filepath.FromSlash(path))
}

// String returns the directory path.
func (dir Dir) String() string {
	return string(dir)
}
