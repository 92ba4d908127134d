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

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempDir(t *testing.T) {
	dir := TempDir(t,
		File{Name: "top.txt", Content: "Hello, World!\n"},
		File{Name: "sub/dir/raw.bin", Content: "\xff\xfe"},
	)
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(string(dir), "top.txt"), "Hello, World!\n"},
		{filepath.Join(string(dir), "sub", "dir", "raw.bin"), "\xff\xfe"},
	}
	for _, test := range tests {
		got, err := os.ReadFile(test.path)
		if err != nil {
			t.Error(err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("%s content = %q; want %q", test.path, got, test.want)
		}
	}
}

func TestWriteMode(t *testing.T) {
	dir := Dir(t.TempDir())
	if err := dir.Write(File{Name: "ro.txt", Content: "x", Mode: 0444}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir.FromSlash("ro.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got&0222 != 0 {
		t.Errorf("ro.txt mode = %v; want read-only", got)
	}
}

func TestFromSlash(t *testing.T) {
	tests := []struct {
		name string
		dir  Dir
		path string
		want string
	}{
		{
			name: "Empty",
			dir:  "foo",
			path: "",
			want: "foo",
		},
		{
			name: "Dot",
			dir:  "foo",
			path: ".",
			want: "foo",
		},
		{
			name: "SingleName",
			dir:  "foo",
			path: "bar.txt",
			want: filepath.Join("foo", "bar.txt"),
		},
		{
			name: "SubDir",
			dir:  "foo",
			path: "bar/baz.txt",
			want: filepath.Join("foo", "bar", "baz.txt"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.dir.FromSlash(test.path)
			if got != test.want {
				t.Errorf("Dir(%q).FromSlash(%q) = %q; want %q", string(test.dir), test.path, got, test.want)
			}
		})
	}
}
