// Copyright 2026 The gg Authors
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

// rat reads files and writes them to standard output, optionally with
// line numbers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gg-scm.io/picoargs"
)

const usage = `rat - read and display files

usage: rat [COMMAND] [options] [FILE ...] [-- FILE ...]

commands:
  cat    ` + catSynopsis + `
  count  ` + countSynopsis + `

options:
  -h, --help            display this help message
  -V, --version         display version information
  -l, --lines           number output lines
  -s, --squeeze         suppress repeated empty lines
  -n, --start N         number of the first line (default 1)
  -w, --width N         width of the line number column (default 5)
  -x, --exclude TEXT    skip lines containing TEXT; may be repeated
      --color=WHEN      color line numbers: auto, always or never
      --debug           trace argument parsing to standard error

Short flags may be combined, as in -ls. A FILE of - reads standard
input. Arguments after -- are always treated as files. If the first
argument is neither a command nor an option, it is read as a file.
`

func main() {
	pctx, err := osProcessContext()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rat:", err)
		os.Exit(1)
	}
	err = run(context.Background(), pctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUsage(err) {
			os.Exit(64)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, pctx *processContext, args []string) error {
	args, forwarded := picoargs.SplitTerminator(args)
	store := picoargs.New(args, &picoargs.Options{
		EqSeparator:   true,
		CombinedFlags: true,
	})
	cmd, ok, err := store.Subcommand()
	var firstFile []string
	var nonUTF8 *picoargs.NonUTF8ArgumentError
	switch {
	case errors.As(err, &nonUTF8):
		// Not a command name, but still a valid file name.
		firstFile = []string{nonUTF8.Arg}
		cmd = "cat"
	case err != nil:
		return usagef("%v", err)
	case !ok:
		cmd = "cat"
	case cmd != "cat" && cmd != "count":
		firstFile = []string{cmd}
		cmd = "cat"
	}

	if store.Contains("-h", "--help") {
		_, err := io.WriteString(pctx.stdout, usage)
		return err
	}
	if store.Contains("-V", "--version") {
		return showVersion(pctx)
	}
	opts, err := parseOptions(pctx, store)
	if err != nil {
		return usagef("%v", err)
	}
	opts.files = append(firstFile, opts.files...)
	opts.files = append(opts.files, forwarded...)
	if len(opts.files) == 0 {
		opts.files = []string{"-"}
	}
	switch cmd {
	case "count":
		err = count(ctx, pctx, opts)
	default:
		err = cat(ctx, pctx, opts)
	}
	if err != nil {
		return fmt.Errorf("rat: %v", err)
	}
	return nil
}

// Build information filled in at link time (see -X link flag).
var versionInfo = ""

func showVersion(pctx *processContext) error {
	v := versionInfo
	if v == "" {
		v = "(devel)"
	}
	_, err := fmt.Fprintf(pctx.stdout, "rat version %s\ngo: %s %s/%s\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

type processContext struct {
	dir string
	env []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func osProcessContext() (*processContext, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &processContext{
		dir:    dir,
		env:    os.Environ(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, nil
}

func (pctx *processContext) getenv(name string) string {
	prefix := name + "="
	for i := len(pctx.env) - 1; i >= 0; i-- {
		if strings.HasPrefix(pctx.env[i], prefix) {
			return pctx.env[i][len(prefix):]
		}
	}
	return ""
}

// open opens the named file relative to the process's directory.
// The name "-" refers to standard input.
func (pctx *processContext) open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(pctx.stdin), nil
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(pctx.dir, name)
	}
	return os.Open(name)
}

type usageError string

func usagef(format string, args ...interface{}) error {
	e := usageError(fmt.Sprintf(format, args...))
	return &e
}

func (ue *usageError) Error() string {
	return "rat: usage: " + string(*ue)
}

func isUsage(e error) bool {
	var ue *usageError
	return errors.As(e, &ue)
}
