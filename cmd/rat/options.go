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

package main

import (
	"fmt"

	"github.com/fatih/color"

	"gg-scm.io/picoargs"
	"gg-scm.io/picoargs/internal/terminal"
)

type options struct {
	lines   bool
	squeeze bool
	start   int
	width   uint
	exclude []string
	color   colorMode
	files   []string
}

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func parseColorMode(s string) (colorMode, error) {
	switch s {
	case "auto":
		return colorAuto, nil
	case "always":
		return colorAlways, nil
	case "never":
		return colorNever, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// parseOptions consumes the options shared by all commands from store.
// Flags are queried before options so that a flag is never taken as
// the value of a preceding option.
func parseOptions(pctx *processContext, store *picoargs.Arguments) (*options, error) {
	debug := store.Contains("--debug")
	trace := func(stage string) {
		if debug {
			fmt.Fprintf(pctx.stderr, "rat: debug: %s: %v\n", stage, store)
		}
	}
	trace("start")
	opts := &options{
		lines:   store.Contains("-l", "--lines"),
		squeeze: store.Contains("-s", "--squeeze"),
	}
	trace("flags")

	var err error
	opts.start, err = optValue(store, 1, picoargs.ParseInt[int], "-n", "--start")
	if err != nil {
		return nil, err
	}
	opts.width, err = optValue(store, 5, picoargs.ParseUint[uint], "-w", "--width")
	if err != nil {
		return nil, err
	}
	opts.color, err = optValue(store, colorAuto, parseColorMode, "--color")
	if err != nil {
		return nil, err
	}
	opts.exclude, err = picoargs.ValuesFromStr(store, picoargs.ParseString, "-x", "--exclude")
	if err != nil {
		return nil, err
	}
	trace("options")

	opts.files, err = store.Free()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// optValue is picoargs.OptValueFromStr with a default.
func optValue[T any](store *picoargs.Arguments, def T, parse func(string) (T, error), keys ...string) (T, error) {
	v, ok, err := picoargs.OptValueFromStr(store, parse, keys...)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

// lineNumberColor returns the color used for line numbers, enabled
// or disabled according to the options and the output.
func (opts *options) lineNumberColor(pctx *processContext) *color.Color {
	c := color.New(color.FgCyan)
	switch {
	case opts.color == colorAlways:
		c.EnableColor()
	case opts.color == colorAuto && pctx.getenv("NO_COLOR") == "" && terminal.IsTerminal(pctx.stdout):
		c.EnableColor()
	default:
		c.DisableColor()
	}
	return c
}
