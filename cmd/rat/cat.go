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
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
)

const catSynopsis = "print files (default)"

func cat(ctx context.Context, pctx *processContext, opts *options) error {
	numColor := opts.lineNumberColor(pctx)
	out := bufio.NewWriter(pctx.stdout)
	n := opts.start
	prevEmpty := false
	err := eachLine(ctx, pctx, opts, func(_ int, line string) error {
		empty := line == "\n" || line == ""
		if opts.squeeze && empty && prevEmpty {
			return nil
		}
		prevEmpty = empty
		if opts.lines {
			num := strconv.Itoa(n)
			if pad := int(opts.width) - len(num); pad > 0 {
				num += strings.Repeat(" ", pad)
			}
			numColor.Fprint(out, num)
			out.WriteString("| ")
			n++
		}
		_, err := out.WriteString(line)
		return err
	})
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	return err
}

// eachLine calls f for every line of every file in opts.files that is
// not excluded, passing the file's index in opts.files. Lines include
// their trailing newline, except possibly the last line of a file.
func eachLine(ctx context.Context, pctx *processContext, opts *options, f func(file int, line string) error) error {
	for i, name := range opts.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := readLines(pctx, name, opts.exclude, func(line string) error {
			return f(i, line)
		}); err != nil {
			return err
		}
	}
	return nil
}

func readLines(pctx *processContext, name string, exclude []string, f func(line string) error) error {
	rc, err := pctx.open(name)
	if err != nil {
		return err
	}
	defer rc.Close()
	r := bufio.NewReader(rc)
	for {
		line, err := r.ReadString('\n')
		if line != "" && !excluded(line, exclude) {
			if err := f(line); err != nil {
				return err
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func excluded(line string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}
