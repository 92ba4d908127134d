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
	"fmt"
)

const countSynopsis = "print the number of lines in each file"

func count(ctx context.Context, pctx *processContext, opts *options) error {
	counts := make([]int, len(opts.files))
	err := eachLine(ctx, pctx, opts, func(file int, _ string) error {
		counts[file]++
		return nil
	})
	if err != nil {
		return err
	}
	out := bufio.NewWriter(pctx.stdout)
	total := 0
	for i, name := range opts.files {
		fmt.Fprintf(out, "%*d %s\n", int(opts.width), counts[i], name)
		total += counts[i]
	}
	if len(opts.files) > 1 {
		fmt.Fprintf(out, "%*d total\n", int(opts.width), total)
	}
	return out.Flush()
}
