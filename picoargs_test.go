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

package picoargs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewCopies(t *testing.T) {
	args := []string{"-v", "file"}
	a := New(args, nil)
	a.Contains("-v")
	if args[0] != "-v" || args[1] != "file" {
		t.Errorf("caller's slice = %q after Contains; want unchanged", args)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		args []string
		keys []string

		want bool
		rest []string
	}{
		{
			name: "Empty",
			keys: []string{"-v"},
			want: false,
		},
		{
			name: "Short",
			args: []string{"-V"},
			keys: []string{"-V"},
			want: true,
		},
		{
			name: "Long",
			args: []string{"--version"},
			keys: []string{"--version"},
			want: true,
		},
		{
			name: "AliasLong",
			args: []string{"--version"},
			keys: []string{"-v", "--version"},
			want: true,
		},
		{
			name: "AliasShort",
			args: []string{"-v"},
			keys: []string{"-v", "--version"},
			want: true,
		},
		{
			name: "RemovesOnlyFirst",
			args: []string{"-v", "--version"},
			keys: []string{"-v", "--version"},
			want: true,
			rest: []string{"--version"},
		},
		{
			name: "FirstTokenWins",
			args: []string{"a", "--version", "-v"},
			keys: []string{"-v", "--version"},
			want: true,
			rest: []string{"a", "-v"},
		},
		{
			name: "Missing",
			args: []string{"-x", "file"},
			keys: []string{"-v", "--verbose"},
			want: false,
			rest: []string{"-x", "file"},
		},
		{
			name: "NoPrefixMatch",
			args: []string{"--verbose"},
			keys: []string{"--verb"},
			want: false,
			rest: []string{"--verbose"},
		},
		{
			name: "CombinedDisabled",
			args: []string{"-abc"},
			keys: []string{"-b"},
			want: false,
			rest: []string{"-abc"},
		},
		{
			name: "CombinedMiddle",
			opts: Options{CombinedFlags: true},
			args: []string{"-abc"},
			keys: []string{"-b"},
			want: true,
			rest: []string{"-ac"},
		},
		{
			name: "CombinedLongAliasIgnored",
			opts: Options{CombinedFlags: true},
			args: []string{"-abc"},
			keys: []string{"--b"},
			want: false,
			rest: []string{"-abc"},
		},
		{
			name: "CombinedPeelsOne",
			opts: Options{CombinedFlags: true},
			args: []string{"-vvv"},
			keys: []string{"-v"},
			want: true,
			rest: []string{"-vv"},
		},
		{
			name: "CombinedSkipsLongTokens",
			opts: Options{CombinedFlags: true},
			args: []string{"--abc"},
			keys: []string{"-a"},
			want: false,
			rest: []string{"--abc"},
		},
		{
			name: "ExactBeforeCombined",
			opts: Options{CombinedFlags: true},
			args: []string{"-ab", "-b"},
			keys: []string{"-b"},
			want: true,
			rest: []string{"-ab"},
		},
		{
			name: "CombinedStopsAtEq",
			opts: Options{CombinedFlags: true, EqSeparator: true},
			args: []string{"-x=less"},
			keys: []string{"-l"},
			want: false,
			rest: []string{"-x=less"},
		},
		{
			name: "CombinedBeforeEq",
			opts: Options{CombinedFlags: true, EqSeparator: true},
			args: []string{"-lx=less"},
			keys: []string{"-l"},
			want: true,
			rest: []string{"-x=less"},
		},
		{
			name: "CombinedValueOwner",
			opts: Options{CombinedFlags: true, EqSeparator: true},
			args: []string{"-x=abc"},
			keys: []string{"-x"},
			want: false,
			rest: []string{"-x=abc"},
		},
		{
			name: "CombinedMultibyte",
			opts: Options{CombinedFlags: true},
			args: []string{"-aéb"},
			keys: []string{"-é"},
			want: true,
			rest: []string{"-ab"},
		},
		{
			name: "NonUTF8Token",
			args: []string{"\xff", "--raw\xfe"},
			keys: []string{"--raw\xfe"},
			want: true,
			rest: []string{"\xff"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(test.args, &test.opts)
			if got := a.Contains(test.keys...); got != test.want {
				t.Errorf("Contains(%q) = %t; want %t", test.keys, got, test.want)
			}
			if diff := cmp.Diff(test.rest, a.Finish(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("remaining (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContainsRemovesAtMostOne(t *testing.T) {
	inputs := [][]string{
		{},
		{"-v"},
		{"-v", "-v", "-v"},
		{"--verbose", "x", "-v"},
		{"x", "y"},
	}
	for _, args := range inputs {
		a := New(args, nil)
		before := a.Len()
		present := false
		for _, arg := range args {
			if arg == "-v" || arg == "--verbose" {
				present = true
			}
		}
		got := a.Contains("-v", "--verbose")
		if got != present {
			t.Errorf("New(%q).Contains(...) = %t; want %t", args, got, present)
		}
		removed := before - a.Len()
		if got && removed != 1 || !got && removed != 0 {
			t.Errorf("New(%q).Contains(...) removed %d tokens (returned %t)", args, removed, got)
		}
	}
}

func TestCombinedFlags(t *testing.T) {
	a := New([]string{"-abc"}, &Options{CombinedFlags: true})
	for _, key := range []string{"-a", "-b", "-c"} {
		if !a.Contains(key) {
			t.Errorf("Contains(%q) = false; want true", key)
		}
	}
	if a.Len() != 0 {
		t.Errorf("after peeling all flags, store = %v; want []", a)
	}
	if a.Contains("-a") {
		t.Error("Contains(\"-a\") on empty store = true")
	}
}

func TestInvalidKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{name: "None"},
		{name: "NoDash", keys: []string{"v"}},
		{name: "NoDashAlias", keys: []string{"-v", "version"}},
		{name: "LongShort", keys: []string{"-v", "-version"}},
		{name: "DashOnly", keys: []string{"-"}},
		{name: "DashDash", keys: []string{"--"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Contains(%q) did not panic", test.keys)
				}
			}()
			New([]string{"-v", "--version"}, nil).Contains(test.keys...)
		})
	}
}

func TestSubcommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantName string
		wantOK   bool
		wantErr  bool
		rest     []string
	}{
		{
			name: "Empty",
		},
		{
			name:     "Present",
			args:     []string{"create", "--file", "x"},
			wantName: "create",
			wantOK:   true,
			rest:     []string{"--file", "x"},
		},
		{
			name: "Flag",
			args: []string{"--help", "create"},
			rest: []string{"--help", "create"},
		},
		{
			name: "Stdin",
			args: []string{"-"},
			rest: []string{"-"},
		},
		{
			name:    "NonUTF8",
			args:    []string{"cr\xffate", "x"},
			wantErr: true,
			rest:    []string{"x"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(test.args, nil)
			name, ok, err := a.Subcommand()
			if name != test.wantName || ok != test.wantOK {
				t.Errorf("Subcommand() = %q, %t, %v; want %q, %t", name, ok, err, test.wantName, test.wantOK)
			}
			if test.wantErr {
				var e *NonUTF8ArgumentError
				if !errors.As(err, &e) {
					t.Errorf("Subcommand() error = %v; want *NonUTF8ArgumentError", err)
				}
			} else if err != nil {
				t.Errorf("Subcommand() error = %v", err)
			}
			if diff := cmp.Diff(test.rest, a.Finish(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("remaining (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFree(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		flags    []string
		want     []string
		wantErr  string
		leftover []string
	}{
		{
			name: "Empty",
		},
		{
			name: "Single",
			args: []string{"text.txt"},
			want: []string{"text.txt"},
		},
		{
			name: "Multiple",
			args: []string{"text.txt", "text2.txt"},
			want: []string{"text.txt", "text2.txt"},
		},
		{
			name:  "FlagFirst",
			args:  []string{"-h", "text.txt", "text2.txt"},
			flags: []string{"-h"},
			want:  []string{"text.txt", "text2.txt"},
		},
		{
			name:  "FlagMiddle",
			args:  []string{"text.txt", "-h", "text2.txt"},
			flags: []string{"-h"},
			want:  []string{"text.txt", "text2.txt"},
		},
		{
			name:  "FlagLast",
			args:  []string{"text.txt", "text2.txt", "-h"},
			flags: []string{"-h"},
			want:  []string{"text.txt", "text2.txt"},
		},
		{
			name: "Stdin",
			args: []string{"-"},
			want: []string{"-"},
		},
		{
			name: "NonUTF8",
			args: []string{"a\xffb"},
			want: []string{"a\xffb"},
		},
		{
			name:     "UnusedFlag",
			args:     []string{"-h", "text.txt"},
			wantErr:  "unused arguments left: -h",
			leftover: []string{"-h", "text.txt"},
		},
		{
			name:     "UnusedFlags",
			args:     []string{"pos1", "--bad", "-", "-x"},
			wantErr:  "unused arguments left: --bad, -x",
			leftover: []string{"pos1", "--bad", "-", "-x"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(test.args, nil)
			for _, f := range test.flags {
				if !a.Contains(f) {
					t.Fatalf("Contains(%q) = false", f)
				}
			}
			got, err := a.Free()
			if test.wantErr != "" {
				var e *UnusedArgsError
				if !errors.As(err, &e) || err.Error() != test.wantErr {
					t.Errorf("Free() = %q, %v; want error %q", got, err, test.wantErr)
				}
				if diff := cmp.Diff(test.leftover, a.Finish()); diff != "" {
					t.Errorf("store after failed Free (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Free(): %v", err)
			}
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Free() (-want +got):\n%s", diff)
			}
			if a.Len() != 0 {
				t.Errorf("Len() after Free = %d; want 0", a.Len())
			}
		})
	}
}

func TestFinish(t *testing.T) {
	a := New([]string{"-h", "text.txt", "--", "-x"}, nil)
	got := a.Finish()
	want := []string{"-h", "text.txt", "--", "-x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Finish() (-want +got):\n%s", diff)
	}
	if rest := a.Finish(); len(rest) != 0 {
		t.Errorf("second Finish() = %q; want []", rest)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "[]"},
		{[]string{"-v"}, "[-v]"},
		{[]string{"-v", "--width=10", "a b"}, "[-v, --width=10, 'a b']"},
		{[]string{"ok", "\xff"}, `[ok, $'\xff']`},
		{[]string{""}, "['']"},
	}
	for _, test := range tests {
		if got := New(test.args, nil).String(); got != test.want {
			t.Errorf("New(%q, nil).String() = %s; want %s", test.args, got, test.want)
		}
	}
}

func TestSplitTerminator(t *testing.T) {
	tests := []struct {
		args          []string
		rest          []string
		forwarded     []string
		wantForwarded bool
	}{
		{
			args: []string{"-v", "file"},
			rest: []string{"-v", "file"},
		},
		{
			args:          []string{"-v", "--", "-x", "--", "y"},
			rest:          []string{"-v"},
			forwarded:     []string{"-x", "--", "y"},
			wantForwarded: true,
		},
		{
			args:          []string{"--"},
			rest:          []string{},
			forwarded:     []string{},
			wantForwarded: true,
		},
	}
	for _, test := range tests {
		rest, forwarded := SplitTerminator(test.args)
		if diff := cmp.Diff(test.rest, rest, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("SplitTerminator(%q) rest (-want +got):\n%s", test.args, diff)
		}
		if diff := cmp.Diff(test.forwarded, forwarded, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("SplitTerminator(%q) forwarded (-want +got):\n%s", test.args, diff)
		}
		if (forwarded != nil) != test.wantForwarded {
			t.Errorf("SplitTerminator(%q) forwarded = %#v; want non-nil = %t", test.args, forwarded, test.wantForwarded)
		}
	}
}

func TestSplitTerminatorAppend(t *testing.T) {
	args := []string{"a", "--", "b"}
	rest, _ := SplitTerminator(args)
	_ = append(rest, "c")
	if args[1] != "--" {
		t.Errorf("appending to rest overwrote args[1] = %q", args[1])
	}
}
