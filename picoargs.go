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

// Package picoargs provides a minimal command-line argument scanner.
//
// An Arguments value holds the raw argument tokens of a process. Each
// query (Contains, ValueFromStr, Subcommand, ...) scans the tokens from
// front to back, removes the tokens it matched, and returns the result.
// Whatever is left at the end is either claimed with Free or Finish.
// Flags, options and free arguments may appear in any order.
//
// Because tokens are consumed in the order queries are issued, the
// caller's query order decides how ambiguous input is split. Given
// "--a --b value", calling Contains("--b") before querying a value for
// "--a" treats --b as a flag, while querying "--a" first takes "--b" as
// its value. Issue queries in the order that matches the intended
// grammar: usually flags first, then options, then free arguments.
//
// Tokens are Go strings and are compared byte for byte, so arguments
// that are not valid UTF-8 are preserved. Text accessors report such
// arguments with a *NonUTF8ArgumentError; byte accessors never do.
//
// An Arguments value is not safe for concurrent use.
package picoargs // import "gg-scm.io/picoargs"

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"gg-scm.io/picoargs/internal/escape"
)

// Options controls the optional matching rules of an Arguments value.
// The zero value only recognizes "--key value" pairs and exact flags.
type Options struct {
	// EqSeparator enables "--key=value" and "-k=value" pairs. The value
	// starts after the first '='.
	EqSeparator bool

	// ShortSpaceOpt enables "-kVALUE" pairs for single-character keys.
	// When EqSeparator is also set, "-k=VALUE" yields "VALUE".
	ShortSpaceOpt bool

	// CombinedFlags lets Contains peel single-character flags out of a
	// combined token like "-abc".
	CombinedFlags bool
}

// Arguments is an ordered collection of raw argument tokens that
// shrinks as queries match them.
type Arguments struct {
	args []string
	opts Options
}

// New returns a store holding a copy of args, which must not include
// the program name. opts may be nil to use the zero Options.
func New(args []string, opts *Options) *Arguments {
	a := &Arguments{args: slices.Clone(args)}
	if opts != nil {
		a.opts = *opts
	}
	return a
}

// FromEnv returns a store holding os.Args without the program name.
func FromEnv(opts *Options) *Arguments {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return New(args, opts)
}

// SplitTerminator splits args at the first "--" token. The terminator
// itself is dropped. If args has no terminator, forwarded is nil.
func SplitTerminator(args []string) (rest, forwarded []string) {
	i := slices.Index(args, "--")
	if i == -1 {
		return args, nil
	}
	return args[:i:i], args[i+1:]
}

// Len returns the number of tokens that have not been consumed.
func (a *Arguments) Len() int {
	return len(a.args)
}

// Contains reports whether any of the keys is present as a flag and
// removes the first matching token. Each key must start with '-'. If
// Options.CombinedFlags is set and no token matches exactly, the first
// combined short-flag token containing a single-character key has that
// one character removed; the token is dropped once it is empty. With
// Options.EqSeparator, a token like "-abx=val" only offers a and b as
// flags.
func (a *Arguments) Contains(keys ...string) bool {
	checkKeys(keys)
	for i, tok := range a.args {
		if slices.Contains(keys, tok) {
			a.remove(i, 1)
			return true
		}
	}
	if !a.opts.CombinedFlags {
		return false
	}
	for i, tok := range a.args {
		if !isCombined(tok) {
			continue
		}
		flags := tok[1:]
		if a.opts.EqSeparator {
			// In "-abx=val", x names the option that owns the value.
			if eq := strings.IndexByte(flags, '='); eq != -1 {
				flags = flags[:max(eq-1, 0)]
			}
		}
		for _, key := range keys {
			if !isShortKey(key) {
				continue
			}
			j := strings.Index(flags, key[1:])
			if j == -1 {
				continue
			}
			j++
			rest := tok[:j] + tok[j+len(key)-1:]
			if rest == "-" {
				a.remove(i, 1)
			} else {
				a.args[i] = rest
			}
			return true
		}
	}
	return false
}

// Subcommand removes and returns the first token if it does not start
// with '-'. It only inspects the first position, so it should be called
// before any other query. If the token is not valid UTF-8, it is still
// removed and a *NonUTF8ArgumentError is returned.
func (a *Arguments) Subcommand() (name string, ok bool, err error) {
	if len(a.args) == 0 || strings.HasPrefix(a.args[0], "-") {
		return "", false, nil
	}
	name = a.args[0]
	a.remove(0, 1)
	if !utf8.ValidString(name) {
		return "", false, &NonUTF8ArgumentError{Arg: name}
	}
	return name, true, nil
}

// Free returns all remaining tokens as free arguments and empties the
// store. If any remaining token starts with '-' (other than "-" itself,
// which conventionally names stdin), Free returns an *UnusedArgsError
// naming those tokens and leaves the store untouched.
func (a *Arguments) Free() ([]string, error) {
	var flags []string
	for _, tok := range a.args {
		if tok != "-" && strings.HasPrefix(tok, "-") {
			flags = append(flags, tok)
		}
	}
	if len(flags) > 0 {
		return nil, &UnusedArgsError{Args: flags}
	}
	return a.Finish(), nil
}

// Finish returns all remaining tokens, regardless of their prefix, and
// empties the store.
func (a *Arguments) Finish() []string {
	rest := a.args[:len(a.args):len(a.args)]
	a.args = nil
	return rest
}

// String returns a description of the remaining tokens, like
// "[-v, 'a b', $'\xff']". Tokens are quoted as for a shell.
func (a *Arguments) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	for i, tok := range a.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(escape.Arg(tok))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Arguments) remove(i, n int) {
	a.args = slices.Delete(a.args, i, i+n)
}

// checkKeys panics if keys is empty or holds a malformed key.
func checkKeys(keys []string) {
	if len(keys) == 0 {
		panic("picoargs: no keys given")
	}
	for _, k := range keys {
		switch {
		case strings.HasPrefix(k, "--"):
			if len(k) == 2 {
				panic("picoargs: key \"--\" has no name")
			}
		case strings.HasPrefix(k, "-"):
			if !isShortKey(k) {
				panic("picoargs: short key " + escape.Arg(k) + " must be a single character")
			}
		default:
			panic("picoargs: key " + escape.Arg(k) + " must start with '-'")
		}
	}
}

// isShortKey reports whether k is a dash followed by one character.
func isShortKey(k string) bool {
	if len(k) < 2 || k[0] != '-' || k[1] == '-' {
		return false
	}
	_, size := utf8.DecodeRuneInString(k[1:])
	return 1+size == len(k)
}

func isCombined(tok string) bool {
	return len(tok) > 2 && tok[0] == '-' && tok[1] != '-'
}
