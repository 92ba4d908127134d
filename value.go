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
	"strings"
	"unicode/utf8"
)

type pairKind int

const (
	// separate is a "--key value" pair spanning two tokens.
	separate pairKind = iota
	// joined is a "--key=value" or "-kVALUE" token.
	joined
)

type pair struct {
	idx   int
	key   string
	value string
	kind  pairKind
}

// findPair locates the first token naming one of keys. A joined token
// is removed as soon as it is found, even if its value turns out to be
// invalid. A separate pair is left in place for the caller to remove.
func (a *Arguments) findPair(keys []string) (p pair, found bool, err error) {
	for i, tok := range a.args {
		for _, key := range keys {
			if tok == key {
				if i+1 >= len(a.args) {
					return pair{}, false, &OptionWithoutValueError{Key: key}
				}
				return pair{idx: i, key: key, value: a.args[i+1], kind: separate}, true, nil
			}
			v, ok := a.joinedValue(tok, key)
			if !ok {
				continue
			}
			a.remove(i, 1)
			v, ok = unquote(v)
			if !ok {
				return pair{}, false, &OptionWithoutValueError{Key: key}
			}
			return pair{idx: i, key: key, value: v, kind: joined}, true, nil
		}
	}
	return pair{}, false, nil
}

// joinedValue returns the value part of tok if tok is key joined with
// a value under the store's options. The '=' separator takes precedence
// over the short space-optional form.
func (a *Arguments) joinedValue(tok, key string) (string, bool) {
	if len(tok) <= len(key) || !strings.HasPrefix(tok, key) {
		return "", false
	}
	rest := tok[len(key):]
	switch {
	case a.opts.EqSeparator && rest[0] == '=':
		return rest[1:], true
	case a.opts.ShortSpaceOpt && isShortKey(key):
		return rest, true
	default:
		return "", false
	}
}

// unquote strips one pair of matching single or double quotes from v.
// It reports false if a quote is unbalanced or the value is empty.
func unquote(v string) (string, bool) {
	if v != "" && (v[0] == '\'' || v[0] == '"') {
		if len(v) < 2 || v[len(v)-1] != v[0] {
			return "", false
		}
		v = v[1 : len(v)-1]
	}
	return v, v != ""
}

func optValue[T any](a *Arguments, keys []string, text bool, conv func(string) (T, error)) (T, bool, error) {
	checkKeys(keys)
	var zero T
	p, found, err := a.findPair(keys)
	if err != nil || !found {
		return zero, false, err
	}
	if text && !utf8.ValidString(p.value) {
		return zero, false, &NonUTF8ArgumentError{Arg: p.value}
	}
	v, err := conv(p.value)
	if err != nil {
		return zero, false, &OptionValueParseError{Key: p.key, Err: err}
	}
	if p.kind == separate {
		a.remove(p.idx, 2)
	}
	return v, true, nil
}

// OptValueFromStr finds the first option named by one of keys and
// converts its value with parse. It returns ok == false and a nil error
// if no key is present.
//
// For a "--key value" pair, both tokens are removed only if the value
// is valid UTF-8 and parse succeeds. A joined "--key=value" token is
// consumed even when an error is returned.
func OptValueFromStr[T any](a *Arguments, parse func(string) (T, error), keys ...string) (v T, ok bool, err error) {
	return optValue(a, keys, true, parse)
}

// ValueFromStr is like OptValueFromStr, but returns a
// *MissingOptionError if no key is present.
func ValueFromStr[T any](a *Arguments, parse func(string) (T, error), keys ...string) (T, error) {
	v, ok, err := OptValueFromStr(a, parse, keys...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, &MissingOptionError{Keys: keys}
	}
	return v, nil
}

// OptValueFromBytes is like OptValueFromStr, but hands the raw value
// bytes to parse without checking that they are valid UTF-8.
func OptValueFromBytes[T any](a *Arguments, parse func([]byte) (T, error), keys ...string) (v T, ok bool, err error) {
	return optValue(a, keys, false, func(s string) (T, error) {
		return parse([]byte(s))
	})
}

// ValueFromBytes is like OptValueFromBytes, but returns a
// *MissingOptionError if no key is present.
func ValueFromBytes[T any](a *Arguments, parse func([]byte) (T, error), keys ...string) (T, error) {
	v, ok, err := OptValueFromBytes(a, parse, keys...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, &MissingOptionError{Keys: keys}
	}
	return v, nil
}

// ValuesFromStr consumes every option named by one of keys and returns
// the converted values in the order they appeared. It returns an empty
// slice if no key is present. On error, options consumed before the
// failing one stay consumed.
func ValuesFromStr[T any](a *Arguments, parse func(string) (T, error), keys ...string) ([]T, error) {
	var values []T
	for {
		v, ok, err := OptValueFromStr(a, parse, keys...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return values, nil
		}
		values = append(values, v)
	}
}

// ValuesFromBytes is the raw byte counterpart of ValuesFromStr.
func ValuesFromBytes[T any](a *Arguments, parse func([]byte) (T, error), keys ...string) ([]T, error) {
	var values []T
	for {
		v, ok, err := OptValueFromBytes(a, parse, keys...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return values, nil
		}
		values = append(values, v)
	}
}

// OptFreeFromStr removes the first remaining token and converts it with
// parse. It returns ok == false if the store is empty. The token is
// consumed even if an error is returned.
func OptFreeFromStr[T any](a *Arguments, parse func(string) (T, error)) (v T, ok bool, err error) {
	if len(a.args) == 0 {
		return v, false, nil
	}
	tok := a.args[0]
	a.remove(0, 1)
	if !utf8.ValidString(tok) {
		return v, false, &NonUTF8ArgumentError{Arg: tok}
	}
	v, err = parse(tok)
	if err != nil {
		return v, false, &ArgumentParseError{Value: tok, Err: err}
	}
	return v, true, nil
}

// FreeFromStr is like OptFreeFromStr, but returns ErrMissingArgument if
// the store is empty.
func FreeFromStr[T any](a *Arguments, parse func(string) (T, error)) (T, error) {
	v, ok, err := OptFreeFromStr(a, parse)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrMissingArgument
	}
	return v, nil
}

// FreeFromBytes removes the first remaining token and converts its raw
// bytes with parse. It returns ErrMissingArgument if the store is empty.
func FreeFromBytes[T any](a *Arguments, parse func([]byte) (T, error)) (T, error) {
	var zero T
	if len(a.args) == 0 {
		return zero, ErrMissingArgument
	}
	tok := a.args[0]
	a.remove(0, 1)
	v, err := parse([]byte(tok))
	if err != nil {
		return zero, &ArgumentParseError{Value: tok, Err: err}
	}
	return v, nil
}
