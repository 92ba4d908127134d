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
	"strings"

	"gg-scm.io/picoargs/internal/escape"
)

// ErrMissingArgument is returned when a free argument is required but
// the store is empty.
var ErrMissingArgument = errors.New("free-standing argument is missing")

// MissingOptionError is returned when a required option is absent.
type MissingOptionError struct {
	Keys []string
}

func (e *MissingOptionError) Error() string {
	return "the '" + strings.Join(e.Keys, "/") + "' option must be set"
}

// OptionWithoutValueError is returned when an option is present but
// has no value: it was the last token, or its joined value was empty or
// had unbalanced quotes.
type OptionWithoutValueError struct {
	Key string
}

func (e *OptionWithoutValueError) Error() string {
	return "the '" + e.Key + "' option doesn't have an associated value"
}

// OptionValueParseError is returned when an option's value was
// rejected by its conversion function.
type OptionValueParseError struct {
	Key string
	Err error
}

func (e *OptionValueParseError) Error() string {
	return "failed to parse a value for the '" + e.Key + "' option: " + e.Err.Error()
}

func (e *OptionValueParseError) Unwrap() error {
	return e.Err
}

// NonUTF8ArgumentError is returned when an argument requested as text
// is not valid UTF-8.
type NonUTF8ArgumentError struct {
	Arg string
}

func (e *NonUTF8ArgumentError) Error() string {
	return "argument " + escape.Arg(e.Arg) + " is not valid UTF-8"
}

// ArgumentParseError is returned when a free argument was rejected by
// its conversion function.
type ArgumentParseError struct {
	Value string
	Err   error
}

func (e *ArgumentParseError) Error() string {
	return "failed to parse argument " + escape.Arg(e.Value) + ": " + e.Err.Error()
}

func (e *ArgumentParseError) Unwrap() error {
	return e.Err
}

// UnusedArgsError is returned by Free when flag-like tokens remain.
type UnusedArgsError struct {
	Args []string
}

func (e *UnusedArgsError) Error() string {
	sb := new(strings.Builder)
	sb.WriteString("unused arguments left: ")
	for i, arg := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(escape.Arg(arg))
	}
	return sb.String()
}
