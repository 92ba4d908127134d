// Copyright 2018 The gg Authors
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

// Package escape quotes raw command-line arguments for display.
package escape

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Arg quotes s so that it reads as a single bash word. Valid, printable
// UTF-8 is quoted with Bash. Anything else uses bash's $'...' form,
// with undecodable bytes written as \xHH escapes.
func Arg(s string) string {
	if isPrintable(s) {
		return Bash(s)
	}
	return ansiC(s)
}

// Bash quotes s such that it can be used as a literal argument in a
// bash command line.
func Bash(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for i := 0; i < len(s); i++ {
		if !isShellSafe(s[i]) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	sb := new(strings.Builder)
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			sb.WriteString(`'\''`)
		} else {
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

func isShellSafe(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' ||
		b == '-' || b == '_' || b == '/' || b == '.' || b == '=' || b == ':' || b == ',' || b == '+' || b == '@' || b == '%'
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// ansiC quotes s in bash's $'...' form.
func ansiC(s string) string {
	const hex = "0123456789abcdef"
	sb := new(strings.Builder)
	sb.Grow(len(s) + 3)
	sb.WriteString("$'")
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case r == '\'' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(byte(r))
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == utf8.RuneError && size == 1:
			sb.WriteString(`\x`)
			sb.WriteByte(hex[s[0]>>4])
			sb.WriteByte(hex[s[0]&0xf])
		case !unicode.IsPrint(r):
			for i := 0; i < size; i++ {
				sb.WriteString(`\x`)
				sb.WriteByte(hex[s[i]>>4])
				sb.WriteByte(hex[s[i]&0xf])
			}
		default:
			sb.WriteString(s[:size])
		}
		s = s[size:]
	}
	sb.WriteByte('\'')
	return sb.String()
}
