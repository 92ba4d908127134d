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
	"bytes"
	"encoding"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// The functions in this file have the shape expected by ValueFromStr
// and its relatives.

// ParseString returns s unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseBytes returns a copy of b.
func ParseBytes(b []byte) ([]byte, error) {
	return bytes.Clone(b), nil
}

// ParseInt parses a base 10 integer that fits in T.
func ParseInt[T constraints.Signed](s string) (T, error) {
	var zero T
	n, err := strconv.ParseInt(s, 10, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return zero, err
	}
	return T(n), nil
}

// ParseUint parses a base 10 unsigned integer that fits in T.
func ParseUint[T constraints.Unsigned](s string) (T, error) {
	var zero T
	n, err := strconv.ParseUint(s, 10, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return zero, err
	}
	return T(n), nil
}

// ParseFloat parses a floating-point number with the precision of T.
func ParseFloat[T constraints.Float](s string) (T, error) {
	var zero T
	f, err := strconv.ParseFloat(s, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return zero, err
	}
	return T(f), nil
}

// ParseText decodes s with T's UnmarshalText method.
// For example, ParseText[netip.Addr] parses an IP address.
func ParseText[T any, P interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	if err := P(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
