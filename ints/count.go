// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package ints

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrCount is returned by ParseCount for malformed or out of range input
var ErrCount = errors.New("invalid count")

// ParseCount parses a non-negative count into T. Besides plain decimal
// it accepts '_' digit separators, a k/M/G suffix (powers of 1000) and
// a decimal exponent ("1e6"). Values that do not fit T are rejected.
func ParseCount[T constraints.Unsigned](s string) (T, error) {
	str := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	mult := uint64(1)
	if n := len(str); n > 0 {
		switch str[n-1] {
		case 'k', 'K':
			mult = 1e3
		case 'm', 'M':
			mult = 1e6
		case 'g', 'G':
			mult = 1e9
		}
		if mult != 1 {
			str = str[:n-1]
		}
	}

	var v uint64
	var err error
	if mant, exp, ok := strings.Cut(strings.ToLower(str), "e"); ok {
		v, err = strconv.ParseUint(mant, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %s", ErrCount, s, err)
		}
		e, err := strconv.ParseUint(exp, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %s", ErrCount, s, err)
		}
		for ; e > 0; e-- {
			if v > math.MaxUint64/10 {
				return 0, fmt.Errorf("%w %q: overflow", ErrCount, s)
			}
			v *= 10
		}
	} else {
		v, err = strconv.ParseUint(str, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %s", ErrCount, s, err)
		}
	}

	if v > math.MaxUint64/mult {
		return 0, fmt.Errorf("%w %q: overflow", ErrCount, s)
	}
	v *= mult
	if uint64(T(v)) != v {
		return 0, fmt.Errorf("%w %q: overflow", ErrCount, s)
	}
	return T(v), nil
}
