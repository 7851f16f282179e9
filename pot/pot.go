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

// Package pot evaluates the sequential AES-128 proof-of-time chain.
//
// A chain of n iterations encrypts a block n times under one key, each
// output becoming the next input:
//
//	state = input
//	repeat n times:
//		state = AES-128(schedule, state)
//
// Nothing about a single AES invocation is slow; the delay comes from
// every iteration depending on the previous one. Two implementations
// of the chain are maintained side by side:
//
//   - ChainIntrinsic is a Go loop issuing one primitive per AES round,
//   - ChainNative is a hand-scheduled routine that keeps the round keys
//     in registers for the whole chain.
//
// They share no code. Verify runs both and reports any divergence.
package pot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sean-sn/cmp-pot-aes/aes"
)

// Chainer is the signature shared by every chain implementation.
// The schedule is only read.
type Chainer func(enc *aes.Schedule, input aes.Block, iterations uint64) aes.Block

// Path identifies one implementation of the chain.
type Path uint8

const (
	// PathIntrinsic selects ChainIntrinsic.
	PathIntrinsic Path = iota
	// PathNative selects ChainNative.
	PathNative
)

// ErrUnknownPath is returned by ParsePath.
var ErrUnknownPath = errors.New("pot: unknown path")

var paths = []Path{PathIntrinsic, PathNative}

// Paths returns every chain implementation.
func Paths() []Path {
	return append([]Path(nil), paths...)
}

func (p Path) String() string {
	switch p {
	case PathIntrinsic:
		return "intrinsic"
	case PathNative:
		return "native"
	}
	return fmt.Sprintf("Path(%d)", uint8(p))
}

// ParsePath maps a path name (as printed by String) to a Path.
func ParsePath(s string) (Path, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intrinsic", "accelerated":
		return PathIntrinsic, nil
	case "native", "asm":
		return PathNative, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPath, s)
}

// Chainer returns the implementation behind p.
func (p Path) Chainer() Chainer {
	switch p {
	case PathIntrinsic:
		return ChainIntrinsic
	case PathNative:
		return ChainNative
	}
	panic("pot: invalid path " + p.String())
}

// Chain evaluates the chain with the implementation behind p.
func (p Path) Chain(enc *aes.Schedule, input aes.Block, iterations uint64) aes.Block {
	return p.Chainer()(enc, input, iterations)
}
