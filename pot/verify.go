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

package pot

import (
	"fmt"

	"github.com/sean-sn/cmp-pot-aes/aes"
)

// MismatchError reports a chain on which the two implementations
// disagree. Any MismatchError is a defect in one of them.
type MismatchError struct {
	Iterations uint64
	Input      aes.Block
	Intrinsic  aes.Block
	Native     aes.Block
	// Offset is the index of the first differing byte.
	Offset int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("pot: chain of %d iterations from %s diverged at byte %d: intrinsic %s, native %s",
		e.Iterations, e.Input, e.Offset, e.Intrinsic, e.Native)
}

// firstDifference returns the index of the first byte where a and b
// differ, or -1 if they are equal.
func firstDifference(a, b aes.Block) int {
	for i, x := range a.Xor(b) {
		if x != 0 {
			return i
		}
	}
	return -1
}

// Compare checks the outputs the two implementations produced for the
// same chain and returns a *MismatchError if they differ.
func Compare(iterations uint64, input, intrinsic, native aes.Block) error {
	if intrinsic == native {
		return nil
	}
	return &MismatchError{
		Iterations: iterations,
		Input:      input,
		Intrinsic:  intrinsic,
		Native:     native,
		Offset:     firstDifference(intrinsic, native),
	}
}

func verify(intrinsic, native Chainer, enc *aes.Schedule, input aes.Block, iterations uint64) (aes.Block, error) {
	want := intrinsic(enc, input, iterations)
	got := native(enc, input, iterations)
	return got, Compare(iterations, input, want, got)
}

// Verify evaluates the chain with both implementations and returns a
// *MismatchError if their outputs are not bit-identical.
func Verify(enc *aes.Schedule, input aes.Block, iterations uint64) error {
	_, err := verify(ChainIntrinsic, ChainNative, enc, input, iterations)
	return err
}

// VerifyKey expands key and calls Verify.
func VerifyKey(key aes.Key, input aes.Block, iterations uint64) error {
	var enc aes.Schedule
	enc.ExpandFrom(key)
	return Verify(&enc, input, iterations)
}

// MustVerify is like Verify but panics on a mismatch. It returns the
// output both implementations agree on.
func MustVerify(enc *aes.Schedule, input aes.Block, iterations uint64) aes.Block {
	out, err := verify(ChainIntrinsic, ChainNative, enc, input, iterations)
	if err != nil {
		panic(err)
	}
	return out
}
