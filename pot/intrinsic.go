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
	"github.com/sean-sn/cmp-pot-aes/aes"
	"github.com/sean-sn/cmp-pot-aes/internal/simd"
)

// ChainIntrinsic encrypts input iterations times with enc, re-whitening
// every output with round key 0 before the next iteration. Zero
// iterations return input unchanged.
func ChainIntrinsic(enc *aes.Schedule, input aes.Block, iterations uint64) aes.Block {
	var k [aes.Rounds + 1]*simd.Vec8x16
	for i := range k {
		k[i] = (*simd.Vec8x16)(&enc[i])
	}

	state := simd.Vec8x16(input)
	for ; iterations > 0; iterations-- {
		simd.PXOR(&state, k[0], &state)
		simd.AESENC(k[1], &state, &state)
		simd.AESENC(k[2], &state, &state)
		simd.AESENC(k[3], &state, &state)
		simd.AESENC(k[4], &state, &state)
		simd.AESENC(k[5], &state, &state)
		simd.AESENC(k[6], &state, &state)
		simd.AESENC(k[7], &state, &state)
		simd.AESENC(k[8], &state, &state)
		simd.AESENC(k[9], &state, &state)
		simd.AESENCLAST(k[10], &state, &state)
	}
	return aes.Block(state)
}
