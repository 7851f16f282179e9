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
)

// ChainNative computes the same function as ChainIntrinsic with a
// hand-scheduled loop: the round keys are loaded once, the last round
// of every iteration but the final one uses k0^k10 so that it also
// whitens the next input, and the final iteration is peeled off to
// finish with k10 alone.
//
// On amd64 with AES-NI the loop is assembly. Elsewhere a table-driven
// Go routine with the same structure runs instead.
func ChainNative(enc *aes.Schedule, input aes.Block, iterations uint64) aes.Block {
	if iterations == 0 {
		return input
	}
	chainNative(enc, &input, iterations)
	return input
}
