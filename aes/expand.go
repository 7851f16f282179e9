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

package aes

import (
	"github.com/sean-sn/cmp-pot-aes/internal/simd"
)

var roundConstant = [Rounds]uint8{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func vec(b *Block) *simd.Vec8x16 { return (*simd.Vec8x16)(b) }

// expandRound derives round key next from its predecessor prev.
func expandRound(prev, next *Block, rcon uint8) {
	var t1, t2, t3 simd.Vec8x16
	t1 = *vec(prev)
	simd.AESKEYGENASSIST(rcon, &t1, &t2)
	simd.PSHUFD(0xff, &t2, &t2) // t2 := RotWord(SubWord(w3)) ^ rcon in every dword
	simd.PSLLDQ(4, &t1, &t3)
	simd.PXOR(&t1, &t3, &t1)
	simd.PSLLDQ(4, &t3, &t3)
	simd.PXOR(&t1, &t3, &t1)
	simd.PSLLDQ(4, &t3, &t3)
	simd.PXOR(&t1, &t3, &t1) // t1 := w0, w0^w1, w0^w1^w2, w0^w1^w2^w3
	simd.PXOR(&t1, &t2, vec(next))
}

// Expand takes a key and expands it into the encryption and decryption
// round key schedules. Both schedules start with the key itself. The
// decryption schedule holds InvMixColumns of encryption round keys 1..9
// and the last round key unchanged.
func Expand(key Key) (enc, dec Schedule) {
	enc[0] = Block(key)
	dec[0] = Block(key)
	for r := 1; r <= Rounds; r++ {
		expandRound(&enc[r-1], &enc[r], roundConstant[r-1])
		if r == Rounds {
			dec[r] = enc[r]
			break
		}
		simd.AESIMC(vec(&enc[r]), vec(&dec[r]))
	}
	return enc, dec
}

// ExpandFrom takes a key and expands it into 11 encryption round keys
func (p *Schedule) ExpandFrom(key Key) {
	p[0] = Block(key)
	for r := 1; r <= Rounds; r++ {
		expandRound(&p[r-1], &p[r], roundConstant[r-1])
	}
}
