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

package simd

// PXOR computes r = a ^ b.
func PXOR(a, b, r *Vec8x16) {
	x := a.ToVec64x2()
	y := b.ToVec64x2()
	*r = Vec64x2{x[0] ^ y[0], x[1] ^ y[1]}.ToVec8x16()
}

// PSHUFD selects each destination dword from a by the 2-bit fields of imm.
func PSHUFD(imm uint8, a, r *Vec8x16) {
	d := a.ToVec32x4()
	*r = Vec32x4{
		d[imm&0x03],
		d[(imm>>2)&0x03],
		d[(imm>>4)&0x03],
		d[(imm>>6)&0x03],
	}.ToVec8x16()
}

// PSLLDQ shifts a left by imm bytes, shifting in zeroes.
func PSLLDQ(imm uint8, a, r *Vec8x16) {
	var t Vec8x16
	if imm < 16 {
		copy(t[imm:], a[:16-imm])
	}
	*r = t
}
