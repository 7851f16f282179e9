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

import (
	"math/bits"
)

// AESSBox is the AES substitution table, FIPS-197 figure 7.
var AESSBox = func() (sbox [256]uint8) {
	var p, q uint8 = 1, 1
	for {
		// p *= 3
		p ^= (p << 1) ^ (0x1b & -(p >> 7))

		// q /= 3
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		sbox[p] = q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^
			bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4) ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63 // 0 has no inverse
	return sbox
}()

// xtime multiplies a by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func xtime(a uint8) uint8 {
	return (a << 1) ^ (0x1b & -(a >> 7))
}

func gfMul(a, b uint8) uint8 {
	var r uint8
	for b != 0 {
		if b&1 != 0 {
			r ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return r
}

// subShift applies SubBytes and ShiftRows. Byte 4*c+r holds row r of column c.
func subShift(a *Vec8x16) Vec8x16 {
	var t Vec8x16
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[4*c+r] = AESSBox[a[4*((c+r)&3)+r]]
		}
	}
	return t
}

func mixColumns(v *Vec8x16) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := v[c], v[c+1], v[c+2], v[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		v[c+0] = a0 ^ t ^ xtime(a0^a1)
		v[c+1] = a1 ^ t ^ xtime(a1^a2)
		v[c+2] = a2 ^ t ^ xtime(a2^a3)
		v[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

func invMixColumns(v *Vec8x16) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := v[c], v[c+1], v[c+2], v[c+3]
		v[c+0] = gfMul(a0, 14) ^ gfMul(a1, 11) ^ gfMul(a2, 13) ^ gfMul(a3, 9)
		v[c+1] = gfMul(a0, 9) ^ gfMul(a1, 14) ^ gfMul(a2, 11) ^ gfMul(a3, 13)
		v[c+2] = gfMul(a0, 13) ^ gfMul(a1, 9) ^ gfMul(a2, 14) ^ gfMul(a3, 11)
		v[c+3] = gfMul(a0, 11) ^ gfMul(a1, 13) ^ gfMul(a2, 9) ^ gfMul(a3, 14)
	}
}

func aesencGeneric(key, a, r *Vec8x16) {
	t := subShift(a)
	mixColumns(&t)
	PXOR(&t, key, r)
}

func aesenclastGeneric(key, a, r *Vec8x16) {
	t := subShift(a)
	PXOR(&t, key, r)
}

func aesimcGeneric(a, r *Vec8x16) {
	t := *a
	invMixColumns(&t)
	*r = t
}

func subWord(x uint32) uint32 {
	return uint32(AESSBox[x&0xff]) |
		uint32(AESSBox[(x>>8)&0xff])<<8 |
		uint32(AESSBox[(x>>16)&0xff])<<16 |
		uint32(AESSBox[x>>24])<<24
}

// AESKEYGENASSIST computes the key schedule assist words of a with the
// round constant imm. It is always emulated.
func AESKEYGENASSIST(imm uint8, a, r *Vec8x16) {
	d := a.ToVec32x4()
	rcon := uint32(imm)
	x1 := subWord(d[1])
	x3 := subWord(d[3])
	*r = Vec32x4{
		x1,
		bits.RotateLeft32(x1, -8) ^ rcon,
		x3,
		bits.RotateLeft32(x3, -8) ^ rcon,
	}.ToVec8x16()
}
