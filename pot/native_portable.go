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
	"encoding/binary"
	"math/bits"

	"github.com/sean-sn/cmp-pot-aes/aes"
	"github.com/sean-sn/cmp-pot-aes/internal/simd"
)

// words is a block as four little-endian columns.
type words [4]uint32

// te0..te3 fold SubBytes and MixColumns: te0[x] is the column produced by
// byte x in row 0, te1..te3 the same column rotated for rows 1..3.
var te0, te1, te2, te3 = encTables()

func encTables() (t0, t1, t2, t3 [256]uint32) {
	for i, s := range simd.AESSBox {
		s2 := s<<1 ^ (0x1b & -(s >> 7))
		w := uint32(s2) | uint32(s)<<8 | uint32(s)<<16 | uint32(s2^s)<<24
		t0[i] = w
		t1[i] = bits.RotateLeft32(w, 8)
		t2[i] = bits.RotateLeft32(w, 16)
		t3[i] = bits.RotateLeft32(w, 24)
	}
	return
}

func load(b *aes.Block) words {
	return words{
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16]),
	}
}

func store(b *aes.Block, s *words) {
	binary.LittleEndian.PutUint32(b[0:4], s[0])
	binary.LittleEndian.PutUint32(b[4:8], s[1])
	binary.LittleEndian.PutUint32(b[8:12], s[2])
	binary.LittleEndian.PutUint32(b[12:16], s[3])
}

func encRound(s, k *words) {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]
	s[0] = k[0] ^ te0[uint8(s0)] ^ te1[uint8(s1>>8)] ^ te2[uint8(s2>>16)] ^ te3[uint8(s3>>24)]
	s[1] = k[1] ^ te0[uint8(s1)] ^ te1[uint8(s2>>8)] ^ te2[uint8(s3>>16)] ^ te3[uint8(s0>>24)]
	s[2] = k[2] ^ te0[uint8(s2)] ^ te1[uint8(s3>>8)] ^ te2[uint8(s0>>16)] ^ te3[uint8(s1>>24)]
	s[3] = k[3] ^ te0[uint8(s3)] ^ te1[uint8(s0>>8)] ^ te2[uint8(s1>>16)] ^ te3[uint8(s2>>24)]
}

func subShiftColumn(a, b, c, d uint32) uint32 {
	sbox := &simd.AESSBox
	return uint32(sbox[uint8(a)]) |
		uint32(sbox[uint8(b>>8)])<<8 |
		uint32(sbox[uint8(c>>16)])<<16 |
		uint32(sbox[uint8(d>>24)])<<24
}

func lastRound(s, k *words) {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]
	s[0] = k[0] ^ subShiftColumn(s0, s1, s2, s3)
	s[1] = k[1] ^ subShiftColumn(s1, s2, s3, s0)
	s[2] = k[2] ^ subShiftColumn(s2, s3, s0, s1)
	s[3] = k[3] ^ subShiftColumn(s3, s0, s1, s2)
}

// chainNativePortable mirrors chainNativeAsm with the round keys held
// in locals. iterations must be at least 1.
func chainNativePortable(keys *aes.Schedule, block *aes.Block, iterations uint64) {
	var k [aes.Rounds + 1]words
	for i := range k {
		k[i] = load(&keys[i])
	}
	var kx words // k0 ^ k10
	for j := range kx {
		kx[j] = k[0][j] ^ k[aes.Rounds][j]
	}

	s := load(block)
	for j := range s {
		s[j] ^= k[0][j]
	}
	for n := iterations - 1; n > 0; n-- {
		for r := 1; r < aes.Rounds; r++ {
			encRound(&s, &k[r])
		}
		lastRound(&s, &kx)
	}
	for r := 1; r < aes.Rounds; r++ {
		encRound(&s, &k[r])
	}
	lastRound(&s, &k[aes.Rounds])
	store(block, &s)
}
