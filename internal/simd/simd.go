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

// Package simd provides the 128-bit AES and SSE primitives used by the
// proof-of-time loop and the key schedule. Every primitive is named after
// the instruction it stands for. On amd64 with AES-NI the AES primitives
// execute the instruction itself; everywhere else they are emulated in Go.
package simd

import (
	"encoding/binary"
	"fmt"
)

// Vec8x16 is a 128-bit register viewed as 16 bytes in memory order.
type Vec8x16 [16]uint8

// Vec32x4 is a 128-bit register viewed as four little-endian dwords.
type Vec32x4 [4]uint32

// Vec64x2 is a 128-bit register viewed as two little-endian qwords.
type Vec64x2 [2]uint64

func (v Vec8x16) ToVec64x2() Vec64x2 {
	return Vec64x2{
		binary.LittleEndian.Uint64(v[0:8]),
		binary.LittleEndian.Uint64(v[8:16]),
	}
}

func (v Vec8x16) ToVec32x4() Vec32x4 {
	return Vec32x4{
		binary.LittleEndian.Uint32(v[0:4]),
		binary.LittleEndian.Uint32(v[4:8]),
		binary.LittleEndian.Uint32(v[8:12]),
		binary.LittleEndian.Uint32(v[12:16]),
	}
}

func (v Vec64x2) ToVec8x16() Vec8x16 {
	var r Vec8x16
	binary.LittleEndian.PutUint64(r[0:8], v[0])
	binary.LittleEndian.PutUint64(r[8:16], v[1])
	return r
}

func (v Vec32x4) ToVec8x16() Vec8x16 {
	var r Vec8x16
	binary.LittleEndian.PutUint32(r[0:4], v[0])
	binary.LittleEndian.PutUint32(r[4:8], v[1])
	binary.LittleEndian.PutUint32(r[8:12], v[2])
	binary.LittleEndian.PutUint32(r[12:16], v[3])
	return r
}

func (v Vec8x16) String() string {
	return fmt.Sprintf("{%02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x}",
		v[15], v[14], v[13], v[12], v[11], v[10], v[9], v[8],
		v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
}

func (v Vec32x4) String() string {
	return fmt.Sprintf("{%08x, %08x, %08x, %08x}", v[3], v[2], v[1], v[0])
}

func (v Vec64x2) String() string {
	return fmt.Sprintf("{%016x, %016x}", v[1], v[0])
}
