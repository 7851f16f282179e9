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

	"github.com/dchest/siphash"

	"github.com/sean-sn/cmp-pot-aes/aes"
)

// Sweep generates a reproducible sequence of (key, seed block) pairs
// for cross checking the chain implementations over many keys. Pair i
// is the SipHash-128 of the counter i under the sweep's (k0, k1).
type Sweep struct {
	k0, k1 uint64
	n      uint64
}

// NewSweep returns a Sweep positioned at its first pair.
func NewSweep(k0, k1 uint64) *Sweep {
	return &Sweep{k0: k0, k1: k1}
}

func (s *Sweep) derive(domain byte) [16]byte {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], s.n)
	buf[8] = domain
	lo, hi := siphash.Hash128(s.k0, s.k1, buf[:])
	var out [16]byte
	binary.LittleEndian.PutUint64(out[:8], lo)
	binary.LittleEndian.PutUint64(out[8:], hi)
	return out
}

// Next returns the next pair.
func (s *Sweep) Next() (aes.Key, aes.Block) {
	key := aes.Key(s.derive('k'))
	seed := aes.Block(s.derive('b'))
	s.n++
	return key, seed
}

// Run verifies count consecutive pairs at the given iteration count and
// stops at the first mismatch.
func (s *Sweep) Run(count int, iterations uint64) error {
	for i := 0; i < count; i++ {
		key, seed := s.Next()
		if err := VerifyKey(key, seed, iterations); err != nil {
			return err
		}
	}
	return nil
}
