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

// Package aes implements the AES-128 key schedule used by the
// proof-of-time chain: one expansion produces the encryption round keys
// and the matching round keys of the equivalent inverse cipher.
// Keys, blocks and schedules are plain values in AES byte order, so they
// can be loaded into an XMM register as they are.
package aes

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sean-sn/cmp-pot-aes/ints"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// Rounds is the number of AES-128 rounds.
	Rounds = 10
)

// ErrLength is returned when hex input does not decode to 16 bytes.
var ErrLength = errors.New("aes: expected 16 bytes")

// Key represents a 128-bit AES key
type Key [KeySize]byte

// Block represents a 128-bit AES state
type Block [BlockSize]byte

// Schedule stores the 11 round keys produced by the AES key expansion algorithm.
// Entry 0 is the whitening key.
type Schedule [Rounds + 1]Block

func (k Key) String() string   { return hex.EncodeToString(k[:]) }
func (b Block) String() string { return hex.EncodeToString(b[:]) }

// Xor returns b ^ o.
func (b Block) Xor(o Block) Block {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

func parse16(s string, out *[16]byte) error {
	if hex.DecodedLen(len(s)) != len(out) {
		return fmt.Errorf("%q: %w", s, ErrLength)
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		return fmt.Errorf("aes: parsing %q: %w", s, err)
	}
	return nil
}

// ParseKey decodes a key from 32 hex digits
func ParseKey(s string) (Key, error) {
	var k Key
	err := parse16(s, (*[16]byte)(&k))
	return k, err
}

// ParseBlock decodes a block from 32 hex digits
func ParseBlock(s string) (Block, error) {
	var b Block
	err := parse16(s, (*[16]byte)(&b))
	return b, err
}

// RandomKey creates a 128-bit key with cryptographically strong RNG values
func RandomKey() (Key, error) {
	var key Key
	err := ints.RandomFillSlice(key[:])
	return key, err
}

// RandomBlock creates a 128-bit block with cryptographically strong RNG values
func RandomBlock() (Block, error) {
	var b Block
	err := ints.RandomFillSlice(b[:])
	return b, err
}
