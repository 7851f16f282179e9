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
	"crypto/rand"
	"encoding/hex"
	"testing"
)

func vec(t testing.TB, s string) Vec8x16 {
	t.Helper()
	var v Vec8x16
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(v) {
		t.Fatalf("bad vector %q", s)
	}
	copy(v[:], b)
	return v
}

// levels returns every level the running CPU supports
func levels() []Level {
	out := []Level{LevelNone}
	if MaxLevel() >= LevelAESNI {
		out = append(out, LevelAESNI)
	}
	return out
}

func withLevel(t *testing.T, l Level, fn func(t *testing.T)) {
	saved := GetLevel()
	defer SetLevel(saved)
	SetLevel(l)
	t.Run(l.String(), fn)
}

func TestSBox(t *testing.T) {
	for _, tc := range []struct {
		in, out uint8
	}{
		{0x00, 0x63},
		{0x01, 0x7c},
		{0x53, 0xed},
		{0xff, 0x16},
	} {
		if got := AESSBox[tc.in]; got != tc.out {
			t.Errorf("sbox[%#02x] = %#02x, expected %#02x", tc.in, got, tc.out)
		}
	}
	var seen [256]bool
	for _, s := range AESSBox {
		if seen[s] {
			t.Fatalf("sbox is not a permutation: %#02x repeats", s)
		}
		seen[s] = true
	}
}

func TestAESRound(t *testing.T) {
	in := vec(t, "000102030405060708090a0b0c0d0e0f")
	rk := vec(t, "101112131415161718191a1b1c1d1e1f")
	for _, l := range levels() {
		withLevel(t, l, func(t *testing.T) {
			var out Vec8x16
			AESENC(&rk, &in, &out)
			if want := vec(t, "7a7b4e5638782546a8c0477a3b813f43"); out != want {
				t.Errorf("AESENC: got %x, expected %x", out[:], want[:])
			}
			AESENCLAST(&rk, &in, &out)
			if want := vec(t, "737a7565e614bd6c28ce6ddee2617134"); out != want {
				t.Errorf("AESENCLAST: got %x, expected %x", out[:], want[:])
			}
			AESIMC(&in, &out)
			if want := vec(t, "0a0f080d0e0b0c090207000506030401"); out != want {
				t.Errorf("AESIMC: got %x, expected %x", out[:], want[:])
			}
		})
	}
}

func TestAESRoundInPlace(t *testing.T) {
	rk := vec(t, "101112131415161718191a1b1c1d1e1f")
	for _, l := range levels() {
		withLevel(t, l, func(t *testing.T) {
			v := vec(t, "000102030405060708090a0b0c0d0e0f")
			AESENC(&rk, &v, &v)
			if want := vec(t, "7a7b4e5638782546a8c0477a3b813f43"); v != want {
				t.Errorf("got %x, expected %x", v[:], want[:])
			}
		})
	}
}

func TestMixColumnsInverse(t *testing.T) {
	for i := 0; i < 64; i++ {
		var v Vec8x16
		if _, err := rand.Read(v[:]); err != nil {
			t.Fatal(err)
		}
		w := v
		invMixColumns(&w)
		mixColumns(&w)
		if w != v {
			t.Fatalf("MixColumns(InvMixColumns(%s)) = %s", v, w)
		}
	}
}

func TestAESKEYGENASSIST(t *testing.T) {
	key := vec(t, "2b7e151628aed2a6abf7158809cf4f3c")
	var out Vec8x16
	AESKEYGENASSIST(0x01, &key, &out)
	if want := vec(t, "34e4b524e5b52434018a84eb8b84eb01"); out != want {
		t.Errorf("got %x, expected %x", out[:], want[:])
	}
}

func TestHardwareMatchesEmulation(t *testing.T) {
	if MaxLevel() < LevelAESNI {
		t.Skip("no AES-NI")
	}
	saved := GetLevel()
	defer SetLevel(saved)

	for i := 0; i < 1000; i++ {
		var key, a Vec8x16
		if _, err := rand.Read(key[:]); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(a[:]); err != nil {
			t.Fatal(err)
		}

		var hw, sw [3]Vec8x16
		SetLevel(LevelAESNI)
		AESENC(&key, &a, &hw[0])
		AESENCLAST(&key, &a, &hw[1])
		AESIMC(&a, &hw[2])
		SetLevel(LevelNone)
		AESENC(&key, &a, &sw[0])
		AESENCLAST(&key, &a, &sw[1])
		AESIMC(&a, &sw[2])

		if hw != sw {
			t.Fatalf("key %s, input %s: hardware %v, emulation %v", key, a, hw, sw)
		}
	}
}

func BenchmarkAESENC(b *testing.B) {
	var key, a Vec8x16
	for _, l := range levels() {
		saved := GetLevel()
		SetLevel(l)
		b.Run(l.String(), func(b *testing.B) {
			b.SetBytes(16)
			for i := 0; i < b.N; i++ {
				AESENC(&key, &a, &a)
			}
		})
		SetLevel(saved)
	}
}
