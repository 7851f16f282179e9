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
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	k, err := ParseKey("9a84940ffef5b0d70199fc67f46ea27a")
	if err != nil {
		t.Fatal(err)
	}
	if k[0] != 0x9a || k[15] != 0x7a {
		t.Fatalf("unexpected key bytes %x", k[:])
	}
	if k.String() != "9a84940ffef5b0d70199fc67f46ea27a" {
		t.Fatalf("round trip: %s", k)
	}

	for _, bad := range []string{"", "d666", "d666ccd8d593c23da8db6b5b1413b13a00"} {
		if _, err := ParseBlock(bad); !errors.Is(err, ErrLength) {
			t.Errorf("ParseBlock(%q): expected ErrLength, got %v", bad, err)
		}
	}
	if _, err := ParseBlock("z666ccd8d593c23da8db6b5b1413b13a"); err == nil || errors.Is(err, ErrLength) {
		t.Errorf("expected a hex error, got %v", err)
	}
}

func TestBlockXor(t *testing.T) {
	a := Block{0: 0xff, 15: 0x0f}
	b := Block{0: 0x0f, 15: 0x0f}
	if got := a.Xor(b); got != (Block{0: 0xf0}) {
		t.Fatalf("got %s", got)
	}
	if a[0] != 0xff {
		t.Fatal("Xor modified its receiver")
	}
}

func TestDeriveKey(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"", "cae66941d9efbd404e4d88758ea67670"},
		{"proof-of-time", "4ce32129efdc49b280a9790679787151"},
	} {
		if got := DeriveKey([]byte(tc.in)).String(); got != tc.out {
			t.Errorf("DeriveKey(%q) = %s, expected %s", tc.in, got, tc.out)
		}
	}
}

func TestRandom(t *testing.T) {
	a, err := RandomKey()
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomKey()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two random keys are equal")
	}
}
