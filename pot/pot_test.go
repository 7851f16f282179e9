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
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Path
	}{
		{"intrinsic", PathIntrinsic},
		{"Accelerated", PathIntrinsic},
		{" native ", PathNative},
		{"asm", PathNative},
	} {
		got, err := ParsePath(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParsePath(%q) = %s, %v", tc.in, got, err)
		}
	}
	if _, err := ParsePath("gcm"); !errors.Is(err, ErrUnknownPath) {
		t.Errorf("expected ErrUnknownPath, got %v", err)
	}
	for _, p := range Paths() {
		got, err := ParsePath(p.String())
		if err != nil || got != p {
			t.Errorf("%s does not round trip: %s, %v", p, got, err)
		}
	}
}

func TestPathsCopy(t *testing.T) {
	ps := Paths()
	ps[0] = PathNative
	if Paths()[0] != PathIntrinsic {
		t.Fatal("Paths returned shared storage")
	}
}

func TestInvalidPath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Path(7).Chainer()
}
