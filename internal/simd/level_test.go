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
	"errors"
	"testing"
)

func TestDetectLevel(t *testing.T) {
	top := MaxLevel()
	for _, tc := range []struct {
		env  string
		want Level
	}{
		{"", top},
		{"none", LevelNone},
		{"GENERIC", LevelNone},
		{"aesni", top},
		{"bogus", top},
		{"auto", top},
		{" disabled ", LevelNone},
		{"AES", top},
	} {
		t.Setenv(levelEnvVar, tc.env)
		if got := DetectLevel(); got != tc.want {
			t.Errorf("%s=%q: got %s, expected %s", levelEnvVar, tc.env, got, tc.want)
		}
	}
}

func TestSetLevelClamps(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelAESNI)
	if GetLevel() > MaxLevel() {
		t.Fatalf("level %s above supported %s", GetLevel(), MaxLevel())
	}
	if Accelerated() != (GetLevel() == LevelAESNI) {
		t.Fatal("Accelerated() out of sync with GetLevel()")
	}

	SetLevel(LevelNone)
	if GetLevel() != LevelNone || Accelerated() {
		t.Fatalf("got level %s, accelerated %v", GetLevel(), Accelerated())
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelNone, LevelAESNI, LevelDetect} {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("%s does not round trip: %s, %v", l, got, err)
		}
	}
	if got, err := ParseLevel(""); err != nil || got != LevelDetect {
		t.Errorf("empty level: %s, %v", got, err)
	}
	if _, err := ParseLevel("avx512"); !errors.Is(err, ErrLevel) {
		t.Errorf("expected ErrLevel, got %v", err)
	}
}

func TestDetectLevelAcceptsParseLevelNames(t *testing.T) {
	top := MaxLevel()
	for _, name := range []string{"", "detect", "auto", "none", "generic", "disabled", "aesni", "aes"} {
		want, err := ParseLevel(name)
		if err != nil {
			t.Fatal(err)
		}
		if want == LevelDetect || want > top {
			want = top
		}
		t.Setenv(levelEnvVar, name)
		if got := DetectLevel(); got != want {
			t.Errorf("%s=%q: got %s, expected %s", levelEnvVar, name, got, want)
		}
	}
}
