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
	"fmt"
	"os"
	"strings"
)

// Level describes which implementation backs the AES primitives.
type Level uint32

const (
	// Emulate every primitive in Go.
	LevelNone Level = iota

	// Execute AESENC, AESENCLAST and AESIMC on the AES-NI unit.
	LevelAESNI

	// Autodetect the level based on environment variable
	// (POTAES_LEVEL) and detected CPU features.
	LevelDetect = Level(0xFFFFFFFF)
)

const (
	levelEnvVar = "POTAES_LEVEL"
)

// ErrLevel is returned by ParseLevel for an unknown level name.
var ErrLevel = errors.New("simd: unknown level")

var (
	globalLevel Level
	accelerated bool
)

func init() {
	SetLevel(LevelDetect)
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelAESNI:
		return "aesni"
	case LevelDetect:
		return "detect"
	}
	return "unknown"
}

// ParseLevel maps a level name (as printed by String) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "detect", "auto":
		return LevelDetect, nil
	case "none", "generic", "disabled":
		return LevelNone, nil
	case "aesni", "aes":
		return LevelAESNI, nil
	}
	return LevelDetect, fmt.Errorf("%w %q", ErrLevel, s)
}

// MaxLevel returns the highest level the CPU supports.
func MaxLevel() Level {
	return levelFromCPUFeatures()
}

// DetectLevel detects the level to use based on both CPU features and
// the `POTAES_LEVEL` environment variable. The variable can only lower
// the level, never raise it above what the CPU supports.
func DetectLevel() Level {
	detected := levelFromCPUFeatures()
	envLevel, err := ParseLevel(os.Getenv(levelEnvVar))
	if err != nil || envLevel == LevelDetect || envLevel > detected {
		return detected
	}
	return envLevel
}

// GetLevel returns the level currently in use.
func GetLevel() Level {
	return globalLevel
}

// Accelerated reports whether the AES primitives run on hardware.
func Accelerated() bool {
	return accelerated
}

// SetLevel selects the implementation of the AES primitives. Levels
// above MaxLevel are clamped.
//
// NOTE: This function is not thread safe and can be only used at startup
// time or during testing.
func SetLevel(l Level) {
	if l == LevelDetect {
		l = DetectLevel()
	}
	if top := levelFromCPUFeatures(); l > top {
		l = top
	}
	globalLevel = l
	accelerated = l == LevelAESNI
}
