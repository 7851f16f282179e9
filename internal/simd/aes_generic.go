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

//go:build !amd64 || purego
// +build !amd64 purego

package simd

func levelFromCPUFeatures() Level { return LevelNone }

// AESENC performs one AES encryption round of a with key: r = MixColumns(ShiftRows(SubBytes(a))) ^ key.
func AESENC(key, a, r *Vec8x16) { aesencGeneric(key, a, r) }

// AESENCLAST performs the final AES encryption round of a with key (no MixColumns).
func AESENCLAST(key, a, r *Vec8x16) { aesenclastGeneric(key, a, r) }

// AESIMC applies InvMixColumns to a.
func AESIMC(a, r *Vec8x16) { aesimcGeneric(a, r) }
