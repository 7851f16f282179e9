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
	"golang.org/x/crypto/blake2b"
)

// DeriveKey compresses arbitrary seed material into a key with
// BLAKE2b-128.
func DeriveKey(material []byte) Key {
	h, err := blake2b.New(KeySize, nil)
	if err != nil {
		panic("aes: DeriveKey: " + err.Error())
	}
	h.Write(material)
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}
