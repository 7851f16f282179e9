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

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"

	"github.com/sean-sn/cmp-pot-aes/aes"
	"github.com/sean-sn/cmp-pot-aes/internal/simd"
	"github.com/sean-sn/cmp-pot-aes/ints"
	"github.com/sean-sn/cmp-pot-aes/pot"
)

const (
	defaultKey        = "9a84940ffef5b0d70199fc67f46ea27a"
	defaultSeed       = "d666ccd8d593c23da8db6b5b1413b13a"
	defaultIterations = 1000000
	defaultSamples    = 10
)

// count is an iteration count that may be written as a YAML number
// or as a string accepted by ints.ParseCount ("1M", "1_000").
type count uint64

func (c *count) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	s = strings.Replace(strings.ToLower(s), "e+", "e", 1)
	v, err := ints.ParseCount[uint64](s)
	if err != nil {
		return err
	}
	*c = count(v)
	return nil
}

// profile is the YAML form of a benchmark run.
type profile struct {
	Key        string   `json:"key,omitempty"`
	KeyFrom    string   `json:"keyFrom,omitempty"`
	Seed       string   `json:"seed,omitempty"`
	Iterations []count  `json:"iterations,omitempty"`
	Samples    int      `json:"samples,omitempty"`
	Paths      []string `json:"paths,omitempty"`
	Level      string   `json:"level,omitempty"`
	Sweep      int      `json:"sweep,omitempty"`
}

func defaultProfile() profile {
	return profile{
		Key:        defaultKey,
		Seed:       defaultSeed,
		Iterations: []count{defaultIterations},
		Samples:    defaultSamples,
		Paths:      []string{pot.PathIntrinsic.String(), pot.PathNative.String()},
		Level:      simd.LevelDetect.String(),
	}
}

// loadProfile overlays the fields present in the YAML file at path onto p.
func loadProfile(path string, p *profile) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(buf, p); err != nil {
		return fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return nil
}

// settings is a validated profile.
type settings struct {
	key        aes.Key
	seed       aes.Block
	iterations []uint64
	samples    int
	paths      []pot.Path
	level      simd.Level
	sweep      int
}

func (p *profile) resolve() (*settings, error) {
	s := &settings{samples: p.Samples, sweep: p.Sweep}
	var err error
	if p.KeyFrom != "" {
		s.key = aes.DeriveKey([]byte(p.KeyFrom))
	} else if s.key, err = aes.ParseKey(p.Key); err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	if s.seed, err = aes.ParseBlock(p.Seed); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if len(p.Iterations) == 0 {
		return nil, fmt.Errorf("no iteration counts")
	}
	for _, c := range p.Iterations {
		s.iterations = append(s.iterations, uint64(c))
	}
	if s.samples < 1 {
		return nil, fmt.Errorf("samples must be positive, got %d", s.samples)
	}
	if s.sweep < 0 {
		return nil, fmt.Errorf("sweep must not be negative, got %d", s.sweep)
	}
	if len(p.Paths) == 0 {
		return nil, fmt.Errorf("no paths")
	}
	for _, name := range p.Paths {
		path, err := pot.ParsePath(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(s.paths, path) {
			return nil, fmt.Errorf("path %s listed more than once", path)
		}
		s.paths = append(s.paths, path)
	}
	if s.level, err = simd.ParseLevel(p.Level); err != nil {
		return nil, err
	}
	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseCounts(s string) ([]count, error) {
	var out []count
	for _, f := range splitList(s) {
		v, err := ints.ParseCount[uint64](f)
		if err != nil {
			return nil, err
		}
		out = append(out, count(v))
	}
	return out, nil
}
