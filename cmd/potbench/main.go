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

// Command potbench times the proof-of-time chain implementations and
// cross-checks their outputs.
//
//	potbench [-config profile.yaml] [-key hex | -key-from text] [-seed hex]
//	         [-n 1M,1000] [-samples 10] [-paths intrinsic,native]
//	         [-level detect|none|aesni] [-sweep N] [-v]
//
// Flags override the values of the profile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"

	"github.com/sean-sn/cmp-pot-aes/aes"
	"github.com/sean-sn/cmp-pot-aes/internal/simd"
	"github.com/sean-sn/cmp-pot-aes/ints"
	"github.com/sean-sn/cmp-pot-aes/pot"
)

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

var (
	dashconfig  string
	dashkey     string
	dashkeyfrom string
	dashseed    string
	dashn       string
	dashsamples int
	dashpaths   string
	dashlevel   string
	dashsweep   int
	dashv       bool
)

func init() {
	flag.StringVar(&dashconfig, "config", "", "YAML profile to load before applying flags")
	flag.StringVar(&dashkey, "key", defaultKey, "seed key (32 hex digits)")
	flag.StringVar(&dashkeyfrom, "key-from", "", "derive the seed key from this text with BLAKE2b-128")
	flag.StringVar(&dashseed, "seed", defaultSeed, "seed block (32 hex digits)")
	flag.StringVar(&dashn, "n", "1M", "comma-separated iteration counts")
	flag.IntVar(&dashsamples, "samples", defaultSamples, "timed runs per path and iteration count")
	flag.StringVar(&dashpaths, "paths", "intrinsic,native", "comma-separated chain implementations")
	flag.StringVar(&dashlevel, "level", "detect", "AES primitive level: detect, none or aesni")
	flag.IntVar(&dashsweep, "sweep", 0, "cross-check this many derived (key, seed) pairs")
	flag.BoolVar(&dashv, "v", false, "log every sample")
}

// configure builds the profile from the -config file and the flags that
// were set explicitly on the command line.
func configure() (*settings, error) {
	p := defaultProfile()
	if dashconfig != "" {
		if err := loadProfile(dashconfig, &p); err != nil {
			return nil, err
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "key":
			p.Key, p.KeyFrom = dashkey, ""
		case "key-from":
			p.KeyFrom = dashkeyfrom
		case "seed":
			p.Seed = dashseed
		case "n":
			var counts []count
			if counts, err = parseCounts(dashn); err == nil {
				p.Iterations = counts
			}
		case "samples":
			p.Samples = dashsamples
		case "paths":
			p.Paths = splitList(dashpaths)
		case "level":
			p.Level = dashlevel
		case "sweep":
			p.Sweep = dashsweep
		}
	})
	if err != nil {
		return nil, err
	}
	return p.resolve()
}

func measure(lg *log.Logger, s *settings) []measurement {
	var enc aes.Schedule
	enc.ExpandFrom(s.key)

	var out []measurement
	for _, n := range s.iterations {
		for _, path := range s.paths {
			chain := path.Chainer()
			m := measurement{path: path, iterations: n}
			for i := 0; i < s.samples; i++ {
				start := time.Now()
				m.out = chain(&enc, s.seed, n)
				d := time.Since(start)
				m.samples = append(m.samples, d)
				if dashv {
					lg.Printf("%s n=%d sample %d: %s", path, n, i, d)
				}
			}
			out = append(out, m)
		}
	}
	return out
}

// crossCheck runs the oracle on every iteration count. When both paths
// were measured their outputs are compared directly; otherwise the
// chain is evaluated again with both implementations.
func crossCheck(s *settings, ms []measurement) error {
	for _, n := range s.iterations {
		var intrinsic, native *measurement
		for i := range ms {
			if ms[i].iterations != n {
				continue
			}
			switch ms[i].path {
			case pot.PathIntrinsic:
				intrinsic = &ms[i]
			case pot.PathNative:
				native = &ms[i]
			}
		}
		var err error
		if intrinsic != nil && native != nil {
			err = pot.Compare(n, s.seed, intrinsic.out, native.out)
		} else {
			err = pot.VerifyKey(s.key, s.seed, n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// sweepChunk is the number of pairs verified between progress messages.
const sweepChunk = 64

func sweep(lg *log.Logger, s *settings) error {
	k0, err := ints.Random[uint64]()
	if err != nil {
		return err
	}
	k1, err := ints.Random[uint64]()
	if err != nil {
		return err
	}
	lg.Printf("sweep: %d pairs from sweep key %016x%016x", s.sweep, k0, k1)
	chunks := ints.ChunkCount(uint(s.sweep), sweepChunk)
	for _, n := range s.iterations {
		sw := pot.NewSweep(k0, k1)
		left := s.sweep
		for c := uint(0); c < chunks; c++ {
			size := ints.Min(left, sweepChunk)
			if err := sw.Run(size, n); err != nil {
				return err
			}
			left -= size
			if dashv {
				lg.Printf("sweep n=%d: chunk %d/%d ok", n, c+1, chunks)
			}
		}
	}
	return nil
}

func main() {
	flag.Parse()
	s, err := configure()
	if err != nil {
		fatalf("configuration: %s", err)
	}

	runID := uuid.New()
	lg := log.New(os.Stderr, fmt.Sprintf("potbench %s: ", runID.String()[:8]), log.LstdFlags)

	simd.SetLevel(s.level)
	lg.Printf("run %s, level %s (cpu max %s, AES-NI %v), key %s, seed %s",
		runID, simd.GetLevel(), simd.MaxLevel(), cpu.X86.HasAES, s.key, s.seed)

	ms := measure(lg, s)
	printReport(os.Stdout, ms)

	if err := crossCheck(s, ms); err != nil {
		var merr *pot.MismatchError
		if errors.As(err, &merr) {
			fatalf("oracle: %s\ndiff %s", merr, merr.Intrinsic.Xor(merr.Native))
		}
		fatalf("cross-check: %s", err)
	}
	if s.sweep > 0 {
		if err := sweep(lg, s); err != nil {
			fatalf("sweep: %s", err)
		}
	}
	lg.Printf("outputs agree")
}
