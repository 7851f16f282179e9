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
	"io"
	"time"

	"github.com/markkurossi/tabulate"
	"golang.org/x/exp/slices"

	"github.com/sean-sn/cmp-pot-aes/aes"
	"github.com/sean-sn/cmp-pot-aes/pot"
)

// measurement holds the timing samples of one path at one iteration count.
type measurement struct {
	path       pot.Path
	iterations uint64
	samples    []time.Duration
	out        aes.Block
}

func (m *measurement) sorted() []time.Duration {
	s := slices.Clone(m.samples)
	slices.Sort(s)
	return s
}

func (m *measurement) min() time.Duration {
	if len(m.samples) == 0 {
		return 0
	}
	return m.sorted()[0]
}

func (m *measurement) median() time.Duration {
	s := m.sorted()
	switch n := len(s); {
	case n == 0:
		return 0
	case n%2 == 1:
		return s[n/2]
	default:
		return (s[n/2-1] + s[n/2]) / 2
	}
}

// perIteration returns the median cost of one chained encryption.
func (m *measurement) perIteration() float64 {
	if m.iterations == 0 {
		return 0
	}
	return float64(m.median().Nanoseconds()) / float64(m.iterations)
}

func printReport(w io.Writer, ms []measurement) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Path").SetAlign(tabulate.ML)
	tab.Header("Iterations").SetAlign(tabulate.MR)
	tab.Header("Samples").SetAlign(tabulate.MR)
	tab.Header("Min").SetAlign(tabulate.MR)
	tab.Header("Median").SetAlign(tabulate.MR)
	tab.Header("ns/iter").SetAlign(tabulate.MR)
	tab.Header("Output").SetAlign(tabulate.ML)

	for i := range ms {
		m := &ms[i]
		row := tab.Row()
		row.Column(m.path.String())
		row.Column(fmt.Sprintf("%d", m.iterations))
		row.Column(fmt.Sprintf("%d", len(m.samples)))
		row.Column(m.min().String())
		row.Column(m.median().String())
		row.Column(fmt.Sprintf("%.2f", m.perIteration()))
		row.Column(m.out.String())
	}
	tab.Print(w)
}
