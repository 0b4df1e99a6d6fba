// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"fmt"
	"math/bits"

	"github.com/khegeman/floki/hwy"
)

// blockSize is the number of scalars handled by one BitonicSort16 call.
const blockSize = 4 * hwy.N

// Plan describes the work Sort does for a slice of a given length. It depends
// only on the length, never on the values.
type Plan struct {
	// Len is the slice length.
	Len int

	// Vectorizable is Len rounded down to a multiple of 16.
	Vectorizable int

	// Tail is the number of trailing scalars sorted by the scalar fallback.
	Tail int

	// Blocks is Vectorizable / 16.
	Blocks int

	// Passes is the number of merge passes, floor(log2(Blocks)).
	Passes int

	// SetAside has one entry per pass: the run length (in scalars) moved to
	// the remainder at that pass, or 0 if the run count was even.
	SetAside []int

	// Remainder is the length of the remainder run after the last pass.
	Remainder int

	// FinalMerge is true when the remainder run is merged into the main run
	// after the last pass.
	FinalMerge bool

	// ResultInScratch is true when the sorted prefix ends up in the scratch
	// buffer and has to be copied back.
	ResultInScratch bool
}

// PlanFor computes the Plan for a slice of length n.
func PlanFor(n int) Plan {
	if n < 0 {
		n = 0
	}
	p := Plan{
		Len:          n,
		Vectorizable: n / blockSize * blockSize,
	}
	p.Tail = n - p.Vectorizable
	p.Blocks = p.Vectorizable / blockSize
	if p.Blocks == 0 {
		return p
	}
	p.Passes = bits.Len(uint(p.Blocks)) - 1

	run, runs := blockSize, p.Blocks
	for runs > 1 {
		setAside := 0
		if runs%2 == 1 {
			setAside = run
			p.Remainder += run
		}
		p.SetAside = append(p.SetAside, setAside)
		run *= 2
		runs /= 2
	}
	p.FinalMerge = p.Remainder > 0

	swaps := p.Passes
	if p.FinalMerge {
		swaps++
	}
	p.ResultInScratch = swaps%2 == 1
	return p
}

// PowerOfTwo reports whether the plan needs neither remainder nor tail
// handling: the block count is a power of two and Len is a multiple of 16.
func (p Plan) PowerOfTwo() bool {
	return p.Blocks > 0 && p.Blocks&(p.Blocks-1) == 0 && p.Tail == 0
}

// Shortfall returns a *ShortfallError when part of the slice cannot go
// through the plain block-and-merge pipeline, or nil. Slices of length 0 or
// 1 never fall short.
func (p Plan) Shortfall() error {
	if p.Len <= 1 || p.PowerOfTwo() {
		return nil
	}
	return &ShortfallError{
		Len:          p.Len,
		Vectorizable: p.Vectorizable,
		Tail:         p.Tail,
		Remainder:    p.Remainder,
	}
}

// ShortfallError reports that a slice length is unsuitable for full
// vectorization. It is a diagnostic: Sort still sorts the whole slice.
type ShortfallError struct {
	Len          int
	Vectorizable int
	Tail         int
	Remainder    int
}

func (e *ShortfallError) Error() string {
	if e.Vectorizable == 0 {
		return fmt.Sprintf("sort: length %d is shorter than one block of %d, using scalar sort", e.Len, blockSize)
	}
	return fmt.Sprintf("sort: length %d is not a power-of-two number of %d-blocks (vectorizable %d, remainder run %d, scalar tail %d)",
		e.Len, blockSize, e.Vectorizable, e.Remainder, e.Tail)
}
