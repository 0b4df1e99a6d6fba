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
	"slices"

	"go.uber.org/zap"

	"github.com/khegeman/floki/hwy"
)

// sortPow2 is the restrictive form of the engine: it only vectorizes slices
// made of a power-of-two number of 16-blocks with no tail, and hands every
// other slice to slices.Sort after logging a warning. Passes run two at a
// time so that data is the source of every even pass; an odd pass count
// leaves the result in scratch, which is copied back.
//
// It shares the block sorter and merge engine with SortWith but none of the
// remainder bookkeeping, which makes it a reference for the simple case.
func sortPow2[T hwy.Lanes, O hwy.Ops[T]](o O, data []T) {
	if len(data) <= 1 {
		return
	}
	p := PlanFor(len(data))
	if !p.PowerOfTwo() {
		reportShortfall(zap.WarnLevel, "sort not vectorized, length must be a power-of-two number of blocks", len(data))
		slices.Sort(data)
		return
	}

	sortBlocks(o, data)
	temp := make([]T, len(data))

	run := blockSize
	pass := func(src, dst []T) {
		mergePass(o, src, dst, run, len(data)/(2*run))
		run *= 2
	}

	for loop := 0; loop+1 < p.Passes; loop += 2 {
		pass(data, temp)
		pass(temp, data)
	}
	if p.Passes%2 == 1 {
		pass(data, temp)
		copy(data, temp)
	}
}
