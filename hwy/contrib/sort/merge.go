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

	"github.com/khegeman/floki/hwy"
)

// pairSize is the number of scalars the merge engine consumes per step:
// two lanes.
const pairSize = 2 * hwy.N

// mergeAndWrite merges the candidate pair a1,a2 with the incoming pair
// b1,b2, stores the lower 8 values at the start of dst and returns the upper
// 8 as the next candidate.
func mergeAndWrite[T hwy.Lanes, O hwy.Ops[T]](o O, dst []T, a1, a2, b1, b2 hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T]) {
	lo1, lo2, hi1, hi2 := bitonicMerge(o, a1, a2, b1, b2)
	o.Store(lo1, dst[0:])
	o.Store(lo2, dst[hwy.N:])
	return hi1, hi2
}

// loadPair reads two consecutive lanes starting at src[0].
func loadPair[T hwy.Lanes, O hwy.Ops[T]](o O, src []T) (hwy.Vec4[T], hwy.Vec4[T]) {
	return o.Load(src[0:]), o.Load(src[hwy.N:])
}

// MergeRuns merges the ascending runs a and b into dst.
//
// len(a) and len(b) must be non-zero multiples of 8 (two lanes), they may
// differ, and dst must hold len(a)+len(b) values without aliasing a or b.
//
// The merge keeps a candidate pair of lanes holding the largest 8 values seen
// so far. Each step pulls the next pair from whichever run has the smaller
// head, bitonic-merges it against the candidate, emits the lower 8 values and
// keeps the upper 8. Once either run is exhausted the other one is drained the
// same way and the final candidate is flushed.
func MergeRuns[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, dst []T) {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 || la%pairSize != 0 || lb%pairSize != 0 {
		panic(fmt.Sprintf("sort: MergeRuns needs non-empty runs in multiples of %d, got %d and %d", pairSize, la, lb))
	}
	if len(dst) < la+lb {
		panic(fmt.Sprintf("sort: MergeRuns destination holds %d values, need %d", len(dst), la+lb))
	}

	a1, a2 := loadPair(o, a)
	b1, b2 := loadPair(o, b)
	ia, ib, out := pairSize, pairSize, 0

	for {
		a1, a2 = mergeAndWrite(o, dst[out:], a1, a2, b1, b2)
		out += pairSize
		if ia == la || ib == lb {
			break
		}

		// Head-of-run probe: only the first scalar of each run's next lane
		// is compared.
		if a[ia] < b[ib] {
			b1, b2 = loadPair(o, a[ia:])
			ia += pairSize
		} else {
			b1, b2 = loadPair(o, b[ib:])
			ib += pairSize
		}
	}

	for ; ia < la; ia += pairSize {
		b1, b2 = loadPair(o, a[ia:])
		a1, a2 = mergeAndWrite(o, dst[out:], a1, a2, b1, b2)
		out += pairSize
	}
	for ; ib < lb; ib += pairSize {
		b1, b2 = loadPair(o, b[ib:])
		a1, a2 = mergeAndWrite(o, dst[out:], a1, a2, b1, b2)
		out += pairSize
	}

	o.Store(a1, dst[out:])
	o.Store(a2, dst[out+hwy.N:])
}
