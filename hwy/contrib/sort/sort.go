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
	"go.uber.org/zap"

	"github.com/khegeman/floki/hwy"
)

// useScalar reports whether Sort should run on the Scalar target.
var useScalar = hwy.UseScalar

// Sort sorts data in place in ascending order.
//
// The lane target is picked from the runtime dispatch level: Scalar when no
// vector unit was detected or HWY_NO_SIMD is set, Unrolled otherwise.
// Equal values may be reordered. NaNs are kept but their position is
// unspecified.
func Sort[T hwy.Lanes](data []T) {
	if useScalar() {
		SortWith(hwy.Scalar[T]{}, data)
		return
	}
	SortWith(hwy.Unrolled[T]{}, data)
}

// SortWith sorts data in place in ascending order using the lane target o.
//
// The vectorizable prefix (length rounded down to a multiple of 16) goes
// through the block sorter and the merge passes; the remaining tail is
// sorted by insertion sort and merged in afterwards. Lengths that are not a
// power-of-two number of blocks are logged at debug level but always sorted
// completely.
func SortWith[T hwy.Lanes, O hwy.Ops[T]](o O, data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	reportShortfall(zap.DebugLevel, "sort not fully vectorized", n)

	v := n / blockSize * blockSize
	if v == 0 {
		InsertionSortSmall(data)
		return
	}

	var scratch []T
	if v > blockSize {
		scratch = make([]T, v)
	}
	schedule(o, data[:v], scratch)

	if v < n {
		sortTail(data, v)
	}
}
