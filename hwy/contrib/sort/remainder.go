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

import "github.com/khegeman/floki/hwy"

// setAside moves the unpaired run src[lo:hi] into the remainder run. The
// current remainder, rem values long, starts at src[hi]; the combined run is
// written to dst[lo:hi+rem].
func setAside[T hwy.Lanes, O hwy.Ops[T]](o O, src, dst []T, lo, hi, rem int) {
	if rem == 0 {
		copy(dst[lo:hi], src[lo:hi])
		return
	}
	MergeRuns(o, src[lo:hi], src[hi:hi+rem], dst[lo:hi+rem])
}

// sortTail sorts data[mid:] with the scalar fallback and merges it into the
// already sorted data[:mid].
func sortTail[T hwy.Lanes](data []T, mid int) {
	InsertionSortSmall(data[mid:])
	mergeTail(data, mid)
}

// mergeTail merges the sorted ranges data[:mid] and data[mid:] in place.
// The tail is expected to be short: it is copied aside and the merge runs
// backwards from the end of data, so only the overlapping part of the prefix
// moves.
func mergeTail[T hwy.Lanes](data []T, mid int) {
	if mid <= 0 || mid >= len(data) || !(data[mid] < data[mid-1]) {
		return
	}

	var small [blockSize]T
	var tail []T
	if n := len(data) - mid; n <= len(small) {
		tail = small[:n]
	} else {
		tail = make([]T, n)
	}
	copy(tail, data[mid:])

	i, j := mid-1, len(tail)-1
	for k := len(data) - 1; j >= 0; k-- {
		if i >= 0 && tail[j] < data[i] {
			data[k] = data[i]
			i--
		} else {
			data[k] = tail[j]
			j--
		}
	}
}
