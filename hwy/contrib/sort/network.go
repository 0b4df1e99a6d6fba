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

// =============================================================================
// Fixed 16-element sorting network
// =============================================================================
//
// Every step takes its lanes by value and returns the new lanes. There is no
// data-dependent control flow anywhere in this file.

// Shuffle patterns of the two-vector merge ladder in mergeSortedVectors.
var (
	pattern0137 = hwy.Pattern{0, 1, 3, 7}
	pattern5264 = hwy.Pattern{5, 2, 6, 4}
	pattern0152 = hwy.Pattern{0, 1, 5, 2}
	pattern6374 = hwy.Pattern{6, 3, 7, 4}
)

// compareSwap returns the lane-wise minimum and maximum of a and b.
func compareSwap[T hwy.Lanes, O hwy.Ops[T]](o O, a, b hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T]) {
	return o.Min(a, b), o.Max(a, b)
}

// sortColumns treats a, b, c, d as the rows of a 4x4 matrix and sorts each
// column ascending with a five-comparator network.
func sortColumns[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, c, d hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T]) {
	minab, maxab := compareSwap(o, a, b)
	mincd, maxcd := compareSwap(o, c, d)

	lo, s := compareSwap(o, minab, mincd)
	t, hi := compareSwap(o, maxab, maxcd)
	mid1, mid2 := compareSwap(o, s, t)

	return lo, mid1, mid2, hi
}

// transpose4 turns the rows a, b, c, d into the columns of the same matrix.
func transpose4[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, c, d hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T]) {
	x := o.InterleaveLower(a, b) // a0 b0 a1 b1
	y := o.InterleaveUpper(a, b) // a2 b2 a3 b3
	z := o.InterleaveLower(c, d) // c0 d0 c1 d1
	w := o.InterleaveUpper(c, d) // c2 d2 c3 d3

	return o.Shuffle(x, z, hwy.Pattern0145),
		o.Shuffle(x, z, hwy.Pattern2367),
		o.Shuffle(y, w, hwy.Pattern0145),
		o.Shuffle(y, w, hwy.Pattern2367)
}

// mergeSortedVectors merges two ascending lanes into one ascending run of 8
// split across the two returned lanes.
func mergeSortedVectors[T hwy.Lanes, O hwy.Ops[T]](o O, a, b hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T]) {
	lo, hi := compareSwap(o, a, b)
	hi = o.Permute(hi, hwy.Pattern2301)

	min2, max2 := compareSwap(o, lo, hi)
	lo = o.Shuffle(min2, max2, pattern0137)
	hi = o.Shuffle(min2, max2, pattern5264)

	min3, max3 := compareSwap(o, lo, hi)
	return o.Shuffle(min3, max3, pattern0152), o.Shuffle(min3, max3, pattern6374)
}

// reverseMinMax is the first level of the 16-wide bitonic merge: a,b and
// c,d are ascending runs of 8, and comparing a,b against the reversal of c,d
// splits the 16 values into a low and a high bitonic half.
func reverseMinMax[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, c, d hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T]) {
	cr := o.Reverse(c)
	dr := o.Reverse(d)
	return o.Min(a, dr), o.Min(b, cr), o.Max(a, dr), o.Max(b, cr)
}

// laneMerge sorts a single bitonic lane: compare at distance 2, then at
// distance 1.
func laneMerge[T hwy.Lanes, O hwy.Ops[T]](o O, v hwy.Vec4[T]) hwy.Vec4[T] {
	swapped := o.Permute(v, hwy.Pattern2301)
	min1, max1 := compareSwap(o, v, swapped)

	near := o.Shuffle(min1, max1, hwy.Pattern0145)
	far := o.Shuffle(min1, max1, hwy.Pattern1054)
	min2, max2 := compareSwap(o, near, far)

	return o.Shuffle(min2, max2, hwy.Pattern0426)
}

// bitonicMerge merges the ascending runs a,b and c,d (8 values each) into
// one ascending run of 16 held in the four returned lanes.
func bitonicMerge[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, c, d hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T]) {
	a, b, c, d = reverseMinMax(o, a, b, c, d)
	a, b = compareSwap(o, a, b)
	c, d = compareSwap(o, c, d)
	return laneMerge(o, a), laneMerge(o, b), laneMerge(o, c), laneMerge(o, d)
}

// BitonicSort16 sorts the 16 values held in a, b, c, d. Reading the returned
// lanes in order yields them ascending.
func BitonicSort16[T hwy.Lanes, O hwy.Ops[T]](o O, a, b, c, d hwy.Vec4[T]) (hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T], hwy.Vec4[T]) {
	a, b, c, d = sortColumns(o, a, b, c, d)
	a, b, c, d = transpose4(o, a, b, c, d)
	a, b = mergeSortedVectors(o, a, b)
	c, d = mergeSortedVectors(o, c, d)
	return bitonicMerge(o, a, b, c, d)
}
