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

package hwy

// Ops is the capability set the sorting engine is written against.
// Every implementation must return bit-identical results; they differ only in
// how the work is laid out for the compiler.
type Ops[T Lanes] interface {
	// Load reads the first four elements of src into a vector.
	Load(src []T) Vec4[T]

	// Store writes the four lanes of v to the start of dst.
	Store(v Vec4[T], dst []T)

	// Min returns the lane-wise minimum of a and b.
	Min(a, b Vec4[T]) Vec4[T]

	// Max returns the lane-wise maximum of a and b. Min and Max are
	// complementary: lane-wise, {Min(a,b), Max(a,b)} is always {a, b}.
	Max(a, b Vec4[T]) Vec4[T]

	// Shuffle builds a vector from the lanes of a (indices 0..3) and b
	// (indices 4..7) according to p.
	Shuffle(a, b Vec4[T], p Pattern) Vec4[T]

	// Permute rearranges the lanes of a single vector according to p.
	Permute(v Vec4[T], p Pattern) Vec4[T]

	// Reverse reverses the order of lanes.
	Reverse(v Vec4[T]) Vec4[T]

	// InterleaveLower interleaves the lower halves of a and b.
	// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
	InterleaveLower(a, b Vec4[T]) Vec4[T]

	// InterleaveUpper interleaves the upper halves of a and b.
	// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
	InterleaveUpper(a, b Vec4[T]) Vec4[T]

	// First returns lane 0.
	First(v Vec4[T]) T
}

// minLane and maxLane are the scalar kernels shared by every target.
// Both pick by the same comparison so that an unordered pair (NaN) is passed
// through unchanged instead of being duplicated.
func minLane[T Lanes](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxLane[T Lanes](a, b T) T {
	if b < a {
		return a
	}
	return b
}

// Set returns a vector with every lane equal to value.
func Set[T Lanes](value T) Vec4[T] {
	return Vec4[T]{value, value, value, value}
}

// Zero returns a vector with all lanes set to zero.
func Zero[T Lanes]() Vec4[T] {
	return Vec4[T]{}
}
