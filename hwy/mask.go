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

import "math/bits"

// Mask4 is the result of a lane-wise comparison: bit i is set if lane i
// satisfied the comparison.
type Mask4 uint8

// allLanes has one bit per lane.
const allLanes Mask4 = 1<<N - 1

// FirstN returns a mask with the first n lanes active.
// n is clamped to [0, N].
func FirstN(n int) Mask4 {
	if n <= 0 {
		return 0
	}
	if n >= N {
		return allLanes
	}
	return Mask4(1)<<n - 1
}

// And returns the lanes active in both m and other.
func (m Mask4) And(other Mask4) Mask4 {
	return m & other
}

// AllTrue returns true if every lane is active.
func (m Mask4) AllTrue() bool {
	return m&allLanes == allLanes
}

// AnyTrue returns true if at least one lane is active.
func (m Mask4) AnyTrue() bool {
	return m&allLanes != 0
}

// CountTrue returns the number of active lanes.
func (m Mask4) CountTrue() int {
	return bits.OnesCount8(uint8(m & allLanes))
}

// FindFirstTrue returns the index of the first active lane, or -1.
func (m Mask4) FindFirstTrue() int {
	if m&allLanes == 0 {
		return -1
	}
	return bits.TrailingZeros8(uint8(m))
}

// GetBit returns whether lane i is active.
func (m Mask4) GetBit(i int) bool {
	if i < 0 || i >= N {
		return false
	}
	return m&(1<<i) != 0
}

func compare[T Lanes](a, b Vec4[T], pred func(x, y T) bool) Mask4 {
	var m Mask4
	for i := range N {
		if pred(a[i], b[i]) {
			m |= 1 << i
		}
	}
	return m
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec4[T]) Mask4 {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec4[T]) Mask4 {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec4[T]) Mask4 {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec4[T]) Mask4 {
	return compare(a, b, func(x, y T) bool { return x >= y })
}
