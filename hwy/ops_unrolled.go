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

// Unrolled implements Ops with every lane written out explicitly.
// There are no loops or slices in the hot paths, which lets the compiler keep
// a Vec4 in registers and drop bounds checks after the first access.
type Unrolled[T Lanes] struct{}

var _ Ops[float32] = Unrolled[float32]{}

func (Unrolled[T]) Load(src []T) Vec4[T] {
	_ = src[3]
	return Vec4[T]{src[0], src[1], src[2], src[3]}
}

func (Unrolled[T]) Store(v Vec4[T], dst []T) {
	_ = dst[3]
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

func (Unrolled[T]) Min(a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		minLane(a[0], b[0]),
		minLane(a[1], b[1]),
		minLane(a[2], b[2]),
		minLane(a[3], b[3]),
	}
}

func (Unrolled[T]) Max(a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		maxLane(a[0], b[0]),
		maxLane(a[1], b[1]),
		maxLane(a[2], b[2]),
		maxLane(a[3], b[3]),
	}
}

func (Unrolled[T]) Shuffle(a, b Vec4[T], p Pattern) Vec4[T] {
	var ab [2 * N]T
	copy(ab[:N], a[:])
	copy(ab[N:], b[:])
	return Vec4[T]{ab[p[0]&7], ab[p[1]&7], ab[p[2]&7], ab[p[3]&7]}
}

func (Unrolled[T]) Permute(v Vec4[T], p Pattern) Vec4[T] {
	return Vec4[T]{v[p[0]&3], v[p[1]&3], v[p[2]&3], v[p[3]&3]}
}

func (Unrolled[T]) Reverse(v Vec4[T]) Vec4[T] {
	return Vec4[T]{v[3], v[2], v[1], v[0]}
}

func (Unrolled[T]) InterleaveLower(a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0], b[0], a[1], b[1]}
}

func (Unrolled[T]) InterleaveUpper(a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[2], b[2], a[3], b[3]}
}

func (Unrolled[T]) First(v Vec4[T]) T {
	return v[0]
}
