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

// Scalar implements Ops with plain loops over the lanes.
// It is the portable reference target, used when HWY_NO_SIMD is set or no
// vector unit was detected.
type Scalar[T Lanes] struct{}

var _ Ops[float32] = Scalar[float32]{}

func (Scalar[T]) Load(src []T) Vec4[T] {
	var v Vec4[T]
	for i := range N {
		v[i] = src[i]
	}
	return v
}

func (Scalar[T]) Store(v Vec4[T], dst []T) {
	for i := range N {
		dst[i] = v[i]
	}
}

func (Scalar[T]) Min(a, b Vec4[T]) Vec4[T] {
	var result Vec4[T]
	for i := range N {
		result[i] = minLane(a[i], b[i])
	}
	return result
}

func (Scalar[T]) Max(a, b Vec4[T]) Vec4[T] {
	var result Vec4[T]
	for i := range N {
		result[i] = maxLane(a[i], b[i])
	}
	return result
}

func (Scalar[T]) Shuffle(a, b Vec4[T], p Pattern) Vec4[T] {
	var result Vec4[T]
	for i, idx := range p {
		idx &= 7
		if idx < N {
			result[i] = a[idx]
		} else {
			result[i] = b[idx-N]
		}
	}
	return result
}

func (Scalar[T]) Permute(v Vec4[T], p Pattern) Vec4[T] {
	var result Vec4[T]
	for i, idx := range p {
		result[i] = v[idx&3]
	}
	return result
}

func (Scalar[T]) Reverse(v Vec4[T]) Vec4[T] {
	var result Vec4[T]
	for i := range N {
		result[i] = v[N-1-i]
	}
	return result
}

func (Scalar[T]) InterleaveLower(a, b Vec4[T]) Vec4[T] {
	var result Vec4[T]
	half := N / 2
	for i := 0; i < half; i++ {
		result[2*i] = a[i]
		result[2*i+1] = b[i]
	}
	return result
}

func (Scalar[T]) InterleaveUpper(a, b Vec4[T]) Vec4[T] {
	var result Vec4[T]
	half := N / 2
	for i := 0; i < half; i++ {
		result[2*i] = a[half+i]
		result[2*i+1] = b[half+i]
	}
	return result
}

func (Scalar[T]) First(v Vec4[T]) T {
	return v[0]
}
