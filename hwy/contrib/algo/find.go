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


package algo

import "github.com/khegeman/floki/hwy"

// FindIf returns the index of the first element of slice that satisfies
// pred, or -1 if there is none.
//
// Full lanes are tested with pred.Apply; the first lane with any match
// stops the scan. The trailing elements that do not fill a lane are tested
// one by one with pred.Test.
func FindIf[T hwy.Lanes, P Predicate[T]](slice []T, pred P) int {
	var o hwy.Unrolled[T]
	n := len(slice)
	i := 0

	for ; i+hwy.N <= n; i += hwy.N {
		if idx := pred.Apply(o.Load(slice[i:])).FindFirstTrue(); idx >= 0 {
			return i + idx
		}
	}

	// Epilogue
	for ; i < n; i++ {
		if pred.Test(slice[i]) {
			return i
		}
	}
	return -1
}

// Find returns the index of the first occurrence of value in slice, or -1.
func Find[T hwy.Lanes](slice []T, value T) int {
	return FindIf(slice, EqualTo[T]{Value: value})
}

// Contains reports whether value is present in slice.
func Contains[T hwy.Lanes](slice []T, value T) bool {
	return Find(slice, value) >= 0
}

// CountIf returns the number of elements in slice that satisfy pred.
func CountIf[T hwy.Lanes, P Predicate[T]](slice []T, pred P) int {
	var o hwy.Unrolled[T]
	count := 0
	hwy.ProcessWithTail(len(slice),
		func(offset int) {
			count += pred.Apply(o.Load(slice[offset:])).CountTrue()
		},
		func(offset, n int) {
			for _, v := range slice[offset : offset+n] {
				if pred.Test(v) {
					count++
				}
			}
		},
	)
	return count
}
