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


// Package algo provides searches over slices that test one lane of values
// per step and finish the remainder with scalar code.
//
// # Find API
//
//   - FindIf(slice, pred) returns the index of the first element satisfying
//     pred, or -1.
//   - Find(slice, value) is FindIf with EqualTo.
//   - CountIf and Contains are built on the same lane loop.
//
// Predicates implement both a lane test (Apply) and a scalar test (Test) so
// that the lane loop and the epilogue agree. The supplied predicates are
// EqualTo, GreaterEqual, GreaterThan and LessThan.
//
// # Example Usage
//
//	import "github.com/khegeman/floki/hwy/contrib/algo"
//
//	// First key not less than 42 in a sorted slice.
//	i := algo.FindIf(keys, algo.GreaterEqual[uint32]{Threshold: 42})
package algo
