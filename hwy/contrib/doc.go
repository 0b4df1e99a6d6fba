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


// Package contrib holds the algorithms built on the hwy lane primitive.
//
// # Subpackages
//
//   - sort: lane-parallel merge sort (AA-sort) with its block sorter, merge
//     engine, pass scheduler and remainder handling
//   - algo: lane-at-a-time searches (FindIf, Find, CountIf) with scalar
//     epilogues
//
// # Example
//
//	import (
//	    "github.com/khegeman/floki/hwy/contrib/algo"
//	    "github.com/khegeman/floki/hwy/contrib/sort"
//	)
//
//	sort.Sort(keys)
//	i := algo.FindIf(keys, algo.GreaterEqual[int32]{Threshold: 42})
package contrib
