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

// ProcessWithTail walks size elements one lane at a time.
//
// It calls:
//   - fullFn(offset) for each full lane (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of N
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        m := hwy.Equal(o.Load(data[offset:]), key)
//	        count += m.CountTrue()
//	    },
//	    func(offset, count int) {
//	        for _, v := range data[offset : offset+count] { ... }
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	full := size / N
	for i := range full {
		fullFn(i * N)
	}

	if remaining := size % N; remaining > 0 {
		tailFn(full*N, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of N.
func AlignedSize(size int) int {
	return (size + N - 1) / N * N
}

// IsAligned returns true if size is a multiple of N.
func IsAligned(size int) bool {
	return size%N == 0
}
