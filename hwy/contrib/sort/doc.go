// Package sort provides a lane-parallel merge sort (AA-sort) for slices of
// fixed-width numbers.
//
// # Algorithm
//
// Sorting happens in four stages, each built from the hwy.Ops lane
// primitives:
//   - Block sorter: every 16 values (4 lanes) are sorted by a fixed,
//     branch-free network (column sort, transpose, two-lane merges and a
//     16-wide bitonic merge).
//   - Merge engine: two sorted runs are merged 8 values at a time by
//     bitonic-merging a candidate pair of lanes against the next pair taken
//     from the run with the smaller head.
//   - Pass scheduler: merge passes double the run length, alternating between
//     the slice and a scratch buffer of the same size.
//   - Remainder handler: when a pass has an odd number of runs the last one
//     is set aside and merged back after the final pass; the values that do
//     not fill a 16-block are insertion-sorted and merged into the result.
//
// The amount of work depends only on the slice length, never on the values.
//
// # Supported Types
//
// All hwy.Lanes types: float32, float64 and the 8 to 64-bit signed and
// unsigned integers. The order is the built-in < of the type; there is no
// comparator parameter and equal values may be reordered.
//
// # Example Usage
//
//	import "github.com/khegeman/floki/hwy/contrib/sort"
//
//	func ProcessData(data []int32) {
//	    sort.Sort(data) // In-place ascending sort
//	}
//
// # Diagnostics
//
// Lengths that cannot be fully vectorized are still sorted completely. They
// are reported at debug level to the logger installed with SetLogger;
// PlanFor describes the passes, remainder and tail for any length.
package sort
