package sort

import "github.com/khegeman/floki/hwy"

// Helper functions shared by every lane target.

// InsertionSortSmall is a simple insertion sort for small arrays.
// It is the scalar fallback for slices shorter than one block and for the
// tail that does not fill a block.
func InsertionSortSmall[T hwy.Lanes](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// IsSorted checks if a slice is sorted in ascending order.
func IsSorted[T hwy.Lanes](data []T) bool {
	n := len(data)
	if n <= 1 {
		return true
	}

	var o hwy.Unrolled[T]
	i := 0

	// Process full vectors: compare each lane with its right neighbour
	for ; i+hwy.N < n; i += hwy.N {
		v1 := o.Load(data[i:])
		v2 := o.Load(data[i+1:])
		if hwy.GreaterThan(v1, v2).AnyTrue() {
			return false
		}
	}

	// Handle tail
	for ; i < n-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}

	return true
}
