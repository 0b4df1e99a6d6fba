// Package hwy provides the fixed-width lane primitive used by floki's
// sorting engine.
//
// A lane is a group of four scalars that every operation processes as a
// unit. Operations are expressed as a capability set (Ops) with one
// implementation per target: Unrolled writes each lane out as straight-line
// code, Scalar loops over the lanes. The active target is chosen at runtime
// from the detected CPU level and can be forced to Scalar with HWY_NO_SIMD.
//
// Basic usage:
//
//	import "github.com/khegeman/floki/hwy"
//
//	var ops hwy.Unrolled[int32]
//	a := ops.Load(data[0:])
//	b := ops.Load(data[4:])
//	ops.Store(ops.Min(a, b), out[0:])
//	ops.Store(ops.Max(a, b), out[4:])
package hwy

// N is the number of lanes in a Vec4.
const N = 4

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}

// Vec4 is a vector of four lanes. It is a plain value: copying it copies the
// lanes, and every operation returns a new Vec4 instead of mutating its
// arguments.
type Vec4[T Lanes] [N]T

// Pattern selects lanes for Shuffle and Permute. For Shuffle, indices 0..3
// pick from the first operand and 4..7 from the second. For Permute only
// 0..3 are meaningful.
type Pattern [N]uint8

// Shuffle patterns used by the sorting network. Names list the picked
// indices.
var (
	// Pattern0145 picks the low halves of both operands: [a0,a1,b0,b1].
	Pattern0145 = Pattern{0, 1, 4, 5}
	// Pattern2367 picks the high halves of both operands: [a2,a3,b2,b3].
	Pattern2367 = Pattern{2, 3, 6, 7}
	// Pattern2301 swaps the halves of a single vector.
	Pattern2301 = Pattern{2, 3, 0, 1}
	// Pattern1054 swaps neighbours within the low halves.
	Pattern1054 = Pattern{1, 0, 5, 4}
	// Pattern0426 interleaves the even lanes of both operands.
	Pattern0426 = Pattern{0, 4, 2, 6}
)

// Data returns the lanes as a freshly allocated slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec4[T]) Data() []T {
	out := make([]T, N)
	copy(out, v[:])
	return out
}
