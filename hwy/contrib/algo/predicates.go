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

// Predicate tests values one lane or one scalar at a time. Apply and Test
// must agree: lane i of Apply(v) is set exactly when Test(v[i]) is true.
type Predicate[T hwy.Lanes] interface {
	// Test returns true if the scalar value satisfies the predicate.
	// Used by the scalar epilogue.
	Test(value T) bool

	// Apply returns a mask of the lanes that satisfy the predicate.
	Apply(v hwy.Vec4[T]) hwy.Mask4
}

// FuncPredicate adapts a lane function to the Predicate interface.
// Test runs fn on a lane filled with the value and reads lane 0.
type FuncPredicate[T hwy.Lanes] struct {
	Fn func(hwy.Vec4[T]) hwy.Mask4
}

func (p FuncPredicate[T]) Test(value T) bool {
	return p.Fn(hwy.Set(value)).GetBit(0)
}

func (p FuncPredicate[T]) Apply(v hwy.Vec4[T]) hwy.Mask4 {
	return p.Fn(v)
}

// EqualTo matches values equal to Value.
type EqualTo[T hwy.Lanes] struct {
	Value T
}

func (p EqualTo[T]) Test(value T) bool {
	return value == p.Value
}

func (p EqualTo[T]) Apply(v hwy.Vec4[T]) hwy.Mask4 {
	return hwy.Equal(v, hwy.Set(p.Value))
}

// GreaterEqual matches values >= Threshold. On a sorted slice FindIf with
// this predicate returns the lower bound of Threshold.
type GreaterEqual[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool {
	return value >= p.Threshold
}

func (p GreaterEqual[T]) Apply(v hwy.Vec4[T]) hwy.Mask4 {
	return hwy.GreaterEqual(v, hwy.Set(p.Threshold))
}

// GreaterThan matches values > Threshold.
type GreaterThan[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

func (p GreaterThan[T]) Apply(v hwy.Vec4[T]) hwy.Mask4 {
	return hwy.GreaterThan(v, hwy.Set(p.Threshold))
}

// LessThan matches values < Threshold.
type LessThan[T hwy.Lanes] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool {
	return value < p.Threshold
}

func (p LessThan[T]) Apply(v hwy.Vec4[T]) hwy.Mask4 {
	return hwy.LessThan(v, hwy.Set(p.Threshold))
}
