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

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	var o Unrolled[float32]
	v := o.Load(data[2:])
	if v != (Vec4[float32]{3, 4, 5, 6}) {
		t.Errorf("Load: got %v, want [3 4 5 6]", v)
	}

	out := make([]float32, 6)
	o.Store(v, out[1:])
	require.Equal(t, []float32{0, 3, 4, 5, 6, 0}, out)
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)
	for i := range N {
		if v[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()
	for i := range N {
		if v[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	var o Unrolled[int32]
	a := Vec4[int32]{50, 40, 30, 20}
	b := Vec4[int32]{10, 0, 60, 20}
	require.Equal(t, Vec4[int32]{10, 0, 30, 20}, o.Min(a, b))
	require.Equal(t, Vec4[int32]{50, 40, 60, 20}, o.Max(a, b))
}

// TestMinMaxNaN checks that Min and Max return one operand each, so a NaN
// lane is moved rather than copied or dropped.
func TestMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	a := Vec4[float64]{nan, 1, nan, 3}
	b := Vec4[float64]{2, nan, nan, 0}

	for _, o := range []Ops[float64]{Unrolled[float64]{}, Scalar[float64]{}} {
		lo, hi := o.Min(a, b), o.Max(a, b)
		for i := range N {
			gotNaN := 0
			for _, x := range []float64{lo[i], hi[i]} {
				if math.IsNaN(x) {
					gotNaN++
				}
			}
			wantNaN := 0
			for _, x := range []float64{a[i], b[i]} {
				if math.IsNaN(x) {
					wantNaN++
				}
			}
			require.Equal(t, wantNaN, gotNaN, "lane %d", i)
		}
		require.Equal(t, 0.0, lo[3])
		require.Equal(t, 3.0, hi[3])
	}
}

func TestShuffle(t *testing.T) {
	a := Vec4[int32]{0, 1, 2, 3}
	b := Vec4[int32]{4, 5, 6, 7}
	tests := []struct {
		name string
		p    Pattern
		want Vec4[int32]
	}{
		{"0145", Pattern0145, Vec4[int32]{0, 1, 4, 5}},
		{"2367", Pattern2367, Vec4[int32]{2, 3, 6, 7}},
		{"1054", Pattern1054, Vec4[int32]{1, 0, 5, 4}},
		{"0426", Pattern0426, Vec4[int32]{0, 4, 2, 6}},
		{"7351", Pattern{7, 3, 5, 1}, Vec4[int32]{7, 3, 5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Unrolled[int32]{}.Shuffle(a, b, tt.p))
			require.Equal(t, tt.want, Scalar[int32]{}.Shuffle(a, b, tt.p))
		})
	}
}

func TestPermuteReverse(t *testing.T) {
	v := Vec4[uint16]{10, 11, 12, 13}
	for _, o := range []Ops[uint16]{Unrolled[uint16]{}, Scalar[uint16]{}} {
		require.Equal(t, Vec4[uint16]{12, 13, 10, 11}, o.Permute(v, Pattern2301))
		require.Equal(t, Vec4[uint16]{13, 12, 11, 10}, o.Reverse(v))
		require.Equal(t, uint16(10), o.First(v))
	}
}

func TestInterleave(t *testing.T) {
	a := Vec4[int8]{0, 1, 2, 3}
	b := Vec4[int8]{4, 5, 6, 7}
	for _, o := range []Ops[int8]{Unrolled[int8]{}, Scalar[int8]{}} {
		require.Equal(t, Vec4[int8]{0, 4, 1, 5}, o.InterleaveLower(a, b))
		require.Equal(t, Vec4[int8]{2, 6, 3, 7}, o.InterleaveUpper(a, b))
	}
}

// TestTargetsAgree runs every operation on both targets with random lanes.
func TestTargetsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var u Unrolled[int64]
	var s Scalar[int64]

	randVec := func() Vec4[int64] {
		var v Vec4[int64]
		for i := range v {
			v[i] = rng.Int63n(10) - 5
		}
		return v
	}
	for iter := 0; iter < 1000; iter++ {
		a, b := randVec(), randVec()
		var p Pattern
		for i := range p {
			p[i] = uint8(rng.Intn(8))
		}

		require.Equal(t, s.Min(a, b), u.Min(a, b))
		require.Equal(t, s.Max(a, b), u.Max(a, b))
		require.Equal(t, s.Shuffle(a, b, p), u.Shuffle(a, b, p))
		require.Equal(t, s.Permute(a, p), u.Permute(a, p))
		require.Equal(t, s.Reverse(a), u.Reverse(a))
		require.Equal(t, s.InterleaveLower(a, b), u.InterleaveLower(a, b))
		require.Equal(t, s.InterleaveUpper(a, b), u.InterleaveUpper(a, b))

		// Min and Max keep the multiset of every lane pair.
		lo, hi := u.Min(a, b), u.Max(a, b)
		for i := range N {
			got := []int64{lo[i], hi[i]}
			want := []int64{a[i], b[i]}
			slices.Sort(want)
			require.Equal(t, want, got)
		}
	}
}

func TestData(t *testing.T) {
	v := Vec4[float64]{1, 2, 3, 4}
	d := v.Data()
	d[0] = 99
	require.Equal(t, 1.0, v[0], "Data must return a copy")
	require.Len(t, d, N)
}
