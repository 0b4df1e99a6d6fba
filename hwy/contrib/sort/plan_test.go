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


package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		n    int
		want Plan
	}{
		{0, Plan{}},
		{9, Plan{Len: 9, Tail: 9}},
		{16, Plan{Len: 16, Vectorizable: 16, Blocks: 1}},
		{48, Plan{
			Len: 48, Vectorizable: 48, Blocks: 3, Passes: 1,
			SetAside: []int{16}, Remainder: 16, FinalMerge: true,
		}},
		{100, Plan{
			Len: 100, Vectorizable: 96, Tail: 4, Blocks: 6, Passes: 2,
			SetAside: []int{0, 32}, Remainder: 32, FinalMerge: true, ResultInScratch: true,
		}},
		{112, Plan{
			Len: 112, Vectorizable: 112, Blocks: 7, Passes: 2,
			SetAside: []int{16, 32}, Remainder: 48, FinalMerge: true, ResultInScratch: true,
		}},
		{128, Plan{
			Len: 128, Vectorizable: 128, Blocks: 8, Passes: 3,
			SetAside: []int{0, 0, 0}, ResultInScratch: true,
		}},
		{256, Plan{
			Len: 256, Vectorizable: 256, Blocks: 16, Passes: 4,
			SetAside: []int{0, 0, 0, 0},
		}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlanFor(tt.n), "PlanFor(%d)", tt.n)
	}
}

// TestPlanInvariants checks that the bookkeeping adds up for every length:
// set-aside runs sum to the remainder and one entry exists per pass.
func TestPlanInvariants(t *testing.T) {
	for n := 0; n < 5000; n++ {
		p := PlanFor(n)
		require.Equal(t, n, p.Vectorizable+p.Tail)
		require.Less(t, p.Tail, blockSize)
		require.Equal(t, p.Passes, len(p.SetAside), "n=%d", n)

		sum := 0
		for _, s := range p.SetAside {
			sum += s
		}
		require.Equal(t, p.Remainder, sum, "n=%d", n)
		require.Equal(t, p.Remainder > 0, p.FinalMerge, "n=%d", n)
		require.Less(t, p.Remainder, p.Vectorizable+1)
	}
}

func TestPlanShortfall(t *testing.T) {
	assert.NoError(t, PlanFor(0).Shortfall())
	assert.NoError(t, PlanFor(1).Shortfall())
	assert.NoError(t, PlanFor(16).Shortfall())
	assert.NoError(t, PlanFor(4096).Shortfall())

	err := PlanFor(7).Shortfall()
	var se *ShortfallError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 7, se.Tail)
	assert.Contains(t, err.Error(), "shorter than one block")

	err = PlanFor(177).Shortfall()
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ShortfallError{Len: 177, Vectorizable: 176, Tail: 1, Remainder: 48}, *se)
	assert.Contains(t, err.Error(), "not a power-of-two number")
}

func TestPlanPowerOfTwo(t *testing.T) {
	assert.True(t, PlanFor(16).PowerOfTwo())
	assert.True(t, PlanFor(1024).PowerOfTwo())
	assert.False(t, PlanFor(1025).PowerOfTwo())
	assert.False(t, PlanFor(96).PowerOfTwo())
	assert.False(t, PlanFor(8).PowerOfTwo())
}
