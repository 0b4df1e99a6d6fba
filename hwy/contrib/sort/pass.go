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

import "github.com/khegeman/floki/hwy"

// pingPong holds the two buffers merge passes alternate between.
type pingPong[T hwy.Lanes] struct {
	data    []T
	scratch []T

	// inData is true while data holds the current source.
	inData bool
}

func (p *pingPong[T]) src() []T {
	if p.inData {
		return p.data
	}
	return p.scratch
}

func (p *pingPong[T]) dst() []T {
	if p.inData {
		return p.scratch
	}
	return p.data
}

func (p *pingPong[T]) swap() {
	p.inData = !p.inData
}

// sortBlocks runs BitonicSort16 over every 16-value block of data in place.
// len(data) must be a multiple of 16.
func sortBlocks[T hwy.Lanes, O hwy.Ops[T]](o O, data []T) {
	for i := 0; i+blockSize <= len(data); i += blockSize {
		blk := data[i : i+blockSize]
		a, b, c, d := BitonicSort16(o,
			o.Load(blk[0:]), o.Load(blk[4:]), o.Load(blk[8:]), o.Load(blk[12:]))
		o.Store(a, blk[0:])
		o.Store(b, blk[4:])
		o.Store(c, blk[8:])
		o.Store(d, blk[12:])
	}
}

// mergePass merges pairs consecutive run pairs of length run from src into
// the same positions of dst.
func mergePass[T hwy.Lanes, O hwy.Ops[T]](o O, src, dst []T, run, pairs int) {
	for i := 0; i < pairs; i++ {
		start := i * 2 * run
		MergeRuns(o, src[start:start+run], src[start+run:start+2*run], dst[start:start+2*run])
	}
}

// schedule sorts data, whose length must be a multiple of 16, using scratch
// (at least as long as data) as the second merge buffer. The sorted result
// always ends up in data.
//
// At the start of each pass the source buffer holds runs full runs of length
// run followed by the remainder run in [runs*run, len(data)). When runs is
// odd the last full run cannot be paired and joins the remainder.
func schedule[T hwy.Lanes, O hwy.Ops[T]](o O, data, scratch []T) {
	sortBlocks(o, data)

	v := len(data)
	runs := v / blockSize
	if runs < 2 {
		return
	}

	buf := pingPong[T]{data: data, scratch: scratch[:v], inData: true}
	run, rem := blockSize, 0
	for runs > 1 {
		src, dst := buf.src(), buf.dst()
		pairs := runs / 2
		mergePass(o, src, dst, run, pairs)

		active := runs * run
		if runs%2 == 1 {
			setAside(o, src, dst, active-run, active, rem)
			rem += run
		} else if rem > 0 {
			copy(dst[active:], src[active:])
		}

		buf.swap()
		run *= 2
		runs = pairs
	}

	if rem > 0 {
		src, dst := buf.src(), buf.dst()
		MergeRuns(o, src[:run], src[run:], dst)
		buf.swap()
	}

	if !buf.inData {
		copy(data, scratch[:v])
	}
}
