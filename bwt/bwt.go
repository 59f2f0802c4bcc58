// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"github.com/bwtrle/bwtrle/bwt/internal/sufsort"
	"github.com/bwtrle/bwtrle/internal"
	"github.com/bwtrle/bwtrle/internal/errors"
)

// Output is the result of the forward transform.
type Output struct {
	// Last is the last column of the sorted rotation matrix. It holds exactly
	// one Sentinel.
	Last Sequence

	// Anchor is the row of the sorted matrix whose first column holds the
	// Sentinel. Since the Sentinel is the unique minimal symbol, this is
	// always 0.
	Anchor int
}

// SentinelIndex reports the position of the Sentinel in o.Last.
func (o Output) SentinelIndex() int { return o.Last.SentinelIndex() }

// Transform performs the forward and inverse Burrows-Wheeler Transform.
// The zero value is ready for use and sorts with DoublingSort.
//
// A Transform keeps scratch buffers between calls to reduce allocations,
// so it must not be used concurrently.
type Transform struct {
	Method Method

	sa     []int
	buf    []int
	ranks  []int
	sorter sufsort.Sorter
}

// Forward computes the transform of seq, which must hold exactly one Sentinel.
func Forward(seq Sequence) (Output, error) {
	var t Transform
	return t.Forward(seq)
}

// Inverse reconstructs the original bytes from the output of Forward.
// The Sentinel is not part of the result.
func Inverse(out Output) ([]byte, error) {
	var t Transform
	return t.Inverse(out)
}

// Forward computes the transform of seq, which must hold exactly one Sentinel.
// The Sentinel may be anywhere in seq; NewSequence places it at the end.
func (t *Transform) Forward(seq Sequence) (Output, error) {
	if err := seq.Validate(); err != nil {
		return Output{}, err
	}

	n := len(seq)
	out := Output{Last: make(Sequence, n), Anchor: -1}
	offs := t.sortOffsets(seq)
	for row, off := range offs {
		prev := off - 1
		if prev < 0 {
			prev = n - 1
		}
		out.Last[row] = seq[prev]
		if seq[off].IsSentinel() {
			out.Anchor = row
		}
	}
	if out.Anchor != 0 {
		return Output{}, errorf(errors.Internal, "sentinel rotation sorted to row %d", out.Anchor)
	}
	if internal.Debug {
		for row := 1; row < n; row++ {
			if seq.Rotation(offs[row-1]).Compare(seq.Rotation(offs[row])) >= 0 {
				return Output{}, errorf(errors.Internal, "rows %d and %d out of order", row-1, row)
			}
		}
	}
	return out, nil
}

// Inverse reconstructs the original bytes from the output of Forward.
//
// It walks the LF mapping: starting from the anchor row, the last column
// yields the symbol preceding the current row, and the rank of that symbol
// locates its row in the sorted first column. The walk ends on the Sentinel.
func (t *Transform) Inverse(out Output) ([]byte, error) {
	last := out.Last
	if err := last.Validate(); err != nil {
		return nil, err
	}
	n := len(last)
	if out.Anchor < 0 || out.Anchor >= n {
		return nil, errorf(errors.Invalid, "anchor %d out of range [0, %d)", out.Anchor, n)
	}
	if out.Anchor != 0 {
		return nil, errorf(errors.Invalid, "anchor %d does not start with the sentinel", out.Anchor)
	}

	// first[c] is the row in the first column where symbol c first appears.
	var first [alphabetSize]int
	for _, v := range last {
		first[v.index()]++
	}
	var sum int
	for i, v := range first {
		first[i] = sum
		sum += v
	}

	if cap(t.ranks) < n {
		t.ranks = make([]int, n)
	}
	ranks := t.ranks[:n]
	computeRanks(last, ranks)

	buf := make([]byte, n-1)
	pos := len(buf)
	for i := out.Anchor; ; {
		v := last[i]
		if v.IsSentinel() {
			break
		}
		pos--
		buf[pos] = byte(v)
		i = first[v.index()] + ranks[i]
	}
	if pos != 0 {
		return nil, errorf(errors.Invalid, "not a transform output: walk covered %d of %d rows", n-pos, n)
	}
	return buf, nil
}

// Ranks returns the rank table of seq, where ranks[i] counts the occurrences
// of seq[i] strictly before position i. The Sentinel is always ranked 0 when
// seq holds a single one.
func Ranks(seq Sequence) []int {
	ranks := make([]int, len(seq))
	computeRanks(seq, ranks)
	return ranks
}

func computeRanks(seq Sequence, ranks []int) {
	var seen [alphabetSize]int
	for i, v := range seq {
		ranks[i] = seen[v.index()]
		seen[v.index()]++
	}
}
