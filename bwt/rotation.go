// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "sort"

// Method selects the algorithm used to sort the rotation matrix.
// All methods produce the same ordering.
type Method int

const (
	// DoublingSort sorts rotations by prefix doubling in O(L log L) time and
	// O(L) space.
	DoublingSort Method = iota

	// NaiveSort compares rotations symbol by symbol with a comparison sort,
	// taking O(L² log L) time in the worst case. It serves as a reference.
	NaiveSort
)

func (m Method) String() string {
	switch m {
	case DoublingSort:
		return "doubling"
	case NaiveSort:
		return "naive"
	default:
		return "unknown"
	}
}

// Rotation is a cyclic rotation of a Sequence. It is a view: the rotation
// shares the backing sequence and only records where it starts.
type Rotation struct {
	seq      Sequence
	off      int // Index in seq of the first symbol
	sentinel int // Index in seq of the Sentinel, or -1
}

// Rotation returns s rotated left by k symbols.
func (s Sequence) Rotation(k int) Rotation {
	if len(s) > 0 {
		if k %= len(s); k < 0 {
			k += len(s)
		}
	}
	return Rotation{seq: s, off: k, sentinel: s.SentinelIndex()}
}

// Offset reports how far the rotation is shifted left from its sequence.
func (r Rotation) Offset() int { return r.off }

func (r Rotation) Len() int { return len(r.seq) }

// At returns the i-th symbol of the rotation.
func (r Rotation) At(i int) Symbol {
	j := r.off + i
	if j >= len(r.seq) {
		j -= len(r.seq)
	}
	return r.seq[j]
}

func (r Rotation) First() Symbol { return r.At(0) }
func (r Rotation) Last() Symbol  { return r.At(len(r.seq) - 1) }

// Next returns the rotation shifted left by one more symbol, which moves the
// front symbol to the back.
func (r Rotation) Next() Rotation {
	if len(r.seq) == 0 {
		return r
	}
	r.off++
	if r.off == len(r.seq) {
		r.off = 0
	}
	return r
}

// SentinelIndex reports the position of the Sentinel within the rotation,
// or -1 if there is none.
func (r Rotation) SentinelIndex() int {
	if r.sentinel < 0 {
		return -1
	}
	i := r.sentinel - r.off
	if i < 0 {
		i += len(r.seq)
	}
	return i
}

// Compare orders rotations symbol by symbol. If one rotation is a prefix of the
// other, the shorter one sorts first.
func (r Rotation) Compare(o Rotation) int {
	n := min(r.Len(), o.Len())
	for i := 0; i < n; i++ {
		if c := r.At(i).Compare(o.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case r.Len() < o.Len():
		return -1
	case r.Len() > o.Len():
		return +1
	default:
		return 0
	}
}

// Symbols returns a copy of the rotated sequence.
func (r Rotation) Symbols() Sequence {
	out := make(Sequence, 0, len(r.seq))
	out = append(out, r.seq[r.off:]...)
	return append(out, r.seq[:r.off]...)
}

// SortRotations returns the len(seq) cyclic rotations of seq in ascending order.
// The sequence must hold exactly one Sentinel.
func SortRotations(seq Sequence, m Method) ([]Rotation, error) {
	t := Transform{Method: m}
	return t.SortRotations(seq)
}

// SortRotations is like the package level function of the same name,
// but sorts with t.Method and reuses the buffers held by t.
func (t *Transform) SortRotations(seq Sequence) ([]Rotation, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	offs := t.sortOffsets(seq)
	sentinel := seq.SentinelIndex()
	rows := make([]Rotation, len(offs))
	for i, off := range offs {
		rows[i] = Rotation{seq: seq, off: off, sentinel: sentinel}
	}
	return rows, nil
}

// sortOffsets returns the starting offsets of the sorted rotations of seq.
// The returned slice is owned by t and valid until the next call.
func (t *Transform) sortOffsets(seq Sequence) []int {
	n := len(seq)
	if cap(t.sa) < n {
		t.sa = make([]int, n)
	}
	sa := t.sa[:n]

	switch t.Method {
	case NaiveSort:
		for i := range sa {
			sa[i] = i
		}
		sort.Slice(sa, func(i, j int) bool {
			ri := Rotation{seq: seq, off: sa[i]}
			rj := Rotation{seq: seq, off: sa[j]}
			return ri.Compare(rj) < 0
		})
	default:
		if cap(t.buf) < n {
			t.buf = make([]int, n)
		}
		buf := t.buf[:n]
		for i, v := range seq {
			buf[i] = v.index()
		}
		t.sorter.SortCyclic(buf, sa, alphabetSize)
	}
	return sa
}
