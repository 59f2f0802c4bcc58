// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sufsort sorts the cyclic shifts of an integer string.
//
// The algorithm is prefix doubling: after round h, every shift is ranked by
// its first 2^h symbols, and the next round orders shifts by the pair of ranks
// (rank[i], rank[i+2^h]) using two counting sorts folded into one pass. Each
// round is O(n), and at most ceil(log2(n)) rounds are needed. Rounds stop
// early once every shift has a distinct rank.
//
// When the string ends with a unique minimal symbol, the order of its cyclic
// shifts is also the order of its suffixes, so the result is a suffix array.
//
// References:
//	https://cp-algorithms.com/string/suffix-array.html
//	http://www.cs.cmu.edu/~15451-f20/LectureNotes/suffix-arrays.pdf
package sufsort

// SortCyclic computes the order of all cyclic shifts of T and places the
// starting offsets in SA, smallest first. Every value in T must lie in [0, k).
// Both T and SA must be the same length.
func SortCyclic(T []int, SA []int, k int) {
	var s Sorter
	s.SortCyclic(T, SA, k)
}

// Sorter holds the scratch space of SortCyclic so that repeated sorts of
// similar sizes do not allocate. The zero value is ready for use.
type Sorter struct {
	cnt, class, next, shifted []int
}

// SortCyclic is like the package level function of the same name,
// but reuses the buffers held by s.
func (s *Sorter) SortCyclic(T []int, SA []int, k int) {
	if len(SA) != len(T) {
		panic("mismatching sizes")
	}
	n := len(T)
	if n == 0 {
		return
	}

	cnt := grow(&s.cnt, max(k, n))
	class := grow(&s.class, n)
	next := grow(&s.next, n)
	shifted := grow(&s.shifted, n)
	for i := range cnt[:k] {
		cnt[i] = 0
	}

	// Round 0: counting sort by the first symbol.
	for _, v := range T {
		cnt[v]++
	}
	for i := 1; i < k; i++ {
		cnt[i] += cnt[i-1]
	}
	for i := n - 1; i >= 0; i-- {
		cnt[T[i]]--
		SA[cnt[T[i]]] = i
	}
	classes := 1
	class[SA[0]] = 0
	for i := 1; i < n; i++ {
		if T[SA[i]] != T[SA[i-1]] {
			classes++
		}
		class[SA[i]] = classes - 1
	}

	for h := 1; h < n && classes < n; h <<= 1 {
		// SA is already sorted by the first h symbols, which makes it sorted by
		// the second half of every 2h window once each offset is moved back.
		for i, p := range SA {
			if p -= h; p < 0 {
				p += n
			}
			shifted[i] = p
		}

		// Stable counting sort by the first half.
		c := cnt[:classes]
		for i := range c {
			c[i] = 0
		}
		for _, p := range shifted {
			c[class[p]]++
		}
		for i := 1; i < classes; i++ {
			c[i] += c[i-1]
		}
		for i := n - 1; i >= 0; i-- {
			p := shifted[i]
			c[class[p]]--
			SA[c[class[p]]] = p
		}

		classes = 1
		next[SA[0]] = 0
		for i := 1; i < n; i++ {
			cur, prev := SA[i], SA[i-1]
			curNext, prevNext := wrap(cur+h, n), wrap(prev+h, n)
			if class[cur] != class[prev] || class[curNext] != class[prevNext] {
				classes++
			}
			next[cur] = classes - 1
		}
		class, next = next, class
	}
}

// grow returns (*b)[:n], reallocating *b if it is too small.
func grow(b *[]int, n int) []int {
	if cap(*b) < n {
		*b = make([]int, n)
	}
	return (*b)[:n]
}

func wrap(i, n int) int {
	if i >= n {
		return i - n
	}
	return i
}
