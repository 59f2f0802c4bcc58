// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sufsort

import (
	"reflect"
	"sort"
	"testing"

	"github.com/bwtrle/bwtrle/internal/testutil"
)

// sortNaive sorts the cyclic shifts of T by direct comparison.
func sortNaive(T []int) []int {
	n := len(T)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.SliceStable(sa, func(i, j int) bool {
		a, b := sa[i], sa[j]
		for k := 0; k < n; k++ {
			x, y := T[(a+k)%n], T[(b+k)%n]
			if x != y {
				return x < y
			}
		}
		return false
	})
	return sa
}

func TestSortCyclic(t *testing.T) {
	ints := func(s string) []int {
		T := make([]int, len(s))
		for i := range s {
			T[i] = int(s[i])
		}
		return T
	}
	withEnd := func(b []byte) []int {
		T := make([]int, len(b)+1)
		for i, v := range b {
			T[i] = int(v) + 1
		}
		return T
	}

	rand := testutil.NewRand(0)
	var vectors = []struct {
		input []int
		k     int
	}{
		{nil, 1},
		{ints("a"), 256},
		{ints("banana\x00"), 256},
		{ints("mississippi\x00"), 256},
		{withEnd(rand.BytesN(1000, 2)), 257},
		{withEnd(rand.BytesN(1000, 16)), 257},
		{withEnd(rand.Bytes(1000)), 257},
		{withEnd(testutil.Zeros(777)), 257},
		{withEnd(testutil.Repeats(3000)), 257},
	}

	for i, v := range vectors {
		got := make([]int, len(v.input))
		SortCyclic(v.input, got, v.k)
		want := sortNaive(v.input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("test %d, order mismatch:\ngot  %v\nwant %v", i, got, want)
		}
	}
}

// A Sorter reused across inputs of different sizes and alphabets gives the
// same order as a fresh one and stops allocating once its buffers are large
// enough.
func TestSorterReuse(t *testing.T) {
	rand := testutil.NewRand(1)
	var s Sorter
	for i, n := range []int{500, 20, 1000, 3, 1000} {
		T := make([]int, n)
		for j := range T[:n-1] {
			T[j] = 1 + rand.Intn(4)
		}
		got := make([]int, n)
		s.SortCyclic(T, got, 5)
		if want := sortNaive(T); !reflect.DeepEqual(got, want) {
			t.Errorf("test %d, order mismatch:\ngot  %v\nwant %v", i, got, want)
		}
	}

	T := make([]int, 800)
	for j := range T[:len(T)-1] {
		T[j] = 1 + rand.Intn(4)
	}
	SA := make([]int, len(T))
	allocs := testing.AllocsPerRun(10, func() { s.SortCyclic(T, SA, 5) })
	if allocs != 0 {
		t.Errorf("SortCyclic allocated %v times per run, want 0", allocs)
	}
}

func TestSortCyclicPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on mismatching sizes")
		}
	}()
	SortCyclic([]int{1, 2}, make([]int, 1), 3)
}
