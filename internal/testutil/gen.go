// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "sort"

// Generator deterministically produces n bytes of test input.
type Generator func(n int) []byte

// Generators lists the synthetic inputs by name.
var Generators = map[string]Generator{
	"zeros":   Zeros,
	"random":  Random,
	"repeats": Repeats,
	"runs":    Runs,
}

// GeneratorNames returns the names in Generators in sorted order.
func GeneratorNames() []string {
	var s []string
	for k := range Generators {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Zeros returns n zero bytes. Every rotation of the result differs only by
// where the end-of-string marker lands.
func Zeros(n int) []byte { return make([]byte, n) }

// Random returns n uniformly random bytes.
func Random(n int) []byte { return NewRand(0).Bytes(n) }

// Repeats returns data where most of the content is a copy of some earlier
// part of the data, with occasional stretches of fresh random bytes.
func Repeats(n int) []byte {
	r := NewRand(1)
	b := make([]byte, 0, n)

	randLen := func() int {
		switch p := r.Intn(100); {
		case p < 15: // 4..8
			return 4 + r.Intn(4)
		case p < 30: // 8..16
			return 8 + r.Intn(8)
		case p < 45: // 16..32
			return 16 + r.Intn(16)
		case p < 60: // 32..64
			return 32 + r.Intn(32)
		case p < 75: // 64..128
			return 64 + r.Intn(64)
		case p < 90: // 128..256
			return 128 + r.Intn(128)
		default: // 256..512
			return 256 + r.Intn(256)
		}
	}
	writeRand := func(l int) {
		b = append(b, r.Bytes(l)...)
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < n {
		if r.Intn(10) == 0 {
			writeRand(randLen())
			continue
		}
		writeCopy(1+r.Intn(len(b)), randLen())
	}
	return b[:n]
}

// Runs returns runs of bytes from a small alphabet, with run lengths between
// 1 and 64.
func Runs(n int) []byte {
	r := NewRand(2)
	b := make([]byte, 0, n)
	for len(b) < n {
		v, l := byte('a'+r.Intn(8)), 1+r.Intn(64)
		for i := 0; i < l; i++ {
			b = append(b, v)
		}
	}
	return b[:n]
}
