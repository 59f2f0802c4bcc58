// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"strconv"
	"strings"

	"github.com/bwtrle/bwtrle/internal/errors"
)

// Symbol is either a byte value or the Sentinel.
//
// The integer value of a Symbol is its sort key: the Sentinel is -1 and a byte
// b is represented as b itself, so ordinary integer comparison orders the
// Sentinel below every byte and bytes as unsigned values.
type Symbol int16

// Sentinel is the end-of-string marker.
const Sentinel Symbol = -1

// Byte returns the Symbol for the byte value b.
func Byte(b byte) Symbol { return Symbol(b) }

// IsSentinel reports whether s is the Sentinel.
func (s Symbol) IsSentinel() bool { return s == Sentinel }

// Value returns the byte held by s. It reports false for the Sentinel.
func (s Symbol) Value() (byte, bool) {
	if s.IsSentinel() {
		return 0, false
	}
	return byte(s), true
}

// Compare returns -1, 0, or +1 depending on whether s sorts before, equal to,
// or after t.
func (s Symbol) Compare(t Symbol) int {
	switch {
	case s < t:
		return -1
	case s > t:
		return +1
	default:
		return 0
	}
}

func (s Symbol) String() string {
	if s.IsSentinel() {
		return "$"
	}
	return strconv.Itoa(int(s))
}

// index maps s to [0, alphabetSize) in sort order.
func (s Symbol) index() int { return int(s) + 1 }

func (s Symbol) valid() bool { return s >= Sentinel && s <= 0xff }

// Sequence is an ordered list of symbols.
type Sequence []Symbol

// NewSequence returns the symbols of b followed by a single Sentinel.
func NewSequence(b []byte) Sequence {
	seq := make(Sequence, len(b)+1)
	for i, v := range b {
		seq[i] = Symbol(v)
	}
	seq[len(b)] = Sentinel
	return seq
}

// WithSentinel returns the symbols of b with the Sentinel inserted at index i,
// which must be in [0, len(b)].
func WithSentinel(b []byte, i int) (Sequence, error) {
	if i < 0 || i > len(b) {
		return nil, errorf(errors.Invalid, "sentinel index %d out of range [0, %d]", i, len(b))
	}
	seq := make(Sequence, len(b)+1)
	for j, v := range b[:i] {
		seq[j] = Symbol(v)
	}
	seq[i] = Sentinel
	for j, v := range b[i:] {
		seq[i+1+j] = Symbol(v)
	}
	return seq, nil
}

// SentinelIndex reports the position of the first Sentinel in s,
// or -1 if there is none.
func (s Sequence) SentinelIndex() int {
	for i, v := range s {
		if v.IsSentinel() {
			return i
		}
	}
	return -1
}

// Validate checks that s holds exactly one Sentinel and only valid symbols.
func (s Sequence) Validate() error {
	idx := -1
	for i, v := range s {
		switch {
		case !v.valid():
			return errorf(errors.Invalid, "symbol %d at index %d is not in the alphabet", int(v), i)
		case v.IsSentinel() && idx >= 0:
			return errorf(errors.Invalid, "duplicate sentinel at indexes %d and %d", idx, i)
		case v.IsSentinel():
			idx = i
		}
	}
	if idx < 0 {
		return errorf(errors.Invalid, "missing sentinel")
	}
	return nil
}

// Bytes returns the byte values of s in order, skipping any Sentinel.
func (s Sequence) Bytes() []byte {
	b := make([]byte, 0, len(s))
	for _, v := range s {
		if c, ok := v.Value(); ok {
			b = append(b, c)
		}
	}
	return b
}

// String formats s as a comma separated list of decimal byte values with
// the Sentinel shown as "$".
func (s Sequence) String() string {
	ss := make([]string, len(s))
	for i, v := range s {
		ss[i] = v.String()
	}
	return strings.Join(ss, ", ")
}
