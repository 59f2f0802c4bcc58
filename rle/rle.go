// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements the run-length encoded container for the output of
// the Burrows-Wheeler Transform.
//
// The stream starts with the index of the Sentinel in the transform output as
// an unsigned 64-bit little-endian integer. It is followed by records of three
// bytes each: a literal byte and an unsigned 16-bit little-endian count of
// how many times it repeats. The stream ends at EOF.
//
// The Sentinel itself is never stored. Runs are split at the Sentinel and
// chunked at 65535 repetitions. A full chunk is always followed by another
// record for the remainder of the run, which has a count of zero when the run
// length is a multiple of 65535.
//
// For example, if the transform output was:
//	output: "annb$aa"
//
// Then the stream will be:
//	header:  04 00 00 00 00 00 00 00
//	records: 61 01 00  6e 02 00  62 01 00  61 02 00
package rle

import (
	"fmt"
	"math"

	"github.com/bwtrle/bwtrle/internal/errors"
)

const (
	HeaderSize = 8              // Size of the sentinel index header
	RecordSize = 3              // Size of a (byte, count) record
	MaxRun     = math.MaxUint16 // Largest count a single record holds
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "rle", Msg: fmt.Sprintf(f, a...)}
}
