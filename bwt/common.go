// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform over byte sequences
// augmented with a synthetic end-of-string marker, the Sentinel.
//
// The Sentinel sorts below every byte and appears exactly once, which makes
// every cyclic rotation of a sequence distinct. As a consequence, the sorted
// rotation matrix always places the rotation that begins with the Sentinel in
// row 0, and the inverse transform can start its LF walk there without any
// separately stored origin pointer.
//
// References:
//	http://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf
//	https://en.wikipedia.org/wiki/Burrows%E2%80%93Wheeler_transform
package bwt

import (
	"fmt"

	"github.com/bwtrle/bwtrle/internal/errors"
)

// alphabetSize is the number of distinct symbols: 256 bytes plus the Sentinel.
const alphabetSize = 257

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "bwt", Msg: fmt.Sprintf(f, a...)}
}
