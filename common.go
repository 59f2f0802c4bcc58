// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwtrle implements lossless compression by a Burrows-Wheeler
// Transform followed by run-length encoding.
//
// Compression stack:
//	End-of-string marker      (Sentinel)
//	Burrows-Wheeler transform (BWT)
//	Run-length encoding       (RLE)
//
// The whole input is held in memory: a Writer buffers everything written to it
// and emits the compressed stream on Close, and a Reader drains its source on
// the first Read. See the rle package for the stream format.
package bwtrle

import (
	"fmt"

	"github.com/bwtrle/bwtrle/internal/errors"
)

var (
	// ErrInvalid matches errors where a symbol sequence or index violates the
	// invariants of the transform.
	ErrInvalid error = errors.Error{Code: errors.Invalid}

	// ErrCorrupted matches errors caused by a malformed compressed stream.
	ErrCorrupted error = errors.Error{Code: errors.Corrupted}

	// ErrClosed matches errors from using a closed Writer or Reader.
	ErrClosed error = errors.Error{Code: errors.Closed}
)

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool { return errors.IsInvalid(err) }

// IsCorrupted reports whether err is a malformed stream error.
func IsCorrupted(err error) bool { return errors.IsCorrupted(err) }

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "bwtrle", Msg: fmt.Sprintf(f, a...)}
}

var errClosed = errorf(errors.Closed, "")
