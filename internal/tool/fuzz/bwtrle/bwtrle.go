// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwtrle is a go-fuzz harness for the compressor.
package bwtrle

import (
	"bytes"
	"io"

	"github.com/bwtrle/bwtrle"
	"github.com/bwtrle/bwtrle/bwt"
)

func Fuzz(data []byte) int {
	data, ok := testDecoders(data)
	testEncoders(data)
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders checks that Decompress and Reader agree on the input.
// It does not panic if both run into an error, since that means they both
// agree that the input is bad. It returns the decoded output if valid, and
// the input itself otherwise.
func testDecoders(data []byte) ([]byte, bool) {
	zr, err := bwtrle.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		panic(err)
	}
	rb, rerr := io.ReadAll(zr)
	cerr := zr.Close()
	db, derr := bwtrle.Decompress(data)

	switch {
	case rerr == nil && derr == nil:
		if !bytes.Equal(rb, db) {
			panic("mismatching bytes")
		}
		if cerr != nil {
			panic(cerr)
		}
		return db, true
	case rerr != nil && derr != nil:
		if rerr.Error() != derr.Error() {
			panic("mismatching errors: " + rerr.Error() + " != " + derr.Error())
		}
		if cerr == nil {
			panic("Close did not report the decode error")
		}
		if !bwtrle.IsCorrupted(derr) && !bwtrle.IsInvalid(derr) {
			panic(derr)
		}
		return data, false
	case rerr != nil:
		panic(rerr)
	default:
		panic(derr)
	}
}

// testEncoders compresses the data with each sort method and checks that the
// outputs match and decompress to the original.
func testEncoders(data []byte) {
	var outs [][]byte
	for _, m := range []bwt.Method{bwt.DoublingSort, bwt.NaiveSort} {
		bb := new(bytes.Buffer)
		zw, err := bwtrle.NewWriter(bb, &bwtrle.WriterConfig{Method: m})
		if err != nil {
			panic(err)
		}
		n, err := zw.Write(data)
		if n != len(data) || err != nil {
			panic(err)
		}
		if err := zw.Close(); err != nil {
			panic(err)
		}
		outs = append(outs, bb.Bytes())
	}
	if !bytes.Equal(outs[0], outs[1]) {
		panic("mismatching outputs between sort methods")
	}

	got, err := bwtrle.Decompress(outs[0])
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(got, data) {
		panic("mismatching bytes after round trip")
	}
}
