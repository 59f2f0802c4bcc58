// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwtrle

import (
	"bytes"
	"io"

	"github.com/bwtrle/bwtrle/bwt"
	"github.com/bwtrle/bwtrle/rle"
)

// Compress returns the compressed form of src.
func Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := compress(&buf, src, new(bwt.Transform)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the original bytes of the compressed stream src.
func Decompress(src []byte) ([]byte, error) {
	return decompress(bytes.NewReader(src), new(rle.Decoder), new(bwt.Transform))
}

func compress(w io.Writer, src []byte, t *bwt.Transform) error {
	out, err := t.Forward(bwt.NewSequence(src))
	if err != nil {
		return err
	}
	_, err = rle.Encode(w, out.Last)
	return err
}

func decompress(r io.Reader, d *rle.Decoder, t *bwt.Transform) ([]byte, error) {
	last, err := d.Decode(r)
	if err != nil {
		return nil, err
	}
	return t.Inverse(bwt.Output{Last: last, Anchor: 0})
}
