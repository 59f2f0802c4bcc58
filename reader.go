// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwtrle

import (
	"io"

	"github.com/bwtrle/bwtrle/bwt"
	"github.com/bwtrle/bwtrle/internal/errors"
	"github.com/bwtrle/bwtrle/rle"
)

type ReaderConfig struct {
	// MaxSize limits the size of the decompressed output.
	// Zero means no limit.
	MaxSize int
}

// Reader decompresses a stream produced by Writer. The first call to Read
// consumes the underlying reader up to io.EOF.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd   io.Reader
	buf  []byte
	done bool
	err  error
	dec  rle.Decoder
	bwt  bwt.Transform
}

func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	if conf != nil {
		if conf.MaxSize < 0 {
			return nil, errorf(errors.Invalid, "negative size limit: %d", conf.MaxSize)
		}
		zr.dec.MaxLength = conf.MaxSize
	}
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.done {
		cr := &countReader{R: zr.rd}
		zr.buf, zr.err = decompress(cr, &zr.dec, &zr.bwt)
		zr.InputOffset += cr.N
		zr.done = true
		if zr.err != nil {
			return 0, zr.err
		}
	}
	if len(zr.buf) == 0 {
		zr.err = io.EOF
		return 0, zr.err
	}
	n := copy(buf, zr.buf)
	zr.buf = zr.buf[n:]
	zr.OutputOffset += int64(n)
	return n, nil
}

// Close releases the decompressed data. It does not close the underlying reader.
func (zr *Reader) Close() error {
	if zr.err == errClosed || zr.err == io.EOF {
		zr.err = errClosed
		return nil
	}
	err := zr.err
	zr.buf, zr.err = nil, errClosed
	return err
}

// Reset discards the Reader's state and makes it equivalent to the result of
// a call to NewReader, but reading from r instead. The size limit is kept.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{
		rd:  r,
		dec: zr.dec,
		bwt: zr.bwt,
	}
}

type countReader struct {
	R io.Reader
	N int64
}

func (cr *countReader) Read(buf []byte) (int, error) {
	n, err := cr.R.Read(buf)
	cr.N += int64(n)
	return n, err
}
