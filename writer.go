// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwtrle

import (
	"io"

	"github.com/bwtrle/bwtrle/bwt"
	"github.com/bwtrle/bwtrle/internal/errors"
)

type WriterConfig struct {
	// Method selects how the rotation matrix is sorted.
	// The zero value is bwt.DoublingSort.
	Method bwt.Method
}

// Writer compresses everything written to it. Since the transform needs the
// entire input, nothing is written to the underlying writer until Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  io.Writer
	buf []byte
	err error
	bwt bwt.Transform
}

func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	var method bwt.Method
	if conf != nil {
		method = conf.Method
	}
	switch method {
	case bwt.DoublingSort, bwt.NaiveSort:
	default:
		return nil, errorf(errors.Invalid, "unknown sort method: %d", int(method))
	}
	zw := new(Writer)
	zw.bwt.Method = method
	zw.Reset(w)
	return zw, nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close transforms and encodes all of the buffered input and writes it to the
// underlying writer. It does not close the underlying writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	cw := &countWriter{W: zw.wr}
	if err := compress(cw, zw.buf, &zw.bwt); err != nil {
		zw.OutputOffset += cw.N
		zw.err = err
		return err
	}
	zw.OutputOffset += cw.N
	zw.buf = zw.buf[:0]
	zw.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result of
// a call to NewWriter, but writing to w instead. The sort method is kept.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{
		wr:  w,
		buf: zw.buf[:0],
		bwt: zw.bwt,
	}
}

type countWriter struct {
	W io.Writer
	N int64
}

func (cw *countWriter) Write(buf []byte) (int, error) {
	n, err := cw.W.Write(buf)
	cw.N += int64(n)
	return n, err
}
