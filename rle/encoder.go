// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/bwtrle/bwtrle/bwt"
)

// countWriter counts the bytes accepted by W.
type countWriter struct {
	W io.Writer
	N int64
}

func (cw *countWriter) Write(buf []byte) (int, error) {
	n, err := cw.W.Write(buf)
	cw.N += int64(n)
	return n, err
}

// Encoder writes transform outputs to a stream. Its buffers are reused
// between calls to Encode.
type Encoder struct {
	cw  countWriter
	bw  *bufio.Writer
	rec [RecordSize]byte
}

func NewEncoder(w io.Writer) *Encoder {
	e := new(Encoder)
	e.Reset(w)
	return e
}

// Reset discards any state and makes e write to w.
func (e *Encoder) Reset(w io.Writer) {
	e.cw = countWriter{W: w}
	if e.bw == nil {
		e.bw = bufio.NewWriter(&e.cw)
	} else {
		e.bw.Reset(&e.cw)
	}
}

// Encode writes seq, which must hold exactly one Sentinel, and flushes the
// result. It reports the number of bytes accepted by the underlying writer.
func (e *Encoder) Encode(seq bwt.Sequence) (n int64, err error) {
	e.cw.N = 0
	defer func() { n = e.cw.N }()
	defer errs.Recover(&err)
	errs.Panic(seq.Validate())

	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(seq.SentinelIndex()))
	_, err = e.bw.Write(hdr[:])
	errs.Panic(err)

	for i := 0; i < len(seq); {
		v := seq[i]
		if v.IsSentinel() {
			i++
			continue
		}
		j := i + 1
		for j < len(seq) && seq[j] == v {
			j++
		}
		e.writeRun(byte(v), j-i)
		i = j
	}
	errs.Panic(e.bw.Flush())
	return e.cw.N, nil
}

func (e *Encoder) writeRun(b byte, cnt int) {
	for ; cnt >= MaxRun; cnt -= MaxRun {
		e.writeRecord(b, MaxRun)
	}
	e.writeRecord(b, cnt)
}

func (e *Encoder) writeRecord(b byte, cnt int) {
	e.rec[0] = b
	binary.LittleEndian.PutUint16(e.rec[1:], uint16(cnt))
	_, err := e.bw.Write(e.rec[:])
	errs.Panic(err)
}

// Encode writes seq to w. See Encoder.Encode.
func Encode(w io.Writer, seq bwt.Sequence) (int64, error) {
	return NewEncoder(w).Encode(seq)
}

// Marshal returns the encoding of seq.
func Marshal(seq bwt.Sequence) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, seq); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
