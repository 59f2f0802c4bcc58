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
	"github.com/bwtrle/bwtrle/internal/errors"
)

// Decoder reads transform outputs from a stream.
type Decoder struct {
	// MaxLength limits the number of bytes a stream may expand to,
	// not counting the Sentinel. Zero means no limit.
	MaxLength int
}

// Decode reads r until EOF and returns the transform output it holds,
// with the Sentinel reinstated.
//
// Malformed streams are reported with the errors.Corrupted code, while errors
// from r are returned as they are.
func (d *Decoder) Decode(r io.Reader) (seq bwt.Sequence, err error) {
	defer errs.Recover(&err)

	// Records are read three bytes at a time, so readers that do not already
	// serve bytes from memory are buffered. Decode consumes r up to io.EOF,
	// so reading ahead loses nothing.
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}

	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = errorf(errors.Corrupted, "stream shorter than the %d byte header", HeaderSize)
		}
		errs.Panic(err)
	}
	idx := binary.LittleEndian.Uint64(hdr[:])

	var buf []byte
	var rec [RecordSize]byte
	for off := int64(HeaderSize); ; off += RecordSize {
		n, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			err = errorf(errors.Corrupted, "truncated record at offset %d: got %d of %d bytes", off, n, RecordSize)
		}
		errs.Panic(err)

		cnt := int(binary.LittleEndian.Uint16(rec[1:]))
		if d.MaxLength > 0 && len(buf)+cnt > d.MaxLength {
			errs.Panic(errorf(errors.Corrupted, "stream expands beyond the limit of %d bytes", d.MaxLength))
		}
		for i := 0; i < cnt; i++ {
			buf = append(buf, rec[0])
		}
	}

	if idx > uint64(len(buf)) {
		errs.Panic(errorf(errors.Corrupted, "sentinel index %d out of range [0, %d]", idx, len(buf)))
	}
	return bwt.WithSentinel(buf, int(idx))
}

// Decode reads a transform output from r. See Decoder.Decode.
func Decode(r io.Reader) (bwt.Sequence, error) {
	var d Decoder
	return d.Decode(r)
}

// Unmarshal decodes the transform output held in b.
func Unmarshal(b []byte) (bwt.Sequence, error) {
	return Decode(bytes.NewReader(b))
}
