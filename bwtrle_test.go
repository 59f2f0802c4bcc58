// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwtrle

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"

	"github.com/bwtrle/bwtrle/bwt"
	"github.com/bwtrle/bwtrle/internal/testutil"
)

var dh = testutil.MustDecodeHex

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestCompressScenarios(t *testing.T) {
	var vectors = []struct {
		name   string
		input  []byte
		output []byte
	}{{
		name:   "empty",
		input:  []byte{},
		output: dh("0000000000000000"),
	}, {
		name:   "banana",
		input:  []byte{98, 97, 110, 97, 110, 97},
		output: dh("0400000000000000 610100 6e0200 620100 610200"),
	}, {
		name:   "long run",
		input:  bytes.Repeat([]byte{5}, 70000),
		output: dh("7011010000000000 05ffff 057111"),
	}, {
		name:   "single byte",
		input:  []byte{0x2a},
		output: dh("0100000000000000 2a0100"),
	}}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			got, err := Compress(v.input)
			require.NoError(t, err)
			assert.Equal(t, v.output, got, "compressed output is wrong")

			back, err := Decompress(got)
			require.NoError(t, err)
			assert.Equal(t, len(v.input), len(back), "decompressed length is wrong")
			assert.True(t, bytes.Equal(v.input, back), "decompressed data doesn't match original data")
		})
	}
}

func TestRoundTrip(t *testing.T) {
	var vectors = []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"single", []byte{0}},
		{"all bytes", allBytes()},
		{"all bytes reversed", testutil.ResizeData(allBytes()[128:], 256)},
		{"exact chunk", bytes.Repeat([]byte{9}, 65535)},
		{"overflow", bytes.Repeat([]byte{5}, 70000)},
		{"zeros", testutil.Zeros(1 << 17)},
		{"random", testutil.Random(1 << 16)},
		{"repeats", testutil.Repeats(1 << 16)},
		{"runs", testutil.Runs(1 << 16)},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			c, err := Compress(v.input)
			require.NoError(t, err)
			t.Logf("compressed %d to %d", len(v.input), len(c))

			d, err := Decompress(c)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(v.input, d), "decompressed data doesn't match original data")
		})
	}
}

func TestWriterReader(t *testing.T) {
	input := testutil.Repeats(1 << 15)
	for _, m := range []bwt.Method{bwt.DoublingSort, bwt.NaiveSort} {
		t.Run(m.String(), func(t *testing.T) {
			size := len(input)
			if m == bwt.NaiveSort {
				size = 2048
			}

			var buf bytes.Buffer
			wr, err := NewWriter(&buf, &WriterConfig{Method: m})
			require.NoError(t, err)
			cnt, err := io.CopyBuffer(wr, bytes.NewReader(input[:size]), make([]byte, 1000))
			require.NoError(t, err)
			assert.EqualValues(t, size, cnt)
			assert.Zero(t, buf.Len(), "nothing should be written before Close")
			require.NoError(t, wr.Close())
			assert.EqualValues(t, size, wr.InputOffset)
			assert.EqualValues(t, buf.Len(), wr.OutputOffset)

			_, err = wr.Write([]byte("more"))
			assert.ErrorIs(t, err, ErrClosed)
			assert.NoError(t, wr.Close(), "second Close should be a no-op")

			compressed := buf.Len()
			rd, err := NewReader(&buf, nil)
			require.NoError(t, err)
			output, err := io.ReadAll(rd)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(input[:size], output), "output data mismatch")
			assert.EqualValues(t, compressed, rd.InputOffset)
			assert.EqualValues(t, size, rd.OutputOffset)
			assert.NoError(t, rd.Close())
		})
	}
}

func TestWriterReset(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	wr, err := NewWriter(&buf1, nil)
	require.NoError(t, err)
	_, err = wr.Write([]byte("banana"))
	require.NoError(t, err)
	require.NoError(t, wr.Close())

	wr.Reset(&buf2)
	_, err = wr.Write([]byte("banana"))
	require.NoError(t, err)
	require.NoError(t, wr.Close())
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
}

func TestWriterErrors(t *testing.T) {
	_, err := NewWriter(io.Discard, &WriterConfig{Method: bwt.Method(99)})
	assert.ErrorIs(t, err, ErrInvalid)

	errWrite := errors.New("disk full")
	wr, err := NewWriter(&testutil.BuggyWriter{W: io.Discard, N: 4, Err: errWrite}, nil)
	require.NoError(t, err)
	_, err = wr.Write([]byte("banana"))
	require.NoError(t, err)
	assert.ErrorIs(t, wr.Close(), errWrite)
	assert.EqualValues(t, 4, wr.OutputOffset)
	_, err = wr.Write([]byte("banana"))
	assert.ErrorIs(t, err, errWrite, "writer error should be persistent")
}

func TestDecompressErrors(t *testing.T) {
	var vectors = []struct {
		name  string
		input []byte
		check func(error) bool
	}{
		{"short header", dh("00000000"), IsCorrupted},
		{"empty", nil, IsCorrupted},
		{"dangling byte", dh("0000000000000000 61"), IsCorrupted},
		{"dangling count", dh("0000000000000000 6101"), IsCorrupted},
		{"sentinel past end", dh("0500000000000000 610100"), IsCorrupted},
		{"not a transform", dh("0000000000000000 610100 620100"), IsInvalid},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := Decompress(v.input)
				assert.Error(t, err)
				assert.True(t, v.check(err), "wrong error class: %v", err)
			})
		})
	}

	_, err := Decompress(dh("00000000"))
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestReaderErrors(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil), &ReaderConfig{MaxSize: -1})
	assert.ErrorIs(t, err, ErrInvalid)

	c, err := Compress(bytes.Repeat([]byte{1}, 5000))
	require.NoError(t, err)
	rd, err := NewReader(bytes.NewReader(c), &ReaderConfig{MaxSize: 4096})
	require.NoError(t, err)
	_, err = io.ReadAll(rd)
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.ErrorIs(t, rd.Close(), ErrCorrupted)

	errRead := errors.New("connection reset")
	rd, err = NewReader(&testutil.BuggyReader{R: bytes.NewReader(c), N: 5, Err: errRead}, nil)
	require.NoError(t, err)
	_, err = io.ReadAll(rd)
	assert.ErrorIs(t, err, errRead)
}

func TestSeekableStreams(t *testing.T) {
	input := testutil.Runs(3000)
	want, err := Compress(input)
	require.NoError(t, err)

	// Compress into a fixed-size buffer that fits exactly.
	buf := make([]byte, len(want))
	zw, err := NewWriter(bytesextra.NewReadWriteSeeker(buf), nil)
	require.NoError(t, err)
	_, err = zw.Write(input)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	assert.Equal(t, want, buf)

	// Decompress the same stream twice by seeking back to the start.
	rws := bytesextra.NewReadWriteSeeker(buf)
	zr, err := NewReader(rws, nil)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := rws.Seek(0, io.SeekStart)
		require.NoError(t, err)
		zr.Reset(rws)
		got, err := io.ReadAll(zr)
		require.NoError(t, err, "pass %d", i)
		assert.Equal(t, input, got, "pass %d", i)
		assert.Equal(t, int64(len(buf)), zr.InputOffset, "pass %d", i)
	}

	// A buffer one record too small cannot hold the output.
	small := bytesextra.NewReadWriteSeeker(make([]byte, len(want)-3))
	zw, err = NewWriter(small, nil)
	require.NoError(t, err)
	_, err = zw.Write(input)
	require.NoError(t, err)
	assert.Error(t, zw.Close())
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("banana"))
	f.Add(bytes.Repeat([]byte{5}, 300))
	f.Add(allBytes())
	f.Fuzz(func(t *testing.T, b []byte) {
		c, err := Compress(b)
		if err != nil {
			t.Fatalf("unexpected compress error: %v", err)
		}
		d, err := Decompress(c)
		if err != nil {
			t.Fatalf("unexpected decompress error: %v", err)
		}
		if !bytes.Equal(b, d) {
			t.Fatalf("output mismatch")
		}
	})
}
