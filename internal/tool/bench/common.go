// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various compression implementations
// with respect to encode speed, decode speed, and ratio.
package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"

	"github.com/bwtrle/bwtrle/internal/testutil"
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

var (
	testToEnum = map[string]int{
		"encRate": TestEncodeRate,
		"decRate": TestDecodeRate,
		"ratio":   TestCompressRatio,
	}
	enumToTest = map[int]string{
		TestEncodeRate:    "encRate",
		TestDecodeRate:    "decRate",
		TestCompressRatio: "ratio",
	}
)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[string]Encoder
	Decoders map[string]Decoder

	// List of search paths for input files.
	Paths []string
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// Codecs returns the names of all codecs with an encoder or a decoder,
// with the codec of this module first.
func Codecs() []string {
	m := make(map[string]bool)
	for k := range Encoders {
		m[k] = true
	}
	for k := range Decoders {
		m[k] = true
	}
	hasOwn := m[refCodec]
	delete(m, refCodec)
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasOwn {
		s = append([]string{refCodec}, s...)
	}
	return s
}

// BenchmarkEncoder benchmarks a single encoder on the given input data using
// the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(io.Discard, lvl)
			_, err := io.Copy(wr, bytes.NewBuffer(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bufio.NewReader(bytes.NewBuffer(input)))
			cnt, err := io.Copy(io.Discard, rd)
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(cnt))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkEncoderSuite runs multiple benchmarks across all encoder
// implementations, inputs, levels, and sizes.
//
// The values returned have the following structure:
//	results: [len(inputs)*len(levels)*len(sizes)][len(encs)]Result
//	names:   [len(inputs)*len(levels)*len(sizes)]string
func BenchmarkEncoderSuite(encs, inputs []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, inputs, levels, sizes, tick,
		func(input []byte, enc string, lvl int) Result {
			result := BenchmarkEncoder(input, Encoders[enc], lvl)
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkDecoderSuite runs multiple benchmarks across all decoder
// implementations, inputs, levels, and sizes. Each decoder is given the output
// of the encoder registered under the same name.
func BenchmarkDecoderSuite(decs, inputs []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(decs, inputs, levels, sizes, tick,
		func(input []byte, dec string, lvl int) Result {
			enc := Encoders[dec]
			if enc == nil {
				return Result{}
			}
			output, err := encode(input, enc, lvl)
			if err != nil {
				return Result{}
			}

			result := BenchmarkDecoder(output, Decoders[dec])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkRatioSuite runs multiple benchmarks across all encoder
// implementations, inputs, levels, and sizes.
func BenchmarkRatioSuite(encs, inputs []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, inputs, levels, sizes, tick,
		func(input []byte, enc string, lvl int) Result {
			output, err := encode(input, Encoders[enc], lvl)
			if err != nil || len(output) == 0 {
				return Result{}
			}
			ratio := float64(len(input)) / float64(len(output))
			return Result{R: ratio}
		})
}

func encode(input []byte, enc Encoder, lvl int) ([]byte, error) {
	buf := new(bytes.Buffer)
	wr := enc(buf, lvl)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type benchFunc func(input []byte, codec string, level int) Result

func benchmarkSuite(codecs, inputs []string, levels, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(inputs) * len(levels) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, input, level, and size.
	var i int
	for _, f := range inputs {
		for _, l := range levels {
			for _, n := range sizes {
				b, err := LoadInput(f, n)
				name := getName(f, l, len(b))
				for j, c := range codecs {
					if tick != nil {
						tick()
					}
					names[i] = name
					if err == nil {
						results[i][j] = run(b, c, l)
					}
					results[i][j].D = results[i][j].R / results[i][0].R
				}
				i++
			}
		}
	}
	return results, names
}

// LoadInput returns n bytes of the named input. The name is either one of
// testutil.Generators or a file, searched for in Paths when it is relative.
func LoadInput(name string, n int) ([]byte, error) {
	if gen, ok := testutil.Generators[name]; ok {
		if n < 0 {
			n = 1 << 20
		}
		return gen(n), nil
	}
	return testutil.LoadFile(getPath(name), n)
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, l, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%d:%s", path.Base(f), l, sn)
}
