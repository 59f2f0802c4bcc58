// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/gocarina/gocsv"
)

const (
	DefaultLevels = "6"
	DefaultSizes  = "1e4,1e5"
)

var sep = regexp.MustCompile("[,:]")

// Config selects what Run measures.
type Config struct {
	Codecs []string // Names of registered codecs
	Tests  []int    // TestEncodeRate, TestDecodeRate, or TestCompressRatio
	Inputs []string // Generator names or file paths
	Levels []int    // Compression levels passed to encoders
	Sizes  []int    // Input sizes in bytes

	CSV      bool      // Write results as CSV instead of a table
	Output   io.Writer // Destination of the results
	Progress io.Writer // Destination of progress updates; may be nil
}

// DefaultTests returns every test name, comma separated.
func DefaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

// ParseTests parses a list of test names such as "encRate,ratio".
func ParseTests(s string) ([]int, error) {
	var tests []int
	for _, t := range sep.Split(s, -1) {
		v, ok := testToEnum[t]
		if !ok {
			return nil, fmt.Errorf("invalid test: %q", t)
		}
		tests = append(tests, v)
	}
	return tests, nil
}

// ParseInts parses a list of integers, each of which may carry an SI or IEC
// prefix such as "1e5", "64Ki", or "1M".
func ParseInts(s string) ([]int, error) {
	var vals []int
	for _, t := range sep.Split(s, -1) {
		f, err := strconv.ParsePrefix(t, strconv.AutoParse)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %v", t, err)
		}
		vals = append(vals, int(f))
	}
	return vals, nil
}

// SplitList splits a comma or colon separated list.
func SplitList(s string) []string { return sep.Split(s, -1) }

// Row is one measurement in CSV output.
type Row struct {
	Test      string  `csv:"test"`
	Benchmark string  `csv:"benchmark"`
	Codec     string  `csv:"codec"`
	Value     float64 `csv:"value"`
	Delta     float64 `csv:"delta"`
}

// Run performs every benchmark in cfg and writes the results to cfg.Output.
func Run(cfg Config) error {
	var encs, decs []string
	for _, c := range cfg.Codecs {
		if _, ok := Encoders[c]; ok {
			encs = append(encs, c)
		} else {
			return fmt.Errorf("unknown codec: %q", c)
		}
		if _, ok := Decoders[c]; ok {
			decs = append(decs, c)
		}
	}

	var rows []*Row
	for _, t := range cfg.Tests {
		var results [][]Result
		var names, codecs []string
		var title, suffix string

		// Progress ticker.
		var cnt int
		tick := func() {
			if cfg.Progress == nil {
				return
			}
			total := len(codecs) * len(cfg.Inputs) * len(cfg.Levels) * len(cfg.Sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Fprintf(cfg.Progress, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		switch t {
		case TestEncodeRate:
			codecs, title, suffix = encs, "MB/s", ""
			results, names = BenchmarkEncoderSuite(encs, cfg.Inputs, cfg.Levels, cfg.Sizes, tick)
		case TestDecodeRate:
			codecs, title, suffix = decs, "MB/s", ""
			results, names = BenchmarkDecoderSuite(decs, cfg.Inputs, cfg.Levels, cfg.Sizes, tick)
		case TestCompressRatio:
			codecs, title, suffix = encs, "ratio", "x"
			results, names = BenchmarkRatioSuite(encs, cfg.Inputs, cfg.Levels, cfg.Sizes, tick)
		default:
			return fmt.Errorf("unknown test: %d", t)
		}

		if cfg.CSV {
			for j, row := range results {
				for i, r := range row {
					rows = append(rows, &Row{
						Test:      enumToTest[t],
						Benchmark: names[j],
						Codec:     codecs[i],
						Value:     finite(r.R),
						Delta:     finite(r.D),
					})
				}
			}
			continue
		}
		fmt.Fprintf(cfg.Output, "BENCHMARK: %s\n", enumToTest[t])
		if len(codecs) == 0 {
			fmt.Fprintf(cfg.Output, "\tSKIP: There are no codecs available.\n\n")
			continue
		}
		printResults(cfg.Output, results, names, codecs, title, suffix)
		fmt.Fprintln(cfg.Output)
	}
	if cfg.CSV {
		return gocsv.Marshal(&rows, cfg.Output)
	}
	return nil
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func printResults(w io.Writer, results [][]Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Fprint(w, "\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Fprint(w, row[i])
		}
		fmt.Fprintln(w)
	}
}
