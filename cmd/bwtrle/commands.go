// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/bwtrle/bwtrle"
	"github.com/bwtrle/bwtrle/bwt"
	"github.com/bwtrle/bwtrle/internal/tool/bench"
)

// openInput returns the file named by the only argument, or stdin if there
// is none or it is "-".
func openInput(c *cli.Context) (io.ReadCloser, error) {
	if c.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", c.NArg())
	}
	name := c.Args().First()
	if name == "" || name == "-" {
		return io.NopCloser(c.App.Reader), nil
	}
	return os.Open(name)
}

// createOutput returns the file named by --output, or stdout if unset.
func createOutput(c *cli.Context) (io.WriteCloser, error) {
	name := c.String("output")
	if name == "" || name == "-" {
		return nopWriteCloser{c.App.Writer}, nil
	}
	return os.Create(name)
}

// withFiles opens the input and output of c and runs fn on them.
// Errors from closing the output are joined with the error from fn.
func withFiles(c *cli.Context, fn func(io.Reader, io.Writer) error) (err error) {
	rd, err := openInput(c)
	if err != nil {
		return err
	}
	defer rd.Close()

	wr, err := createOutput(c)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wr.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()
	return fn(rd, wr)
}

func compressAction(c *cli.Context) error {
	conf := new(bwtrle.WriterConfig)
	if c.Bool("naive") {
		conf.Method = bwt.NaiveSort
	}
	return withFiles(c, func(r io.Reader, w io.Writer) error {
		ts := time.Now()
		zw, err := bwtrle.NewWriter(w, conf)
		if err != nil {
			return err
		}
		if _, err := io.Copy(zw, r); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		logf("compressed %d bytes into %d bytes using %v sort in %v",
			zw.InputOffset, zw.OutputOffset, conf.Method, time.Since(ts))
		return nil
	})
}

func decompressAction(c *cli.Context) error {
	conf := &bwtrle.ReaderConfig{MaxSize: c.Int("max-size")}
	return withFiles(c, func(r io.Reader, w io.Writer) error {
		ts := time.Now()
		zr, err := bwtrle.NewReader(r, conf)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, zr); err != nil {
			return err
		}
		if err := zr.Close(); err != nil {
			return err
		}
		logf("decompressed %d bytes into %d bytes in %v",
			zr.InputOffset, zr.OutputOffset, time.Since(ts))
		return nil
	})
}

// parseBytes parses decimal byte values separated by whitespace or commas.
// Tokens that are not a byte value are skipped.
func parseBytes(line string) []byte {
	toks := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	var b []byte
	for _, tok := range toks {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			continue
		}
		b = append(b, byte(v))
	}
	return b
}

func transformAction(c *cli.Context) error {
	if !c.Bool("quiet") {
		fmt.Fprintln(c.App.Writer, "Please enter bytes in decimal separated by whitespace or comma. Non-byte-parsable values will be ignored")
	}
	var t bwt.Transform
	sc := bufio.NewScanner(c.App.Reader)
	for sc.Scan() {
		out, err := t.Forward(bwt.NewSequence(parseBytes(sc.Text())))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Burrows-Wheeler transform: %v\n", out.Last)
	}
	return sc.Err()
}

func benchAction(c *cli.Context) error {
	tests, err := bench.ParseTests(c.String("tests"))
	if err != nil {
		return err
	}
	levels, err := bench.ParseInts(c.String("levels"))
	if err != nil {
		return err
	}
	sizes, err := bench.ParseInts(c.String("sizes"))
	if err != nil {
		return err
	}
	if p := c.String("paths"); p != "" {
		bench.Paths = bench.SplitList(p)
	}

	cfg := bench.Config{
		Codecs: bench.SplitList(c.String("codecs")),
		Tests:  tests,
		Inputs: bench.SplitList(c.String("inputs")),
		Levels: levels,
		Sizes:  sizes,
		CSV:    c.Bool("csv"),
		Output: c.App.Writer,
	}
	if verbose {
		cfg.Progress = c.App.ErrWriter
	}

	ts := time.Now()
	if err := bench.Run(cfg); err != nil {
		return err
	}
	logf("benchmarks finished in %v", time.Since(ts))
	return nil
}
