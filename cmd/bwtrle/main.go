// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwtrle compresses and decompresses files with the Burrows-Wheeler
// transform followed by run-length encoding.
//
// Example usage:
//	$ bwtrle compress -o twain.bwr twain.txt
//	$ bwtrle decompress twain.bwr > twain.out
//	$ echo "98 97 110 97 110 97" | bwtrle transform
//	$ bwtrle bench -tests ratio -inputs runs,random -sizes 1e4,1e5
package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bwtrle/bwtrle/internal/testutil"
	"github.com/bwtrle/bwtrle/internal/tool/bench"
)

const envPrefix = "BWTRLE_"

var verbose bool

// logf logs only when --verbose is set.
func logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

func env(name string) []string { return []string{envPrefix + name} }

func newApp() *cli.App {
	return &cli.App{
		Name:                 "bwtrle",
		Usage:                "Burrows-Wheeler transform and run-length compressor",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log diagnostics to stderr",
				EnvVars: env("VERBOSE"),
			},
		},
		Before: func(c *cli.Context) error {
			verbose = c.Bool("verbose")
			log.SetOutput(c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Aliases:   []string{"c"},
				Usage:     "Compress FILE or stdin",
				ArgsUsage: "[FILE]",
				Action:    compressAction,
				Flags: []cli.Flag{
					outputFlag(),
					&cli.BoolFlag{
						Name:    "naive",
						Usage:   "sort rotations with the comparison sort",
						EnvVars: env("NAIVE"),
					},
				},
			},
			{
				Name:      "decompress",
				Aliases:   []string{"d"},
				Usage:     "Decompress FILE or stdin",
				ArgsUsage: "[FILE]",
				Action:    decompressAction,
				Flags: []cli.Flag{
					outputFlag(),
					&cli.IntFlag{
						Name:    "max-size",
						Usage:   "reject streams that expand beyond this many bytes (0 means no limit)",
						EnvVars: env("MAX_SIZE"),
					},
				},
			},
			{
				Name:   "transform",
				Usage:  "Print the transform of each line of decimal bytes read from stdin",
				Action: transformAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "omit the usage banner",
					},
				},
			},
			{
				Name:   "bench",
				Usage:  "Compare encode rate, decode rate and ratio across codecs",
				Action: benchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "codecs",
						Value:   strings.Join(bench.Codecs(), ","),
						Usage:   "list of codecs to benchmark",
						EnvVars: env("CODECS"),
					},
					&cli.StringFlag{
						Name:    "tests",
						Value:   bench.DefaultTests(),
						Usage:   "list of benchmark tests to run",
						EnvVars: env("TESTS"),
					},
					&cli.StringFlag{
						Name:    "inputs",
						Value:   strings.Join(testutil.GeneratorNames(), ","),
						Usage:   "list of generated inputs or files to benchmark",
						EnvVars: env("INPUTS"),
					},
					&cli.StringFlag{
						Name:    "paths",
						Usage:   "list of paths to search for input files",
						EnvVars: env("PATHS"),
					},
					&cli.StringFlag{
						Name:    "levels",
						Value:   bench.DefaultLevels,
						Usage:   "list of compression levels passed to other codecs",
						EnvVars: env("LEVELS"),
					},
					&cli.StringFlag{
						Name:    "sizes",
						Value:   bench.DefaultSizes,
						Usage:   "list of input sizes to benchmark",
						EnvVars: env("SIZES"),
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "write results as CSV",
					},
				},
			},
			{
				Name:   "completion",
				Usage:  "Print a shell completion script",
				Action: completionAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "shell",
						Usage:    "one of bash, zsh, or fish",
						Required: true,
					},
				},
			},
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to `FILE` instead of stdout",
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bwtrle: ")
	if err := newApp().Run(os.Args); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
