// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwtrle/bwtrle"
	"github.com/bwtrle/bwtrle/internal/testutil"
)

// run runs the app with the given arguments and stdin, returning stdout.
func run(t *testing.T, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()
	app := newApp()
	out := new(bytes.Buffer)
	app.Reader = bytes.NewReader(stdin)
	app.Writer = out
	app.ErrWriter = new(bytes.Buffer)
	err := app.Run(append([]string{"bwtrle"}, args...))
	return out.Bytes(), err
}

func TestCompressStdio(t *testing.T) {
	got, err := run(t, []byte("banana"), "compress")
	require.NoError(t, err)
	want := testutil.MustDecodeHex("0400000000000000 610100 6e0200 620100 610200")
	assert.Equal(t, want, got)

	back, err := run(t, got, "decompress")
	require.NoError(t, err)
	assert.Equal(t, "banana", string(back))
}

func TestCompressNaive(t *testing.T) {
	input := testutil.Repeats(2000)
	fast, err := run(t, input, "compress")
	require.NoError(t, err)
	slow, err := run(t, input, "compress", "--naive")
	require.NoError(t, err)
	assert.Equal(t, fast, slow)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "input.bin")
	comp := filepath.Join(dir, "input.bwr")
	back := filepath.Join(dir, "input.out")

	input := testutil.Runs(5000)
	require.NoError(t, os.WriteFile(raw, input, 0644))

	out, err := run(t, nil, "compress", "-o", comp, raw)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, nil, "--verbose", "decompress", "--output", back, comp)
	require.NoError(t, err)

	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	want, err := bwtrle.Compress(input)
	require.NoError(t, err)
	got, err = os.ReadFile(comp)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecompressErrors(t *testing.T) {
	_, err := run(t, []byte{1, 2, 3}, "decompress")
	require.Error(t, err)
	assert.True(t, bwtrle.IsCorrupted(err), "got %v", err)

	comp, err := bwtrle.Compress(make([]byte, 100))
	require.NoError(t, err)
	_, err = run(t, comp, "decompress", "--max-size", "10")
	require.Error(t, err)
	assert.True(t, bwtrle.IsCorrupted(err), "got %v", err)

	_, err = run(t, nil, "decompress", filepath.Join(t.TempDir(), "missing.bwr"))
	assert.Error(t, err)

	_, err = run(t, nil, "decompress", "a", "b")
	assert.Error(t, err)
}

func TestTransform(t *testing.T) {
	stdin := "98 97 110 97 110 97\n\n1,2, x, 300 3\n"
	out, err := run(t, []byte(stdin), "transform", "--quiet")
	require.NoError(t, err)
	want := strings.Join([]string{
		"Burrows-Wheeler transform: 97, 110, 110, 98, $, 97, 97",
		"Burrows-Wheeler transform: $",
		"Burrows-Wheeler transform: 3, $, 1, 2",
		"",
	}, "\n")
	assert.Equal(t, want, string(out))

	out, err = run(t, nil, "transform")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Please enter bytes in decimal")
}

func TestParseBytes(t *testing.T) {
	vectors := []struct {
		line string
		want []byte
	}{
		{"", nil},
		{"1 2 3", []byte{1, 2, 3}},
		{"1,2,,3", []byte{1, 2, 3}},
		{"\t255\t256 -1 0x10 abc 0", []byte{255, 0}},
	}
	for i, v := range vectors {
		got := parseBytes(v.line)
		assert.Equal(t, v.want, got, "test %d, parseBytes(%q)", i, v.line)
	}
}

func TestBench(t *testing.T) {
	out, err := run(t, nil, "bench", "--codecs", "bwtrle", "--tests", "ratio",
		"--inputs", "zeros", "--levels", "6", "--sizes", "1e3", "--csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "test,benchmark,codec,value,delta", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ratio,zeros:6:1e3,bwtrle,"), lines[1])

	_, err = run(t, nil, "bench", "--tests", "speed")
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	for _, sh := range []string{"bash", "zsh", "fish"} {
		out, err := run(t, nil, "completion", "--shell", sh)
		require.NoError(t, err, sh)
		assert.Contains(t, string(out), "bwtrle", sh)
	}
	_, err := run(t, nil, "completion", "--shell", "tcsh")
	assert.Error(t, err)
}
