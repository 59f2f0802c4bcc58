// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/bwtrle/bwtrle"
)

// refCodec is the codec every other codec is compared against.
const refCodec = "bwtrle"

func init() {
	RegisterEncoder(refCodec,
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := bwtrle.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(refCodec,
		func(r io.Reader) io.ReadCloser {
			zr, err := bwtrle.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
