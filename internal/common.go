// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !gofuzz

// Package internal holds build-wide switches shared by the packages of this
// module.
package internal

const (
	// Debug enables expensive self-checks inside the transform.
	Debug = false

	// GoFuzz is set when building with go-fuzz.
	GoFuzz = false
)
