// Copyright 2024, The bwtrle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements the error type shared by every package in this
// module. Errors carry a code that classifies the failure so that callers can
// tell malformed input apart from misuse without matching on messages.
package errors

import (
	stderrors "errors"
	"strings"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file a issue report if this type of error is encountered.
	Internal

	// Invalid indicates that a symbol sequence or an index violates the
	// invariants of the transform (missing or duplicate sentinel, an index out
	// of range, a column that is not a valid transform output).
	Invalid

	// Corrupted indicates that the compressed stream is malformed.
	Corrupted

	// Closed indicates that the handlers are closed.
	Closed
)

var codeMap = map[int]string{
	Unknown:   "unknown error",
	Internal:  "internal error",
	Invalid:   "invalid argument",
	Corrupted: "corrupted input",
	Closed:    "closed handler",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

// Is reports whether target is an Error with the same code. A target that
// names a package or message must also match those fields.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return (t.Pkg == "" || t.Pkg == e.Pkg) && (t.Msg == "" || t.Msg == e.Msg)
}

func (e Error) IsInternal() bool  { return e.Code == Internal }
func (e Error) IsInvalid() bool   { return e.Code == Invalid }
func (e Error) IsCorrupted() bool { return e.Code == Corrupted }
func (e Error) IsClosed() bool    { return e.Code == Closed }

func IsInternal(err error) bool  { return isCode(err, Internal) }
func IsInvalid(err error) bool   { return isCode(err, Invalid) }
func IsCorrupted(err error) bool { return isCode(err, Corrupted) }
func IsClosed(err error) bool    { return isCode(err, Closed) }

func isCode(err error, code int) bool {
	var cerr Error
	return stderrors.As(err, &cerr) && cerr.Code == code
}
