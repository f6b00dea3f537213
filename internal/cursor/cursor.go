// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

// Package cursor provides a bounds-checked view over a byte buffer.
// The codec's record and TLV framers read their input through a
// Cursor rather than indexing it directly.
package cursor

import "errors"

// ErrShortInput is returned when the input ends before a declared
// length could be read.
var ErrShortInput = errors.New("input shorter than declared length")

// Cursor is a shrinking window over an input buffer.
type Cursor struct {
	buf []byte
	off int
}

// New returns a cursor over buf. The cursor does not copy buf; callers
// must keep it alive and unmodified while the cursor is in use.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Bytes returns the unconsumed tail of the buffer without advancing.
func (c *Cursor) Bytes() []byte {
	return c.buf[c.off:]
}

// Peek returns the byte at the given offset from the current position
// without advancing.
func (c *Cursor) Peek(off int) (byte, error) {
	if off < 0 || off >= c.Remaining() {
		return 0, ErrShortInput
	}
	return c.buf[c.off+off], nil
}

// Advance consumes n bytes.
func (c *Cursor) Advance(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrShortInput
	}
	c.off += n
	return nil
}

// Split consumes the next n bytes and returns them as a subslice of
// the underlying buffer.
func (c *Cursor) Split(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrShortInput
	}
	out := c.buf[c.off : c.off+n]
	c.off += n
	return out, nil
}
