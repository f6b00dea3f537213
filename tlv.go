// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import "github.com/tehnick/go-nfcd/internal/cursor"

// TLV tags understood by the scanner.
const (
	// TLVNull is a no-op separator with no length or value.
	TLVNull = 0x00
	// TLVNDEFMessage carries an NDEF message as its value.
	TLVNDEFMessage = 0x03
	// TLVTerminator ends TLV iteration.
	TLVTerminator = 0xFE
)

// tlvNext scans the cursor for the next TLV entry with one of the
// recognized tags. NUL tags are skipped, the terminator ends iteration,
// and entries with unrecognized tags are skipped using their declared
// length. A zero tag with nil error means the stream ended.
//
// The length is one byte for values below 0xFF, or 0xFF followed by a
// two-byte big-endian length for values of 0xFF and above. A long form
// declaring a length below 0xFF is malformed.
func tlvNext(cur *cursor.Cursor, recognized ...byte) (byte, []byte, error) {
	for cur.Remaining() > 0 {
		tag, _ := cur.Peek(0)
		_ = cur.Advance(1)

		switch tag {
		case TLVNull:
			continue
		case TLVTerminator:
			return 0, nil, nil
		}

		b, err := cur.Peek(0)
		if err != nil {
			return 0, nil, ErrShortInput
		}
		_ = cur.Advance(1)

		length := int(b)
		if b == 0xFF {
			msb, err := cur.Peek(0)
			if err != nil {
				return 0, nil, ErrShortInput
			}
			lsb, err := cur.Peek(1)
			if err != nil {
				return 0, nil, ErrShortInput
			}
			_ = cur.Advance(2)
			length = int(msb)<<8 | int(lsb)
			if length < 0xFF {
				return 0, nil, ErrMalformedTLV
			}
		}

		value, err := cur.Split(length)
		if err != nil {
			return 0, nil, ErrShortInput
		}
		for _, want := range recognized {
			if tag == want {
				return tag, value, nil
			}
		}
		// Unrecognized tag, skip its value
	}
	return 0, nil, nil
}

// EncodeTLV wraps an NDEF message byte block in NDEF-Message TLV
// framing, terminated with the terminator tag. The short length form is
// used for blocks below 0xFF bytes, the three-byte form otherwise. The
// three-byte form caps the block at 0xFFFF bytes.
func EncodeTLV(block []byte) ([]byte, error) {
	if len(block) > 0xFFFF {
		return nil, ErrPayloadTooLarge
	}
	var out []byte
	if len(block) < 0xFF {
		out = make([]byte, 0, len(block)+3)
		out = append(out, TLVNDEFMessage, byte(len(block)))
	} else {
		out = make([]byte, 0, len(block)+5)
		out = append(out, TLVNDEFMessage, 0xFF,
			byte(len(block)>>8), byte(len(block)))
	}
	out = append(out, block...)
	return append(out, TLVTerminator), nil
}
