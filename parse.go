// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import "github.com/tehnick/go-nfcd/internal/cursor"

// Payload lengths at or above this value are rejected as garbage. The
// cap bounds the maximum decodable payload to just under 2 GiB.
const maxPayloadLength = 0x80000000

// parseRecord frames exactly one NDEF record out of the cursor. On
// success the cursor has advanced past the record and the returned
// descriptor indexes the still-valid input. All length arithmetic is
// done in uint64 so the total cannot wrap.
func parseRecord(cur *cursor.Cursor) (*ndefData, error) {
	if cur.Remaining() < 3 {
		// At least 3 bytes is required for anything meaningful
		debugf("block is too short to be an NDEF record")
		return nil, ErrShortInput
	}

	hdr, _ := cur.Peek(0)
	typeLen, _ := cur.Peek(1)
	d := &ndefData{typeLength: int(typeLen)}
	pos := 2

	var payloadLen uint64
	if hdr&hdrSR != 0 {
		// Short record
		b, _ := cur.Peek(pos)
		payloadLen = uint64(b)
		pos++
	} else {
		// 4 bytes for length
		for i := 0; i < 4; i++ {
			b, err := cur.Peek(pos + i)
			if err != nil {
				return nil, ErrShortInput
			}
			payloadLen = payloadLen<<8 | uint64(b)
		}
		pos += 4
	}

	if hdr&hdrIL != 0 {
		b, err := cur.Peek(pos)
		if err != nil {
			return nil, ErrShortInput
		}
		d.idLength = int(b)
		pos++
	}
	d.typeOffset = pos

	total := uint64(pos) + uint64(d.typeLength) + uint64(d.idLength) + payloadLen
	if payloadLen >= maxPayloadLength || total > uint64(cur.Remaining()) {
		debugf("garbage (lengths don't add up)")
		return nil, ErrGarbage
	}

	d.payloadLength = int(payloadLen)
	d.rec, _ = cur.Split(int(total))
	return d, nil
}

// ParseBlock parses a bare NDEF message into a chain of records.
//
// An empty input yields a single empty record. A malformed stream stops
// parsing at the last fully framed record; if nothing was framed, no
// chain is returned along with the framing error. Records with the
// chunk flag set are skipped. MB/ME header bits are preserved verbatim.
func ParseBlock(block []byte) (*Record, error) {
	if len(block) == 0 {
		// Special case - empty NDEF
		debugf("empty NDEF")
		return newEmptyRecord(), nil
	}

	cur := cursor.New(block)
	var first, last *Record
	for cur.Remaining() > 0 {
		d, err := parseRecord(cur)
		if err != nil {
			if first == nil {
				return nil, err
			}
			debugf("truncating chain: %v", err)
			break
		}
		if d.rec[0]&hdrCF != 0 {
			// Who needs those anyway?
			warnf("chunked records are not supported")
			continue
		}
		rec := newRecord(d)
		if last != nil {
			last.next = rec
		} else {
			first = rec
		}
		last = rec
	}
	return first, nil
}

// ParseTLV parses a TLV stream, extracting every NDEF message value and
// concatenating the per-message chains in on-wire order. Iteration ends
// at the terminator tag or when the input is exhausted.
//
// Boundaries between the originating messages are not preserved; the
// MB/ME pattern of a multi-message chain may be non-canonical.
func ParseTLV(tlv []byte) (*Record, error) {
	cur := cursor.New(tlv)
	var first, last *Record
	for {
		tag, value, err := tlvNext(cur, TLVNDEFMessage)
		if err != nil {
			if first == nil {
				return nil, err
			}
			debugf("truncating TLV stream: %v", err)
			break
		}
		if tag == 0 {
			break
		}
		rec, err := ParseBlock(value)
		if rec == nil {
			debugf("skipping unparseable NDEF message: %v", err)
			continue
		}
		if last != nil {
			last.next = rec
		} else {
			first = rec
		}
		// ParseBlock can return a chain
		last = rec
		for last.next != nil {
			last = last.next
		}
	}
	return first, nil
}
