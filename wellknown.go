// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

// BuildWellKnown synthesizes a single-record Well-Known message from
// type and payload bytes. The record carries MB and ME, uses the short
// record form when the payload fits in one length byte, and has no id
// field. The byte image goes through the same initialization path as a
// parsed record, so the raw buffer and view offsets are identical to
// what parsing the image would produce; rtd is applied when the record
// factory does not derive a more specific one.
func BuildWellKnown(rtd RTD, typ, payload []byte) (*Record, error) {
	if len(typ) > 0xFF {
		return nil, ErrTypeTooLong
	}
	if uint64(len(payload)) >= maxPayloadLength {
		return nil, ErrPayloadTooLarge
	}

	hdr := byte(hdrMB | hdrME | byte(TNFWellKnown))
	short := len(payload) <= 0xFF

	size := 2 + len(typ) + len(payload)
	if short {
		size++
	} else {
		size += 4
	}
	buf := make([]byte, 0, size)

	if short {
		buf = append(buf, hdr|hdrSR, byte(len(typ)), byte(len(payload)))
	} else {
		buf = append(buf, hdr, byte(len(typ)),
			byte(len(payload)>>24), byte(len(payload)>>16),
			byte(len(payload)>>8), byte(len(payload)))
	}
	typeOffset := len(buf)
	buf = append(buf, typ...)
	buf = append(buf, payload...)

	rec := newRecord(&ndefData{
		rec:           buf,
		typeOffset:    typeOffset,
		typeLength:    len(typ),
		payloadLength: len(payload),
	})
	if rec.rtd == RTDUnknown {
		rec.rtd = rtd
	}
	return rec, nil
}
