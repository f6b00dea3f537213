// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// TextEncoding is the on-wire encoding of a Text record payload.
type TextEncoding uint8

const (
	// EncodingUTF8 is the default text encoding.
	EncodingUTF8 TextEncoding = iota
	// EncodingUTF16 is UTF-16 with an optional byte order mark;
	// big-endian when the mark is absent.
	EncodingUTF16
)

// String returns the IANA name of the encoding.
func (e TextEncoding) String() string {
	if e == EncodingUTF16 {
		return "UTF-16"
	}
	return "UTF-8"
}

// Text record status byte: bit 7 selects the encoding, bit 6 is
// reserved and must be zero, bits 5-0 carry the language code length.
const (
	textStatusUTF16    = 0x80
	textStatusReserved = 0x40
	textStatusLangMask = 0x3F
)

// validLanguageCode reports whether lang is a usable IANA language tag:
// 1 to 63 bytes of ASCII letters, digits and hyphens.
func validLanguageCode(lang []byte) bool {
	if len(lang) == 0 || len(lang) > textStatusLangMask {
		return false
	}
	for _, c := range lang {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

var utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// decodeTextRecord interprets a Text record payload: status byte,
// language code, then the text in the indicated encoding. Any malformed
// header or undecodable text rejects the payload and the factory keeps
// the record generic.
func decodeTextRecord(d *ndefData) (*Record, bool) {
	payload := d.payloadBytes()
	if len(payload) == 0 {
		return nil, false
	}

	status := payload[0]
	if status&textStatusReserved != 0 {
		return nil, false
	}
	langLen := int(status & textStatusLangMask)
	if langLen > len(payload)-1 {
		return nil, false
	}
	lang := payload[1 : 1+langLen]
	if langLen > 0 && !validLanguageCode(lang) {
		return nil, false
	}

	raw := payload[1+langLen:]
	enc := EncodingUTF8
	var text string
	if status&textStatusUTF16 != 0 {
		enc = EncodingUTF16
		if len(raw)%2 != 0 {
			return nil, false
		}
		decoded, err := utf16Decoder.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, false
		}
		text = string(decoded)
	} else {
		if !utf8.Valid(raw) {
			return nil, false
		}
		text = string(raw)
	}

	rec := initRecord(RTDText, d)
	rec.text = text
	rec.lang = string(lang)
	rec.enc = enc
	return rec, true
}

// NewTextRecord builds a single-record Well-Known Text message from a
// UTF-8 string and an IANA language tag.
func NewTextRecord(text, lang string) (*Record, error) {
	if !validLanguageCode([]byte(lang)) {
		return nil, ErrInvalidLanguage
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	payload := make([]byte, 0, 1+len(lang)+len(text))
	payload = append(payload, byte(len(lang)))
	payload = append(payload, lang...)
	payload = append(payload, text...)
	return BuildWellKnown(RTDText, rtdTypeText, payload)
}
