// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"errors"

	"github.com/tehnick/go-nfcd/internal/cursor"
)

var (
	// ErrShortInput is returned when the input ends before a declared
	// length could be read.
	ErrShortInput = cursor.ErrShortInput

	// ErrGarbage is returned when declared record lengths exceed the
	// buffer, or the payload length is 2 GiB or more.
	ErrGarbage = errors.New("garbage: record lengths don't add up")

	// ErrMalformedTLV is returned when a TLV length encoding is
	// inconsistent.
	ErrMalformedTLV = errors.New("malformed TLV length encoding")

	// ErrTypeTooLong is returned by record builders when the type field
	// exceeds 255 bytes.
	ErrTypeTooLong = errors.New("record type exceeds 255 bytes")

	// ErrPayloadTooLarge is returned by record builders when the payload
	// exceeds the decodable maximum of just under 2 GiB, and by EncodeTLV
	// when the block exceeds 0xFFFF bytes.
	ErrPayloadTooLarge = errors.New("payload exceeds NDEF length limit")

	// ErrInvalidLanguage is returned when a text record language code is
	// empty, longer than 63 bytes, or uses characters outside the NDEF
	// language-code alphabet.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrInvalidText is returned when text is not valid in the requested
	// encoding.
	ErrInvalidText = errors.New("text is not valid in the record encoding")

	// ErrInvalidURI is returned when a URI is not valid UTF-8 or contains
	// control characters.
	ErrInvalidURI = errors.New("URI is not valid UTF-8 text")
)
