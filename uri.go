// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// uriPrefixes is the URI identifier code table from the NFC Forum URI
// RTD specification. The first payload byte indexes it; index 0 and any
// index past the end mean no prefix.
var uriPrefixes = [36]string{
	"",
	"http://www.",
	"https://www.",
	"http://",
	"https://",
	"tel:",
	"mailto:",
	"ftp://anonymous:anonymous@",
	"ftp://ftp.",
	"ftps://",
	"sftp://",
	"smb://",
	"nfs://",
	"ftp://",
	"dav://",
	"news:",
	"telnet://",
	"imap:",
	"rtsp://",
	"urn:",
	"pop:",
	"sip:",
	"sips:",
	"tftp:",
	"btspp://",
	"btl2cap://",
	"btgoep://",
	"tcpobex://",
	"irdaobex://",
	"file://",
	"urn:epc:id:",
	"urn:epc:tag:",
	"urn:epc:pat:",
	"urn:epc:raw:",
	"urn:epc:",
	"urn:nfc:",
}

// printableUTF8 reports whether b is valid UTF-8 with no control
// characters.
func printableUTF8(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// decodeURIRecord interprets a URI record payload: one identifier code
// byte selecting a prefix, followed by the URI tail taken as-is. An
// empty payload decodes to an empty URI.
func decodeURIRecord(d *ndefData) (*Record, bool) {
	payload := d.payloadBytes()
	if len(payload) == 0 {
		rec := initRecord(RTDURI, d)
		return rec, true
	}

	var prefix string
	if code := payload[0]; int(code) < len(uriPrefixes) {
		prefix = uriPrefixes[code]
	}
	tail := payload[1:]
	if !printableUTF8(tail) {
		return nil, false
	}

	rec := initRecord(RTDURI, d)
	rec.uri = prefix + string(tail)
	return rec, true
}

// NewURIRecord builds a single-record Well-Known URI message from a
// URI string. The longest matching prefix from the identifier table is
// compressed into the identifier code byte.
func NewURIRecord(uri string) (*Record, error) {
	if !printableUTF8([]byte(uri)) {
		return nil, ErrInvalidURI
	}

	code := 0
	for i, prefix := range uriPrefixes {
		if i == 0 || prefix == "" {
			continue
		}
		if strings.HasPrefix(uri, prefix) && len(prefix) > len(uriPrefixes[code]) {
			code = i
		}
	}

	payload := make([]byte, 0, 1+len(uri))
	payload = append(payload, byte(code))
	payload = append(payload, uri[len(uriPrefixes[code]):]...)
	return BuildWellKnown(RTDURI, rtdTypeURI, payload)
}
