// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package handlers

import (
	"strings"

	nfcd "github.com/tehnick/go-nfcd"
)

// validMediaTypeToken reports whether s is a usable media type token:
// non-empty printable ASCII without separators or wildcards.
func validMediaTypeToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f || c == '*' || c == '/' {
			return false
		}
	}
	return true
}

// RecordMediaType returns the media type of a record, or "" when the
// record is not a valid media-type record. Valid means TNF media-type
// and a strict "type/subtype" type field; wildcards are configuration
// syntax and never valid in a record.
func RecordMediaType(rec *nfcd.Record) string {
	if rec == nil || rec.TNF() != nfcd.TNFMediaType {
		return ""
	}
	mediatype := string(rec.Type())
	slash := strings.IndexByte(mediatype, '/')
	if slash < 0 {
		return ""
	}
	if !validMediaTypeToken(mediatype[:slash]) ||
		!validMediaTypeToken(mediatype[slash+1:]) {
		return ""
	}
	return strings.ToLower(mediatype)
}

// IsMediaTypeRecord reports whether rec is a valid media-type record.
func IsMediaTypeRecord(rec *nfcd.Record) bool {
	return RecordMediaType(rec) != ""
}

// mediaTypePattern is a parsed MediaType configuration value: an exact
// "type/subtype", a "type/*" wildcard, or "*/*".
type mediaTypePattern struct {
	typ     string
	subtype string
}

func parseMediaTypePattern(s string) (mediaTypePattern, bool) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return mediaTypePattern{}, false
	}
	typ, subtype := s[:slash], s[slash+1:]
	if typ == "*" && subtype == "*" {
		return mediaTypePattern{typ: "*", subtype: "*"}, true
	}
	if !validMediaTypeToken(typ) {
		return mediaTypePattern{}, false
	}
	if subtype == "*" {
		return mediaTypePattern{typ: strings.ToLower(typ), subtype: "*"}, true
	}
	if !validMediaTypeToken(subtype) {
		return mediaTypePattern{}, false
	}
	return mediaTypePattern{
		typ:     strings.ToLower(typ),
		subtype: strings.ToLower(subtype),
	}, true
}

// match reports whether the pattern covers mediatype, which must
// already be lowercase "type/subtype".
func (p mediaTypePattern) match(mediatype string) bool {
	if p.typ == "*" {
		return true
	}
	slash := strings.IndexByte(mediatype, '/')
	if slash < 0 || mediatype[:slash] != p.typ {
		return false
	}
	return p.subtype == "*" || mediatype[slash+1:] == p.subtype
}

// specificity orders patterns for dispatch: exact beats "type/*" beats
// "*/*".
func (p mediaTypePattern) specificity() int {
	switch {
	case p.typ == "*":
		return 0
	case p.subtype == "*":
		return 1
	default:
		return 2
	}
}
