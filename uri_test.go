// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uriRecord frames a short Well-Known "U" record around payload.
func uriRecord(payload []byte) []byte {
	out := []byte{0xD1, 0x01, byte(len(payload)), 0x55}
	return append(out, payload...)
}

func TestDecodeURIPrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{
			name:    "http://www. prefix",
			payload: []byte{0x01, 0x6E, 0x66, 0x63, 0x2D, 0x66, 0x6F, 0x72, 0x75, 0x6D, 0x2E, 0x6F, 0x72, 0x67},
			want:    "http://www.nfc-forum.org",
		},
		{
			name:    "no prefix",
			payload: append([]byte{0x00}, "example.com"...),
			want:    "example.com",
		},
		{
			name:    "https prefix",
			payload: append([]byte{0x04}, "example.com"...),
			want:    "https://example.com",
		},
		{
			name:    "tel prefix",
			payload: append([]byte{0x05}, "123456"...),
			want:    "tel:123456",
		},
		{
			name:    "file prefix",
			payload: append([]byte{0x1D}, "etc/hosts"...),
			want:    "file://etc/hosts",
		},
		{
			name:    "urn:nfc prefix, last table entry",
			payload: append([]byte{0x23}, "sn:123"...),
			want:    "urn:nfc:sn:123",
		},
		{
			name:    "unknown identifier code maps to no prefix",
			payload: append([]byte{0x24}, "tail"...),
			want:    "tail",
		},
		{
			name:    "high identifier code maps to no prefix",
			payload: append([]byte{0xFF}, "tail"...),
			want:    "tail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			rec, err := ParseBlock(uriRecord(tt.payload))
			require.NoError(t, err)
			require.Equal(t, RTDURI, rec.RTD())
			assert.Equal(t, tt.want, rec.URI())
		})
	}
}

func TestDecodeURIRejectsBadTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "invalid UTF-8 tail", payload: []byte{0x01, 0xFF, 0xFE}},
		{name: "control character in tail", payload: []byte{0x01, 0x61, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			input := uriRecord(tt.payload)
			rec, err := ParseBlock(input)
			require.NoError(t, err)

			// Decoder rejects, factory keeps the record generic
			assert.Equal(t, RTDUnknown, rec.RTD())
			assert.Equal(t, TNFWellKnown, rec.TNF())
			assert.Empty(t, rec.URI())
			assert.Equal(t, input, rec.Raw())
		})
	}
}

func TestNewURIRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		wantCode byte
		wantTail string
	}{
		{name: "https www picks the longest prefix", uri: "https://www.example.com", wantCode: 0x02, wantTail: "example.com"},
		{name: "https without www", uri: "https://example.com", wantCode: 0x04, wantTail: "example.com"},
		{name: "mailto", uri: "mailto:joe@example.com", wantCode: 0x06, wantTail: "joe@example.com"},
		{name: "no known prefix", uri: "spotify:track:123", wantCode: 0x00, wantTail: "spotify:track:123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			rec, err := NewURIRecord(tt.uri)
			require.NoError(t, err)

			require.Equal(t, RTDURI, rec.RTD())
			assert.Equal(t, tt.uri, rec.URI())

			payload := rec.Payload()
			require.NotEmpty(t, payload)
			assert.Equal(t, tt.wantCode, payload[0])
			assert.Equal(t, tt.wantTail, string(payload[1:]))

			// The byte image parses back to the same record
			reparsed, err := ParseBlock(rec.Raw())
			require.NoError(t, err)
			assert.Equal(t, tt.uri, reparsed.URI())
		})
	}
}

func TestNewURIRecordRejectsControlCharacters(t *testing.T) {
	t.Parallel()

	_, err := NewURIRecord("http://example.com/\x00")
	assert.ErrorIs(t, err, ErrInvalidURI)
}
