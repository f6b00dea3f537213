// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tlvEntry frames value with the given tag in short or long form.
func tlvEntry(tag byte, value []byte) []byte {
	out := []byte{tag}
	if len(value) < 0xFF {
		out = append(out, byte(len(value)))
	} else {
		out = append(out, 0xFF, byte(len(value)>>8), byte(len(value)))
	}
	return append(out, value...)
}

func TestParseTLVSelectsNDEFMessages(t *testing.T) {
	t.Parallel()

	msgA := []byte{0xD1, 0x01, 0x00, 0x55}                               // URI ""
	msgB := []byte{0xD1, 0x01, 0x05, 0x54, 0x02, 0x65, 0x6E, 0x48, 0x69} // Text "Hi"
	msgC := []byte{0xD1, 0x01, 0x01, 0x55, 0x00}

	var stream []byte
	stream = append(stream, TLVNull)
	stream = append(stream, tlvEntry(TLVNDEFMessage, msgA)...)
	stream = append(stream, TLVNull)
	stream = append(stream, tlvEntry(TLVNDEFMessage, msgB)...)
	stream = append(stream, TLVTerminator)
	// Past the terminator, must not be parsed
	stream = append(stream, tlvEntry(TLVNDEFMessage, msgC)...)

	rec, err := ParseTLV(stream)
	require.NoError(t, err)

	recs := chain(rec)
	require.Len(t, recs, 2)
	assert.Equal(t, RTDURI, recs[0].RTD())
	assert.Equal(t, RTDText, recs[1].RTD())
	assert.Equal(t, "Hi", recs[1].Text())
}

func TestParseTLVSkipsUnrecognizedTags(t *testing.T) {
	t.Parallel()

	var stream []byte
	stream = append(stream, tlvEntry(0x01, []byte{0xAA, 0xBB})...) // lock control
	stream = append(stream, tlvEntry(TLVNDEFMessage, []byte{0xD1, 0x01, 0x00, 0x55})...)
	stream = append(stream, TLVTerminator)

	rec, err := ParseTLV(stream)
	require.NoError(t, err)
	require.Len(t, chain(rec), 1)
	assert.Equal(t, RTDURI, rec.RTD())
}

func TestParseTLVLongForm(t *testing.T) {
	t.Parallel()

	// A 302-byte NDEF message forces the three-byte TLV length form
	payload := bytes.Repeat([]byte{0x41}, 295)
	built, err := BuildWellKnown(RTDUnknown, []byte("x"), payload)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(built.Raw()), 0xFF)

	stream := tlvEntry(TLVNDEFMessage, built.Raw())
	require.Equal(t, byte(0xFF), stream[1])

	rec, err := ParseTLV(stream)
	require.NoError(t, err)
	require.Len(t, chain(rec), 1)
	assert.Equal(t, payload, rec.Payload())
}

func TestParseTLVMalformedLength(t *testing.T) {
	t.Parallel()

	// Long form declaring a length that fits the short form
	stream := []byte{TLVNDEFMessage, 0xFF, 0x00, 0x10}
	stream = append(stream, bytes.Repeat([]byte{0x00}, 16)...)

	rec, err := ParseTLV(stream)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrMalformedTLV)
}

func TestParseTLVTruncated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "value shorter than declared", data: []byte{TLVNDEFMessage, 0x05, 0x01, 0x02}},
		{name: "missing length byte", data: []byte{TLVNDEFMessage}},
		{name: "missing long form length", data: []byte{TLVNDEFMessage, 0xFF, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			rec, err := ParseTLV(tt.data)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, ErrShortInput)
		})
	}
}

func TestParseTLVEmptyMessageValue(t *testing.T) {
	t.Parallel()

	// A zero-length NDEF-Message TLV carries the canonical empty message
	stream := []byte{TLVNDEFMessage, 0x00, TLVTerminator}

	rec, err := ParseTLV(stream)
	require.NoError(t, err)
	require.Len(t, chain(rec), 1)
	assert.Equal(t, TNFEmpty, rec.TNF())
}

func TestEncodeTLVRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payloadLen int
	}{
		{name: "short length form", payloadLen: 16},
		{name: "long length form", payloadLen: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			built, err := BuildWellKnown(RTDUnknown, []byte("x"),
				bytes.Repeat([]byte{0x42}, tt.payloadLen))
			require.NoError(t, err)

			stream, err := EncodeTLV(built.Raw())
			require.NoError(t, err)
			assert.Equal(t, byte(TLVTerminator), stream[len(stream)-1])

			rec, err := ParseTLV(stream)
			require.NoError(t, err)
			require.Len(t, chain(rec), 1)
			assert.Equal(t, built.Raw(), rec.Raw())
		})
	}
}

func TestEncodeTLVTooLarge(t *testing.T) {
	t.Parallel()

	_, err := EncodeTLV(make([]byte, 0x10000))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}
