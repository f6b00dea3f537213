// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import "bytes"

// TNF is the 3-bit Type Name Format of an NDEF record.
type TNF uint8

const (
	// TNFEmpty marks a record with no type, id or payload.
	TNFEmpty TNF = iota
	// TNFWellKnown marks an NFC Forum Well-Known type record.
	TNFWellKnown
	// TNFMediaType marks a record whose type is a media type.
	TNFMediaType
	// TNFAbsoluteURI marks a record whose type is an absolute URI.
	TNFAbsoluteURI
	// TNFExternal marks an NFC Forum external type record.
	TNFExternal
	// TNFUnknown marks a record with an unknown payload type.
	TNFUnknown
	// TNFUnchanged is used by middle and terminating chunk records.
	TNFUnchanged
	// tnfMax is the first out-of-range value; header TNF values at or
	// above it are normalized to TNFUnknown.
	tnfMax
)

// String returns the conventional name of the TNF value.
func (t TNF) String() string {
	switch t {
	case TNFEmpty:
		return "empty"
	case TNFWellKnown:
		return "well-known"
	case TNFMediaType:
		return "media-type"
	case TNFAbsoluteURI:
		return "absolute-uri"
	case TNFExternal:
		return "external"
	case TNFUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// RTD identifies the Well-Known record semantics derived from the TNF
// and the type bytes.
type RTD uint8

const (
	// RTDUnknown is used for records with no recognized type.
	RTDUnknown RTD = iota
	// RTDURI marks a URI record (type "U").
	RTDURI
	// RTDText marks a Text record (type "T").
	RTDText
	// RTDSmartPoster marks a Smart Poster record (type "Sp").
	RTDSmartPoster
	// RTDHandoverSelect marks a Handover Select record (type "Hs").
	RTDHandoverSelect
	// RTDHandoverRequest marks a Handover Request record (type "Hr").
	RTDHandoverRequest
	// RTDHandoverCarrier marks a Handover Carrier record (type "Hc").
	RTDHandoverCarrier
	// RTDAltCarrier marks an Alternative Carrier record (type "ac").
	RTDAltCarrier
	// RTDCarrierRef marks a Collision Resolution record (type "cr").
	RTDCarrierRef
	// RTDError marks a Handover Error record (type "err").
	RTDError
)

// Flags carries the message-boundary bits of a record header.
type Flags uint8

const (
	// FlagFirst is set when the record had MB set in its header.
	FlagFirst Flags = 1 << iota
	// FlagLast is set when the record had ME set in its header.
	FlagLast
)

// NDEF record header bits, MSB first.
const (
	hdrMB      = 0x80
	hdrME      = 0x40
	hdrCF      = 0x20
	hdrSR      = 0x10
	hdrIL      = 0x08
	hdrTNFMask = 0x07
)

// Well-Known type tags recognized by the record factory.
var (
	rtdTypeURI         = []byte("U")
	rtdTypeText        = []byte("T")
	rtdTypeSmartPoster = []byte("Sp")
	rtdTypeHandoverSel = []byte("Hs")
	rtdTypeHandoverReq = []byte("Hr")
	rtdTypeHandoverCar = []byte("Hc")
	rtdTypeAltCarrier  = []byte("ac")
	rtdTypeCarrierRef  = []byte("cr")
	rtdTypeError       = []byte("err")
)

// Record is one NDEF record. Records are immutable after construction
// and link to the next record of the same message through Next.
type Record struct {
	next *Record

	// raw is an exclusively owned copy of the on-wire record image.
	// type, id and payload are (offset, length) views into it.
	raw           []byte
	typeOffset    int
	typeLength    int
	idLength      int
	payloadLength int

	// Decoded fields, populated by the specialized decoders.
	uri  string
	text string
	lang string
	enc  TextEncoding

	tnf   TNF
	rtd   RTD
	flags Flags
}

// ndefData is the parser's scratch descriptor for a single framed
// record: the record byte slice plus the offsets the factory needs.
// It indexes the caller's input and is never retained.
type ndefData struct {
	rec           []byte
	typeOffset    int
	typeLength    int
	idLength      int
	payloadLength int
}

func (d *ndefData) typeBytes() []byte {
	if d.typeLength == 0 {
		return nil
	}
	return d.rec[d.typeOffset : d.typeOffset+d.typeLength]
}

func (d *ndefData) payloadBytes() []byte {
	if d.payloadLength == 0 {
		return nil
	}
	off := d.typeOffset + d.typeLength + d.idLength
	return d.rec[off : off+d.payloadLength]
}

// initRecord builds a Record from a framed descriptor. The record gets
// its own deep copy of the on-wire bytes; the view offsets are carried
// over unchanged so parsed and synthesized records share invariants.
func initRecord(rtd RTD, d *ndefData) *Record {
	hdr := d.rec[0]
	r := &Record{
		raw:           bytes.Clone(d.rec),
		typeOffset:    d.typeOffset,
		typeLength:    d.typeLength,
		idLength:      d.idLength,
		payloadLength: d.payloadLength,
		rtd:           rtd,
		tnf:           TNFUnknown,
	}
	if tnf := TNF(hdr & hdrTNFMask); tnf < tnfMax {
		r.tnf = tnf
	}
	if hdr&hdrMB != 0 {
		r.flags |= FlagFirst
	}
	if hdr&hdrME != 0 {
		r.flags |= FlagLast
	}
	return r
}

// Canonical byte image of an empty NDEF message: a single short record
// with MB and ME set, TNF empty, and no type, id or payload.
var emptyNDEF = []byte{hdrMB | hdrME | hdrSR, 0x00, 0x00}

func newEmptyRecord() *Record {
	return initRecord(RTDUnknown, &ndefData{rec: emptyNDEF, typeOffset: 3})
}

// newRecord dispatches a framed descriptor to a specialized decoder
// when the TNF and type bytes identify one. It never fails: a decoder
// that rejects its payload falls back to the generic representation,
// preserving the raw bytes for the caller to inspect.
func newRecord(d *ndefData) *Record {
	if len(d.rec) == 0 {
		// Special case - empty NDEF
		return newEmptyRecord()
	}
	if TNF(d.rec[0]&hdrTNFMask) == TNFWellKnown {
		typ := d.typeBytes()
		switch {
		case bytes.Equal(typ, rtdTypeURI):
			if rec, ok := decodeURIRecord(d); ok {
				debugf("URI record: %s", rec.uri)
				return rec
			}
			debugf("broken URI record payload, keeping it generic")
		case bytes.Equal(typ, rtdTypeText):
			if rec, ok := decodeTextRecord(d); ok {
				debugf("text record (%s): %s", rec.lang, rec.text)
				return rec
			}
			debugf("broken text record payload, keeping it generic")
		case bytes.Equal(typ, rtdTypeSmartPoster):
			return initRecord(RTDSmartPoster, d)
		case bytes.Equal(typ, rtdTypeHandoverSel):
			return initRecord(RTDHandoverSelect, d)
		case bytes.Equal(typ, rtdTypeHandoverReq):
			return initRecord(RTDHandoverRequest, d)
		case bytes.Equal(typ, rtdTypeHandoverCar):
			return initRecord(RTDHandoverCarrier, d)
		case bytes.Equal(typ, rtdTypeAltCarrier):
			return initRecord(RTDAltCarrier, d)
		case bytes.Equal(typ, rtdTypeCarrierRef):
			return initRecord(RTDCarrierRef, d)
		case bytes.Equal(typ, rtdTypeError):
			return initRecord(RTDError, d)
		}
	}
	return initRecord(RTDUnknown, d)
}

// TNF returns the record's Type Name Format.
func (r *Record) TNF() TNF { return r.tnf }

// RTD returns the Well-Known record semantics recognized by the
// factory, or RTDUnknown.
func (r *Record) RTD() RTD { return r.rtd }

// Flags returns the record's message-boundary flags.
func (r *Record) Flags() Flags { return r.flags }

// Next returns the subsequent record of the same message, or nil.
func (r *Record) Next() *Record { return r.next }

// Raw returns the record's on-wire byte image. The returned slice is
// owned by the record and must not be modified.
func (r *Record) Raw() []byte { return r.raw }

// Type returns the record's type bytes, or nil when absent. The
// returned slice is a view into Raw and must not be modified.
func (r *Record) Type() []byte {
	if r.typeLength == 0 {
		return nil
	}
	return r.raw[r.typeOffset : r.typeOffset+r.typeLength]
}

// ID returns the record's id bytes, or nil when absent. The returned
// slice is a view into Raw and must not be modified.
func (r *Record) ID() []byte {
	if r.idLength == 0 {
		return nil
	}
	off := r.typeOffset + r.typeLength
	return r.raw[off : off+r.idLength]
}

// Payload returns the record's payload bytes, or nil when absent. The
// returned slice is a view into Raw and must not be modified.
func (r *Record) Payload() []byte {
	if r.payloadLength == 0 {
		return nil
	}
	off := r.typeOffset + r.typeLength + r.idLength
	return r.raw[off : off+r.payloadLength]
}

// URI returns the decoded URI of a URI record (RTD "U"), with its
// prefix expanded. Empty for other record types.
func (r *Record) URI() string { return r.uri }

// Text returns the decoded text of a Text record (RTD "T") as UTF-8.
// Empty for other record types.
func (r *Record) Text() string { return r.text }

// Language returns the IANA language tag of a Text record. Empty for
// other record types.
func (r *Record) Language() string { return r.lang }

// Encoding returns the on-wire text encoding of a Text record.
func (r *Record) Encoding() TextEncoding { return r.enc }
