// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

/*
Package nfcd implements an NDEF (NFC Data Exchange Format) record codec.

The codec parses a byte stream - either a bare NDEF message or a
TLV-wrapped sequence of messages - into a chain of typed records, and
synthesizes Well-Known records from structured inputs.

Parsing:

	rec, err := nfcd.ParseBlock(data)
	if err != nil {
	    log.Fatal(err)
	}
	for ; rec != nil; rec = rec.Next() {
	    switch rec.RTD() {
	    case nfcd.RTDURI:
	        fmt.Println("URI:", rec.URI())
	    case nfcd.RTDText:
	        fmt.Printf("Text (%s): %s\n", rec.Language(), rec.Text())
	    default:
	        fmt.Printf("%s record, %d byte payload\n", rec.TNF(), len(rec.Payload()))
	    }
	}

Data read from a Type 2 tag memory dump is usually TLV-framed; use
nfcd.ParseTLV for those. Every NDEF-Message TLV in the stream
contributes its records to the returned chain, in on-wire order.

Building:

	rec, err := nfcd.NewURIRecord("https://nfc-forum.org")
	rec, err = nfcd.NewTextRecord("hello", "en")
	rec, err = nfcd.BuildWellKnown(nfcd.RTDSmartPoster, []byte("Sp"), payload)

A synthesized record is indistinguishable from a parsed one: its byte
image (Raw) round-trips through ParseBlock.

Records are immutable after construction. A chain may be traversed by
any number of goroutines concurrently, as long as the chain outlives the
readers; construction itself is single-threaded and synchronous.

Chunked records (CF set) are not supported and are skipped during
parsing. Smart Poster and Handover record types are recognized and
tagged but their payloads are not interpreted.

The codec is silent by default. SetDebugEnabled or SetLogger route its
skip/reject trace output through zerolog.
*/
package nfcd
