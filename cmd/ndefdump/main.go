// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

// ndefdump decodes NDEF data and prints the record chain.
//
// Input comes from a file, an inline hex string, or stdin:
//
//	ndefdump -file tag.bin
//	ndefdump -hex "D1 01 08 55 01 6E 66 63 2E 6F 72 67"
//	cat tag.bin | ndefdump -tlv
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	nfcd "github.com/tehnick/go-nfcd"
)

type config struct {
	file  *string
	hexIn *string
	tlv   *bool
	debug *bool
}

func parseFlags() *config {
	cfg := &config{
		file:  flag.String("file", "", "Read NDEF data from a file (default: stdin)"),
		hexIn: flag.String("hex", "", "Read NDEF data from an inline hex string"),
		tlv:   flag.Bool("tlv", false, "Treat the input as a TLV stream instead of a bare NDEF message"),
		debug: flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()

	if *cfg.debug {
		nfcd.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger())
	}
	return cfg
}

func readInput(cfg *config) ([]byte, error) {
	switch {
	case *cfg.hexIn != "":
		clean := strings.NewReplacer(" ", "", "\n", "", "\t", "", ":", "").
			Replace(*cfg.hexIn)
		data, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	case *cfg.file != "":
		data, err := os.ReadFile(*cfg.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", *cfg.file, err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
}

func printRecord(i int, rec *nfcd.Record) {
	fmt.Printf("Record %d:\n", i)
	fmt.Printf("  TNF:     %s\n", rec.TNF())
	if typ := rec.Type(); len(typ) > 0 {
		fmt.Printf("  Type:    %q\n", typ)
	}
	if id := rec.ID(); len(id) > 0 {
		fmt.Printf("  ID:      %q\n", id)
	}
	flags := rec.Flags()
	fmt.Printf("  MB/ME:   %v/%v\n", flags&nfcd.FlagFirst != 0, flags&nfcd.FlagLast != 0)
	switch rec.RTD() {
	case nfcd.RTDURI:
		fmt.Printf("  URI:     %s\n", rec.URI())
	case nfcd.RTDText:
		fmt.Printf("  Text:    %s (%s, %s)\n", rec.Text(), rec.Language(), rec.Encoding())
	default:
		if payload := rec.Payload(); len(payload) > 0 {
			fmt.Printf("  Payload: % X\n", payload)
		}
	}
}

func run() error {
	cfg := parseFlags()
	data, err := readInput(cfg)
	if err != nil {
		return err
	}

	var rec *nfcd.Record
	if *cfg.tlv {
		rec, err = nfcd.ParseTLV(data)
	} else {
		rec, err = nfcd.ParseBlock(data)
	}
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("no NDEF records found")
	}

	for i := 0; rec != nil; rec = rec.Next() {
		printRecord(i, rec)
		i++
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
