// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package nfcd

import (
	"os"

	"github.com/rs/zerolog"
)

// The codec warns on skipped chunked records and logs at debug level on
// framing errors, skipped or truncated TLV messages, decoder fallbacks,
// empty input and decoded URI/Text records. Logging defaults to a no-op
// logger so production callers pay nothing unless they opt in.
var logger = zerolog.Nop()

// SetLogger routes the codec's trace output through the given logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetDebugEnabled toggles trace output to stderr. Equivalent to calling
// SetLogger with a console logger at debug level (or a no-op logger).
func SetDebugEnabled(enabled bool) {
	if enabled {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		logger = zerolog.Nop()
	}
}

func debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

func warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}
