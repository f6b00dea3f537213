// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

// Package handlers matches parsed NDEF records against configured
// D-Bus handlers and listeners.
//
// Configuration lives in .conf files, one or more per directory. A
// media-type handler looks like:
//
//	[MediaType-Handler]
//	MediaType = text/plain
//	Path = /h1
//	Service = org.example.handler
//	Method = org.example.Handler.Handle
//
// A [MediaType-Listener] group has the same keys. MediaType accepts an
// exact type, a "type/*" pattern or "*/*". When a record matches
// several entries, handlers are ordered most specific first: exact
// match, then "type/*", then "*/*".
//
// A matched handler is invoked with (s ay): the record's media type and
// payload. Listeners are notified with (b s ay): whether some handler
// took the record, the media type and the payload.
package handlers
