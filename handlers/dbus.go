// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package handlers

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	nfcd "github.com/tehnick/go-nfcd"
)

// HandlerArgs returns the D-Bus argument tuple (s ay) a handler is
// invoked with: the record's media type and payload.
func HandlerArgs(rec *nfcd.Record) (string, []byte) {
	return RecordMediaType(rec), rec.Payload()
}

// ListenerArgs returns the D-Bus argument tuple (b s ay) a listener is
// notified with: whether a handler took the record, then the media type
// and payload.
func ListenerArgs(handled bool, rec *nfcd.Record) (bool, string, []byte) {
	return handled, RecordMediaType(rec), rec.Payload()
}

// Invoke calls the handler's configured method with the record's media
// type and payload.
func Invoke(conn *dbus.Conn, h *Handler, rec *nfcd.Record) error {
	mediatype, payload := HandlerArgs(rec)
	obj := conn.Object(h.DBus.Service, dbus.ObjectPath(h.DBus.Path))
	if call := obj.Call(h.DBus.Method, 0, mediatype, payload); call.Err != nil {
		return fmt.Errorf("handler %s failed: %w", h.DBus.Service, call.Err)
	}
	return nil
}

// Notify tells a listener about a record and whether it was handled.
func Notify(conn *dbus.Conn, h *Handler, handled bool, rec *nfcd.Record) error {
	ok, mediatype, payload := ListenerArgs(handled, rec)
	obj := conn.Object(h.DBus.Service, dbus.ObjectPath(h.DBus.Path))
	if call := obj.Call(h.DBus.Method, 0, ok, mediatype, payload); call.Err != nil {
		return fmt.Errorf("listener %s failed: %w", h.DBus.Service, call.Err)
	}
	return nil
}

// Dispatch runs a record through its matching configuration: handlers
// are tried most specific first until one succeeds, then every listener
// is notified. Returns whether some handler took the record.
func Dispatch(conn *dbus.Conn, cfg *Config, rec *nfcd.Record) bool {
	handled := false
	for _, h := range cfg.Handlers {
		if err := Invoke(conn, h, rec); err == nil {
			handled = true
			break
		}
	}
	for _, l := range cfg.Listeners {
		// Listener failures don't affect the outcome
		_ = Notify(conn, l, handled, rec)
	}
	return handled
}
