// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	nfcd "github.com/tehnick/go-nfcd"
	"gopkg.in/ini.v1"
)

// Configuration group names and keys.
const (
	groupMediaTypeHandler  = "MediaType-Handler"
	groupMediaTypeListener = "MediaType-Listener"

	keyMediaType = "MediaType"
	keyPath      = "Path"
	keyService   = "Service"
	keyMethod    = "Method"

	defaultPath = "/"
)

// DBusCall names a D-Bus method: destination service, object path and
// a dot-joined interface.member string.
type DBusCall struct {
	Service string
	Path    string
	Method  string
}

// Handler is one configured handler or listener entry.
type Handler struct {
	MediaType string
	DBus      DBusCall

	pattern mediaTypePattern
}

// Config is the set of handlers and listeners matching one record,
// ordered most specific first.
type Config struct {
	Handlers  []*Handler
	Listeners []*Handler
}

func parseHandler(sec *ini.Section) (*Handler, bool) {
	mediatype := sec.Key(keyMediaType).String()
	pattern, ok := parseMediaTypePattern(mediatype)
	if !ok {
		return nil, false
	}
	service := sec.Key(keyService).String()
	method := sec.Key(keyMethod).String()
	if service == "" || !strings.Contains(method, ".") {
		return nil, false
	}
	path := sec.Key(keyPath).String()
	if path == "" {
		path = defaultPath
	}
	return &Handler{
		MediaType: mediatype,
		DBus:      DBusCall{Service: service, Path: path, Method: method},
		pattern:   pattern,
	}, true
}

// sortBySpecificity orders entries most specific first, keeping file
// order among entries of equal specificity.
func sortBySpecificity(entries []*Handler) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].pattern.specificity() > entries[j].pattern.specificity()
	})
}

// LoadConfig reads every .conf file in dir and returns the handlers and
// listeners whose MediaType pattern covers rec. It returns nil (and no
// error) when rec is not a valid media-type record or nothing matches.
func LoadConfig(dir string, rec *nfcd.Record) (*Config, error) {
	mediatype := RecordMediaType(rec)
	if mediatype == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read handlers directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".conf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	cfg := &Config{}
	for _, name := range names {
		file, err := ini.Load(filepath.Join(dir, name))
		if err != nil {
			// A broken file doesn't invalidate the rest of the directory
			continue
		}
		if sec, err := file.GetSection(groupMediaTypeHandler); err == nil {
			if h, ok := parseHandler(sec); ok && h.pattern.match(mediatype) {
				cfg.Handlers = append(cfg.Handlers, h)
			}
		}
		if sec, err := file.GetSection(groupMediaTypeListener); err == nil {
			if h, ok := parseHandler(sec); ok && h.pattern.match(mediatype) {
				cfg.Listeners = append(cfg.Listeners, h)
			}
		}
	}
	if len(cfg.Handlers) == 0 && len(cfg.Listeners) == 0 {
		return nil, nil
	}
	sortBySpecificity(cfg.Handlers)
	sortBySpecificity(cfg.Listeners)
	return cfg, nil
}
