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
)

func TestVersionWord(t *testing.T) {
	t.Parallel()

	v := VersionWord(1, 2, 3)
	assert.Equal(t, 1, VersionWordMajor(v))
	assert.Equal(t, 2, VersionWordMinor(v))
	assert.Equal(t, 3, VersionWordNano(v))

	// Version words compare numerically in release order
	assert.Less(t, VersionWord(1, 0, 26), VersionWord(1, 1, 0))
	assert.Less(t, VersionWord(1, 1, 0), VersionWord(2, 0, 0))
}

func TestCoreVersion(t *testing.T) {
	t.Parallel()

	v := CoreVersion()
	assert.Equal(t, VersionMajor, VersionWordMajor(v))
	assert.Equal(t, VersionMinor, VersionWordMinor(v))
	assert.Equal(t, VersionNano, VersionWordNano(v))
}
