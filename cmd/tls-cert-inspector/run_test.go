// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"testing"

	verpkg "github.com/H0llyW00dzZ/tls-cert-inspector/src/version"
	"github.com/stretchr/testify/assert"
)

// TestVersionBackfill pins the init fallback: without an ldflags stamp the
// binary reports the version package default.
func TestVersionBackfill(t *testing.T) {
	assert.NotEmpty(t, version, "version must be backfilled during init")

	if version != verpkg.Version {
		t.Logf("version overridden by ldflags: %s (package default %s)", version, verpkg.Version)
	}
}
