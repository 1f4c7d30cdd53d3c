// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslversion

import (
	"fmt"
	"strings"
)

// Status nibble values. Statuses between [StatusDev] and [StatusRelease]
// are beta numbers (beta 1 through beta 14).
const (
	// StatusDev marks a development build (any "-" suffix other than "-beta<n>").
	StatusDev uint32 = 0x0
	// StatusRelease marks a final release (no suffix, or a letter patch suffix).
	StatusRelease uint32 = 0xf
)

// Version holds the unpacked fields of a dotted library version string
// such as "1.0.2u" or "3.0.0-beta2".
//
// Field ranges enforced by [Parse]: Major 0-15, Minor 0-255, Fix 0-255.
// Patch and Status are computed from the suffix; Patch may exceed 8 bits
// in memory and is truncated at pack time, mirroring the packed layout.
type Version struct {
	Major  uint32
	Minor  uint32
	Fix    uint32
	Patch  uint32
	Status uint32
}

// Parse converts a dotted version string into its fields.
//
// Grammar: `major "." minor "." fix [suffix]` where the three numbers are
// decimal digit runs read greedily. An empty digit run parses as zero, so
// "1.2." is release 1.2.0. Suffix handling:
//
//   - no suffix: a release (Status = [StatusRelease]).
//   - "-beta<n>": beta build, Status = n (0-14, greedily parsed, text after
//     the digits is ignored; a missing digit run gives beta 0, which packs
//     identically to a dev build).
//   - "-" followed by anything else: a dev build (Status = [StatusDev]).
//   - letters directly after fix ("0.9.8zh"): a letter patch release,
//     Patch = 1 plus the sum of (uppercased byte - 'A') over the suffix,
//     Status = [StatusRelease]. The sum is not range-checked; it wraps as
//     unsigned arithmetic and is truncated to 8 bits when packed.
//
// Returns:
//   - Version: The parsed fields
//   - bool: false when the string is empty, a separator is missing,
//     a number is out of range, or a beta number exceeds 14
func Parse(s string) (Version, bool) {
	if s == "" {
		return Version{}, false
	}

	var v Version

	major, rest := scanNumber(s)
	if !strings.HasPrefix(rest, ".") || major > 0xf {
		return Version{}, false
	}
	minor, rest := scanNumber(rest[1:])
	if !strings.HasPrefix(rest, ".") || minor > 0xff {
		return Version{}, false
	}
	fix, rest := scanNumber(rest[1:])
	if fix > 0xff {
		return Version{}, false
	}
	v.Major, v.Minor, v.Fix = uint32(major), uint32(minor), uint32(fix)

	switch {
	case rest == "":
		v.Status = StatusRelease
	case rest[0] == '-':
		// Only "-beta<n>" raises the status; every other pre-release
		// marker stays a dev build with status and patch at zero.
		rest = rest[1:]
		if strings.HasPrefix(rest, "beta") {
			beta, _ := scanNumber(rest[len("beta"):])
			if beta > 14 {
				return Version{}, false
			}
			v.Status = uint32(beta)
		}
	default:
		v.Patch = 1
		for i := 0; i < len(rest); i++ {
			v.Patch += uint32(rest[i]&^0x20) - 'A'
		}
		v.Status = StatusRelease
	}

	return v, true
}

// scanNumber reads a greedy run of decimal digits from the front of s and
// returns the value and the unconsumed remainder. An empty run yields zero.
// Values are clamped far above the field ranges so that absurdly long runs
// still fail the caller's range checks instead of wrapping.
func scanNumber(s string) (uint64, string) {
	var n uint64
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < 1<<32 {
			n = n*10 + uint64(s[i]-'0')
		}
	}
	return n, s[i:]
}

// Pack encodes the fields into the packed 32-bit layout
// (major<<28 | minor<<20 | fix<<12 | patch<<4 | status).
// Pack is total: out-of-range fields are masked, never rejected.
func (v Version) Pack() uint32 {
	return (v.Major&0xf)<<28 |
		(v.Minor&0xff)<<20 |
		(v.Fix&0xff)<<12 |
		(v.Patch&0xff)<<4 |
		v.Status&0xf
}

// Unpack decodes a packed 32-bit version into its fields.
func Unpack(n uint32) Version {
	return Version{
		Major:  n >> 28 & 0xf,
		Minor:  n >> 20 & 0xff,
		Fix:    n >> 12 & 0xff,
		Patch:  n >> 4 & 0xff,
		Status: n & 0xf,
	}
}

// Number parses s and returns the packed form, or 0 when parsing fails.
//
// The zero sentinel is ambiguous: a legitimate "0.0.0" dev build also
// packs to 0. Callers that need to tell the two apart should use [Parse],
// which reports failure explicitly.
func Number(s string) uint32 {
	v, ok := Parse(s)
	if !ok {
		return 0
	}
	return v.Pack()
}

// IsRelease reports whether the version is a final release.
func (v Version) IsRelease() bool { return v.Status == StatusRelease }

// IsDev reports whether the version is a development build.
func (v Version) IsDev() bool { return v.Status == StatusDev }

// IsBeta reports whether the version is a numbered beta build.
func (v Version) IsBeta() bool { return v.Status > StatusDev && v.Status < StatusRelease }

// String renders a human-readable form. The letter suffix of a patch
// release cannot be reconstructed from its sum, so patched releases are
// shown with the numeric patch value.
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Fix)
	switch {
	case v.IsDev():
		return base + "-dev"
	case v.IsBeta():
		return fmt.Sprintf("%s-beta%d", base, v.Status)
	case v.Patch > 0:
		return fmt.Sprintf("%s (patch %d)", base, v.Patch&0xff)
	default:
		return base
	}
}
