// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrMalformedName indicates that the provided bytes are not a DER
// RDNSequence.
var ErrMalformedName = errors.New("x509metadata: malformed distinguished name")

// ASN.1 string tags the distinguished-name machinery understands.
// cryptobyte/asn1 exports constants for some of these; numeric,
// universal, and BMP strings need their literal tag numbers.
const (
	tagUTF8String      = 12
	tagNumericString   = 18
	tagPrintableString = 19
	tagT61String       = 20
	tagIA5String       = 22
	tagUniversalString = 28
	tagBMPString       = 30
)

// Entry is one attribute of a distinguished name, kept in wire order and
// wire encoding.
type Entry struct {
	// OID is the attribute type in dotted-decimal form.
	OID string
	// ShortName is the OpenSSL-style abbreviation, or "" when the type
	// is not in the table.
	ShortName string
	// Tag is the ASN.1 tag of the attribute value.
	Tag uint8
	// Value holds the value's raw contents octets, undecoded.
	Value []byte
	// Raw is the value's full DER element, header included, kept for
	// hex dumps of values the renderer cannot decode.
	Raw []byte

	// rdn groups members of a multi-valued RDN for RFC 2253 rendering.
	rdn int
}

// DisplayName is the key lookups and oneline output print for the
// entry: the short name when known, the dotted OID otherwise.
func (e *Entry) DisplayName() string {
	if e.ShortName != "" {
		return e.ShortName
	}
	return e.OID
}

// Name is a distinguished name flattened to its attribute entries in
// stored (wire) order. The zero value is an empty name.
type Name struct {
	entries []Entry
}

// ParseName parses the DER encoding of a distinguished name (an X.501
// RDNSequence, the shape of a certificate's RawSubject and RawIssuer)
// and flattens it into ordered entries.
func ParseName(raw []byte) (*Name, error) {
	input := cryptobyte.String(raw)
	var rdnSeq cryptobyte.String
	if !input.ReadASN1(&rdnSeq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, ErrMalformedName
	}

	name := &Name{}
	for rdn := 0; !rdnSeq.Empty(); rdn++ {
		var set cryptobyte.String
		if !rdnSeq.ReadASN1(&set, cryptobyte_asn1.SET) {
			return nil, ErrMalformedName
		}
		if set.Empty() {
			return nil, ErrMalformedName
		}

		for !set.Empty() {
			var atav cryptobyte.String
			if !set.ReadASN1(&atav, cryptobyte_asn1.SEQUENCE) {
				return nil, ErrMalformedName
			}

			var oid encoding_asn1.ObjectIdentifier
			if !atav.ReadASN1ObjectIdentifier(&oid) {
				return nil, ErrMalformedName
			}

			var element cryptobyte.String
			var tag cryptobyte_asn1.Tag
			if !atav.ReadAnyASN1Element(&element, &tag) || !atav.Empty() {
				return nil, ErrMalformedName
			}

			inner := cryptobyte.String(element)
			var value cryptobyte.String
			if !inner.ReadAnyASN1(&value, &tag) {
				return nil, ErrMalformedName
			}

			dotted := oid.String()
			name.entries = append(name.entries, Entry{
				OID:       dotted,
				ShortName: ShortName(dotted),
				Tag:       uint8(tag),
				Value:     value,
				Raw:       element,
				rdn:       rdn,
			})
		}
	}

	return name, nil
}

// Entries returns the attribute entries in stored order. The slice is
// shared with the Name; callers must treat it as read-only.
func (n *Name) Entries() []Entry { return n.entries }

// Len reports the number of attribute entries.
func (n *Name) Len() int { return len(n.entries) }

// EntryValue finds the pos-th entry whose display name matches name
// (ASCII case-insensitive) and copies its raw value bytes into the sink.
//
// pos counts matching entries only: 0 is the first match in stored
// order, 1 the second. Negative positions count from the end, -1 being
// the last match. Unknown attribute types match by their dotted OID.
//
// Returns:
//   - Status: [NotFound] when no entry holds that occurrence;
//     [Overflow] when the value does not fit, with nothing written;
//     [Found] otherwise
func (n *Name) EntryValue(name string, pos int, sink Sink) Status {
	count := 0
	for i := range n.entries {
		idx := i
		if pos < 0 {
			idx = len(n.entries) - 1 - i
		}
		entry := &n.entries[idx]

		if !strings.EqualFold(name, entry.DisplayName()) {
			continue
		}

		occurrence := count
		if pos < 0 {
			count--
			occurrence = count
		} else {
			count++
		}
		if occurrence != pos {
			continue
		}

		if !sink.TryAppend(entry.Value) {
			return Overflow
		}
		return Found
	}

	return NotFound
}

// Oneline serializes every entry in stored order as
// "/<name>=<raw value bytes>" with no escaping, the compact legacy
// form. The cumulative length is checked before each entry: the first
// entry that would not fit stops the operation with [Overflow], leaving
// the prior complete entries in the sink.
//
// Returns:
//   - Status: [NotFound] when the name has no entries; [Overflow] as
//     above; [Found] otherwise
func (n *Name) Oneline(sink Sink) Status {
	if len(n.entries) == 0 {
		return NotFound
	}

	for i := range n.entries {
		entry := &n.entries[i]
		name := entry.DisplayName()

		if sink.Free() < 1+len(name)+1+len(entry.Value) {
			return Overflow
		}
		sink.TryAppendByte('/')
		sink.TryAppendString(name)
		sink.TryAppendByte('=')
		sink.TryAppend(entry.Value)
	}

	return Found
}
