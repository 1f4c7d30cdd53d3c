// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
)

// RenderRFC2253 is the one format identifier [Name.Render] supports.
const RenderRFC2253 = "rfc2253"

const hexDigits = "0123456789ABCDEF"

// Render writes a formatted serialization of the full name into the
// sink. Only the [RenderRFC2253] identifier is supported; any other
// identifier is a no-op [NotFound].
//
// The serialization follows [RFC 2253]: RDNs in reverse order joined by
// ",", members of a multi-valued RDN joined by "+", attribute values
// decoded from their wire encoding to UTF-8 and escaped. Values the
// renderer cannot decode, and values of attribute types outside the
// short-name table, are dumped as "#" followed by the hex of the full
// DER element.
//
// The text is assembled in pooled scratch storage and copied with the
// sink's truncating append, so a sink too small receives a cut prefix
// and the status stays [Found]. An empty name renders to zero bytes,
// also [Found].
//
// [RFC 2253]: https://datatracker.ietf.org/doc/html/rfc2253
func (n *Name) Render(format string, sink Sink) Status {
	if format != RenderRFC2253 {
		return NotFound
	}
	if len(n.entries) == 0 {
		return Found
	}

	scratch := gc.Default.Get()
	defer gc.Default.Put(scratch)

	end := len(n.entries)
	for end > 0 {
		start := end - 1
		for start > 0 && n.entries[start-1].rdn == n.entries[end-1].rdn {
			start--
		}

		if end != len(n.entries) {
			scratch.WriteByte(',')
		}
		for i := start; i < end; i++ {
			if i > start {
				scratch.WriteByte('+')
			}
			renderEntry(scratch, &n.entries[i])
		}

		end = start
	}

	sink.AppendTruncated(scratch.Bytes())
	return Found
}

// renderEntry writes one "name=value" member.
func renderEntry(buf gc.Buffer, entry *Entry) {
	buf.WriteString(entry.DisplayName())
	buf.WriteByte('=')

	// Attribute types outside the short-name table dump their whole
	// value per RFC 2253 section 2.4, decodable or not.
	if entry.ShortName == "" {
		writeHexDump(buf, entry.Raw)
		return
	}

	text, ok := decodeText(entry)
	if !ok {
		writeHexDump(buf, entry.Raw)
		return
	}
	writeEscaped(buf, text)
}

// decodeText converts the entry's wire encoding to UTF-8. The legacy
// encodings follow OpenSSL's reading: TeletexString as Latin-1,
// BMPString as UTF-16BE, UniversalString as UTF-32BE.
func decodeText(entry *Entry) (string, bool) {
	switch entry.Tag {
	case tagUTF8String, tagPrintableString, tagIA5String, tagNumericString:
		return string(entry.Value), true

	case tagT61String:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(entry.Value)
		if err != nil {
			return "", false
		}
		return string(decoded), true

	case tagBMPString:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(entry.Value)
		if err != nil {
			return "", false
		}
		return string(decoded), true

	case tagUniversalString:
		decoded, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder().Bytes(entry.Value)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	}

	return "", false
}

// writeEscaped writes s with RFC 2253 escaping: specials and backslash
// anywhere, space only at the ends, "#" only at the start, control
// bytes as backslash hex pairs.
func writeEscaped(buf gc.Buffer, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ',' || c == '+' || c == '"' || c == '\\' || c == '<' || c == '>' || c == ';':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c == ' ' && (i == 0 || i == len(s)-1):
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c == '#' && i == 0:
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			buf.WriteByte('\\')
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}
}

// writeHexDump writes "#" followed by the uppercase hex of the full DER
// element.
func writeHexDump(buf gc.Buffer, der []byte) {
	buf.WriteByte('#')
	for _, b := range der {
		buf.WriteByte(hexDigits[b>>4])
		buf.WriteByte(hexDigits[b&0xf])
	}
}
