// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

// shortNames maps dotted attribute-type OIDs to their OpenSSL-style
// short names, the vocabulary indexed lookups, oneline output, and the
// RFC 2253 renderer all share. OIDs outside the table keep their dotted
// form.
var shortNames = map[string]string{
	"2.5.4.3":                   "CN",
	"2.5.4.4":                   "SN",
	"2.5.4.5":                   "serialNumber",
	"2.5.4.6":                   "C",
	"2.5.4.7":                   "L",
	"2.5.4.8":                   "ST",
	"2.5.4.9":                   "street",
	"2.5.4.10":                  "O",
	"2.5.4.11":                  "OU",
	"2.5.4.12":                  "title",
	"2.5.4.13":                  "description",
	"2.5.4.15":                  "businessCategory",
	"2.5.4.17":                  "postalCode",
	"2.5.4.42":                  "GN",
	"2.5.4.43":                  "initials",
	"2.5.4.44":                  "generationQualifier",
	"2.5.4.46":                  "dnQualifier",
	"2.5.4.65":                  "pseudonym",
	"2.5.4.97":                  "organizationIdentifier",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
	"1.2.840.113549.1.9.1":       "emailAddress",
}

// ShortName resolves a dotted attribute-type OID to its short name, or
// "" when the table does not know it.
func ShortName(oid string) string { return shortNames[oid] }
