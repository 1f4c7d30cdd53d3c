// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata_test

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded"
	x509metadata "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/metadata"
)

func TestRenderRFC2253(t *testing.T) {
	tests := []struct {
		name string
		rdns pkix.RDNSequence
		want string
	}{
		{
			name: "RDNs Reversed",
			rdns: pkix.RDNSequence{
				rdn(oidC, "US"),
				rdn(oidO, "Widget Inc."),
				rdn(oidCN, "test"),
			},
			want: "CN=test,O=Widget Inc.,C=US",
		},
		{
			name: "Multi Valued RDN Joined With Plus",
			rdns: pkix.RDNSequence{
				rdn(oidC, "US"),
				rdn(oidO, "Widget Inc."),
				pkix.RelativeDistinguishedNameSET{
					{Type: oidOU, Value: "Sales"},
					{Type: oidCN, Value: "J. Smith"},
				},
			},
			want: "OU=Sales+CN=J. Smith,O=Widget Inc.,C=US",
		},
		{
			name: "Specials Escaped",
			rdns: pkix.RDNSequence{rdn(oidCN, `a,b+c<d>e;f"g\h`)},
			want: `CN=a\,b\+c\<d\>e\;f\"g\\h`,
		},
		{
			name: "Edge Spaces Escaped",
			rdns: pkix.RDNSequence{rdn(oidCN, " leading and trailing ")},
			want: `CN=\ leading and trailing\ `,
		},
		{
			name: "Leading Hash Escaped",
			rdns: pkix.RDNSequence{rdn(oidCN, "#hash")},
			want: `CN=\#hash`,
		},
		{
			name: "Control Bytes As Hex Pairs",
			rdns: pkix.RDNSequence{rdn(oidCN, "Before\rAfter")},
			want: `CN=Before\0DAfter`,
		},
		{
			name: "Unknown Attribute Dumped As Hex",
			rdns: pkix.RDNSequence{
				rdn(asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 1466, 0},
					asn1.RawValue{Tag: 4, Bytes: []byte{0x48, 0x69}}),
			},
			want: "1.3.6.1.4.1.1466.0=#04024869",
		},
		{
			name: "Non String Value Dumped As Hex",
			rdns: pkix.RDNSequence{
				rdn(oidCN, asn1.RawValue{Tag: 2, Bytes: []byte{0x05}}),
			},
			want: "CN=#020105",
		},
		{
			name: "BMP String Decoded",
			rdns: pkix.RDNSequence{
				rdn(oidCN, asn1.RawValue{
					Tag:   30,
					Bytes: []byte{0x00, 0x48, 0x00, 0xE9, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x6F},
				}),
			},
			want: "CN=Héllo",
		},
		{
			name: "T61 String Read As Latin1",
			rdns: pkix.RDNSequence{
				rdn(oidCN, asn1.RawValue{Tag: 20, Bytes: []byte{0x63, 0x61, 0x66, 0xE9}}),
			},
			want: "CN=café",
		},
		{
			name: "Universal String Decoded",
			rdns: pkix.RDNSequence{
				rdn(oidCN, asn1.RawValue{
					Tag:   28,
					Bytes: []byte{0x00, 0x00, 0x00, 0x48, 0x00, 0x00, 0x00, 0x69},
				}),
			},
			want: "CN=Hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := mustParseName(t, tt.rdns)

			buf := bounded.New(4 * len(tt.want))
			require.Equal(t, x509metadata.Found, name.Render(x509metadata.RenderRFC2253, buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderEdgeBehavior(t *testing.T) {
	name := mustParseName(t, pkix.RDNSequence{
		rdn(oidC, "US"),
		rdn(oidO, "Widget Inc."),
		rdn(oidCN, "test"),
	})

	t.Run("Unsupported Format Is A NoOp", func(t *testing.T) {
		buf := bounded.New(64)
		assert.Equal(t, x509metadata.NotFound, name.Render("oneline", buf))
		assert.Zero(t, buf.Len())
	})

	t.Run("Truncates At Capacity", func(t *testing.T) {
		// The delegated rendering is the one operation allowed to cut
		// its output instead of reporting Overflow.
		buf := bounded.New(7)
		assert.Equal(t, x509metadata.Found, name.Render(x509metadata.RenderRFC2253, buf))
		assert.Equal(t, "CN=test", buf.String())
	})

	t.Run("Empty Name Renders Zero Bytes", func(t *testing.T) {
		empty := mustParseName(t, pkix.RDNSequence{})

		buf := bounded.New(64)
		assert.Equal(t, x509metadata.Found, empty.Render(x509metadata.RenderRFC2253, buf))
		assert.Zero(t, buf.Len())
	})
}

func TestRenderFromCertificate(t *testing.T) {
	cert := testRSACert(t)
	name, err := x509metadata.ParseName(cert.RawSubject)
	require.NoError(t, err, "ParseName(RawSubject) error")

	buf := bounded.New(256)
	require.Equal(t, x509metadata.Found, name.Render(x509metadata.RenderRFC2253, buf))
	assert.Equal(t, "CN=metadata test leaf,O=Inspector Test,C=GB", buf.String())
}
