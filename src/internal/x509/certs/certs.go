// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

// Sentinel errors for the ways certificate input goes wrong. Callers match
// them with [errors.Is] after unwrapping their own context.
var (
	// ErrInvalidPEMBlock reports input that is not PEM at all.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType reports a leading PEM block of the wrong type,
	// a private key where a certificate belongs.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate reports DER bytes that do not parse as a certificate.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 reports data that parses neither as a certificate nor
	// as a PKCS7 container.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificates reports structurally valid input that carries no
	// certificate entries.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// Codec decodes certificate input handed to the inspector and encodes
// fetched certificates back out. It maintains internal configuration
// such as the certificate block type.
type Codec struct {
	blockType string
}

// New creates a Codec expecting standard CERTIFICATE blocks.
func New() *Codec {
	return &Codec{
		blockType: "CERTIFICATE",
	}
}

// IsPEM reports whether data starts with a decodable PEM block of any type.
func (c *Codec) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock takes the first PEM block and rejects foreign block types.
func (c *Codec) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.blockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes the certificate under inspection from data.
//
// PEM input must lead with a certificate block. Raw input is tried as a
// single DER certificate first, then as a [PKCS7] container, in which case
// the leaf is taken to be the container's first certificate.
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
func (c *Codec) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Not a plain certificate, fall through to cfssl's PKCS7 parser
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeBundle decodes every certificate found in data, preserving input
// order.
//
// Unlike [Codec.Decode], PEM input is walked leniently: blocks of other
// types (private keys and CSRs often travel in the same file) are skipped
// rather than rejected, since the inspector only reads certificates. Raw
// input is tried as concatenated DER certificates, then as a PKCS7
// container, returning all certificates the container carries.
func (c *Codec) DecodeBundle(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			data = rest

			if block.Type != c.blockType {
				continue
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
		}

		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil {
		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	return p.Content.SignedData.Certificates, nil
}

// EncodePEM wraps the certificate's DER bytes in a CERTIFICATE block.
func (c *Codec) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  c.blockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeDER hands back the certificate's raw DER bytes.
func (c *Codec) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// EncodeBundlePEM encodes a certificate bundle to concatenated PEM blocks,
// leaf first, the layout peers send on the wire.
func (c *Codec) EncodeBundlePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}
