// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsgrease_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded"
	tlsgrease "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tls/grease"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		input    []byte
		want     []byte
	}{
		{
			name:     "Placeholder Pairs Dropped Around Kept Pair",
			capacity: 16,
			input:    []byte{0x0a, 0x0a, 0x01, 0x02, 0x1a, 0x1a},
			want:     []byte{0x01, 0x02},
		},
		{
			name:     "Trailing Byte Kept On Odd Input",
			capacity: 16,
			input:    []byte{0x0a, 0x0a, 0x05},
			want:     []byte{0x05},
		},
		{
			name:     "Equal Pair With Other Nibble Kept",
			capacity: 16,
			input:    []byte{0x0b, 0x0b, 0xfa, 0x1a},
			want:     []byte{0x0b, 0x0b, 0xfa, 0x1a},
		},
		{
			name:     "All Sixteen Codepoints Dropped",
			capacity: 16,
			input: []byte{
				0x0a, 0x0a, 0x1a, 0x1a, 0x2a, 0x2a, 0x3a, 0x3a,
				0x4a, 0x4a, 0x5a, 0x5a, 0x6a, 0x6a, 0x7a, 0x7a,
				0x8a, 0x8a, 0x9a, 0x9a, 0xaa, 0xaa, 0xba, 0xba,
				0xca, 0xca, 0xda, 0xda, 0xea, 0xea, 0xfa, 0xfa,
			},
			want: []byte{},
		},
		{
			name:     "Empty Input",
			capacity: 16,
			input:    nil,
			want:     []byte{},
		},
		{
			name:     "Capacity Exhaustion Drops Remainder",
			capacity: 2,
			input:    []byte{0x01, 0x02, 0x03, 0x04},
			want:     []byte{0x01, 0x02},
		},
		{
			name:     "Pair Never Split At Capacity Boundary",
			capacity: 3,
			input:    []byte{0x01, 0x02, 0x03, 0x04},
			want:     []byte{0x01, 0x02},
		},
		{
			name:     "Trailing Byte Not Reached Past Failed Pair",
			capacity: 2,
			input:    []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want:     []byte{0x01, 0x02},
		},
		{
			name:     "Trailing Byte Dropped When Full",
			capacity: 2,
			input:    []byte{0x01, 0x02, 0x05},
			want:     []byte{0x01, 0x02},
		},
		{
			name:     "Dropped Pairs Consume No Capacity",
			capacity: 2,
			input:    []byte{0x0a, 0x0a, 0xfa, 0xfa, 0x01, 0x02},
			want:     []byte{0x01, 0x02},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bounded.New(tt.capacity)
			written := tlsgrease.Filter(buf, tt.input)
			assert.Equal(t, tt.want, append([]byte{}, buf.Bytes()...))
			assert.Equal(t, len(tt.want), written)
			assert.Equal(t, len(tt.want), buf.Len())
		})
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, tlsgrease.IsReserved(0x0a, 0x0a))
	assert.True(t, tlsgrease.IsReserved(0xfa, 0xfa))
	assert.False(t, tlsgrease.IsReserved(0x0a, 0x1a), "unequal bytes are not reserved")
	assert.False(t, tlsgrease.IsReserved(0x0b, 0x0b), "low nibble must be 0xA")
	assert.False(t, tlsgrease.IsReserved(0xa0, 0xa0), "high nibble alone does not qualify")
}
