package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode_Length(t *testing.T) {
	tests := []struct {
		name     string
		numBytes int
		wantLen  int
	}{
		{"16 bytes", 16, 22},
		{"20 bytes", 20, 27},
		{"32 bytes", 32, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateVerificationCode(tt.numBytes)
			require.NoError(t, err)
			assert.Len(t, code, tt.wantLen)
		})
	}
}

func TestGenerateVerificationCode_IsURLSafe(t *testing.T) {
	code, err := GenerateVerificationCode(20)
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(code)
	require.NoError(t, err)
	assert.Len(t, decoded, 20)
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")
	assert.NotContains(t, code, "=")
}

func TestGenerateVerificationCode_NoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code, err := GenerateVerificationCode(20)
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "duplicate code generated: %s", code)
		seen[code] = struct{}{}
	}
}

func TestGenerateVerificationCode_RejectsInvalidLength(t *testing.T) {
	_, err := GenerateVerificationCode(0)
	assert.Error(t, err)

	_, err = GenerateVerificationCode(-1)
	assert.Error(t, err)
}
