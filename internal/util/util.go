package util

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// GenerateVerificationCode returns a URL-safe random token with numBytes of
// entropy (base64 raw-URL encoded, no padding). 16 bytes already gives the
// 128-bit minimum for unguessable verification codes; the default
// configuration uses 20.
func GenerateVerificationCode(numBytes int) (string, error) {
	if numBytes <= 0 {
		return "", errors.Errorf("invalid code length: %d bytes", numBytes)
	}

	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
