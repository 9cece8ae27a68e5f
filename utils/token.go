package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

// apiTokenBytes is the entropy of a project API token. 32 random bytes
// encode to a 64-character hex string.
const apiTokenBytes = 32

// GenerateAPIToken returns a new opaque project credential.
func GenerateAPIToken() (string, error) {
	b := make([]byte, apiTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate API token")
	}
	return hex.EncodeToString(b), nil
}
