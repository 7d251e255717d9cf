package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes yields 40 hex characters per key
const tokenBytes = 20

// GenerateTokenKey produces a random opaque bearer token key
func GenerateTokenKey() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
