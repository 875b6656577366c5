// Package auth issues and verifies the API key used by the gateway relay
// to post invocations.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// KeyPrefix marks relay keys so they are recognisable in config files.
const KeyPrefix = "aries_"

// ErrInvalidKey is returned when a key does not match the configured hash.
var ErrInvalidKey = errors.New("invalid relay API key")

// GenerateKey creates a new relay key and its bcrypt hash. The raw key is
// 32 random bytes, base64url encoded, with KeyPrefix prepended.
func GenerateKey(cost int) (rawKey, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}

	rawKey = KeyPrefix + base64.RawURLEncoding.EncodeToString(b)

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(rawKey), cost)
	if err != nil {
		return "", "", fmt.Errorf("hashing key: %w", err)
	}

	return rawKey, string(hashBytes), nil
}

// Verify checks rawKey against hash.
func Verify(hash, rawKey string) error {
	if rawKey == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawKey)) != nil {
		return ErrInvalidKey
	}
	return nil
}
