// Package password hashes and verifies account passwords using
// PBKDF2-SHA256 in the encoding the platform's web stack expects:
// pbkdf2:sha256:<iterations>$<salt>$<hex digest>.
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	saltLength = 16
	keyLength  = 32

	// DefaultIterations is the production-strength iteration count.
	// Bulk seeding overrides this with something much smaller.
	DefaultIterations = 260000
)

// Hash derives a salted PBKDF2-SHA256 digest of plaintext.
func Hash(plaintext string, iterations int) (string, error) {
	if iterations < 1 {
		return "", fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, keyLength, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key)), nil
}

// Verify reports whether plaintext matches an encoded hash.
func Verify(plaintext, encoded string) (bool, error) {
	method, rest, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, fmt.Errorf("malformed password hash")
	}
	salt, digest, ok := strings.Cut(rest, "$")
	if !ok {
		return false, fmt.Errorf("malformed password hash")
	}

	parts := strings.Split(method, ":")
	if len(parts) != 3 || parts[0] != "pbkdf2" || parts[1] != "sha256" {
		return false, fmt.Errorf("unsupported hash method %q", method)
	}
	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations < 1 {
		return false, fmt.Errorf("invalid iteration count %q", parts[2])
	}

	want, err := hex.DecodeString(digest)
	if err != nil {
		return false, fmt.Errorf("decode digest: %w", err)
	}

	got := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, len(want), sha256.New)
	return hmac.Equal(got, want), nil
}

// randomSalt returns n alphanumeric characters from a cryptographic source.
func randomSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	salt := make([]byte, n)
	for i, b := range buf {
		salt[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(salt), nil
}
