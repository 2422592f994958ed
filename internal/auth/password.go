package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Two stored-password formats coexist: legacy rows carry an unsalted
// SHA-256 hex digest and no salt; current rows carry a PBKDF2-HMAC-SHA256
// derived key plus its salt, both base64. The presence of a stored salt
// selects the scheme. New writes always produce the PBKDF2 form, so legacy
// rows migrate lazily as passwords change.

const (
	pbkdf2Iterations = 10_000
	saltLen          = 16 // 128-bit salt per password
	keyLen           = 32 // 256-bit derived key
)

// HashPassword derives a fresh salted PBKDF2 hash. Returns base64-encoded
// hash and salt for storage.
func HashPassword(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, saltLen)
	if _, err = rand.Read(saltBytes); err != nil {
		return "", "", err
	}
	key := pbkdf2.Key([]byte(password), saltBytes, pbkdf2Iterations, keyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(saltBytes), nil
}

// VerifyPassword checks a submitted password against the stored credential,
// dispatching on the hash scheme the row was written with.
func VerifyPassword(password, storedHash string, storedSalt *string) bool {
	return schemeFor(storedHash, storedSalt).verify(password)
}

type hashScheme interface {
	verify(password string) bool
}

func schemeFor(storedHash string, storedSalt *string) hashScheme {
	if storedSalt == nil || *storedSalt == "" {
		return sha256Scheme{hash: storedHash}
	}
	return pbkdf2Scheme{hash: storedHash, salt: *storedSalt}
}

// sha256Scheme verifies legacy single-round unsalted digests.
type sha256Scheme struct {
	hash string
}

func (s sha256Scheme) verify(password string) bool {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToLower(s.hash))) == 1
}

// pbkdf2Scheme verifies salted derived keys.
type pbkdf2Scheme struct {
	hash string
	salt string
}

func (s pbkdf2Scheme) verify(password string) bool {
	saltBytes, err := base64.StdEncoding.DecodeString(s.salt)
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(s.hash)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), saltBytes, pbkdf2Iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(key, stored) == 1
}
