// Package crypto provides password hashing and verification helpers.
package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt work factor for stored credentials.
const hashCost = 12

// HashPassword generates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(hash), err
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// hash. A mismatch returns (false, nil); any other bcrypt failure is an
// internal error so callers can distinguish "wrong password" from a
// broken or corrupted hash.
func VerifyPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
