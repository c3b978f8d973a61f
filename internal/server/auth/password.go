package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest of plaintext. bcrypt embeds a
// fresh random salt in every digest, so hashing the same password twice
// yields different results. It fails for passwords longer than 72 bytes.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the bcrypt digest.
// The comparison is constant-time inside bcrypt. Malformed digests simply
// yield false; this function never panics.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
