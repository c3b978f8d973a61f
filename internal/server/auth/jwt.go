// Package auth implements the credential primitives of the server:
// HS256-signed access tokens and bcrypt password digests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voicelab/voicelab/internal/common"
)

// GenerateToken mints an HS256 JWT whose subject is the given user ID and
// whose expiry is now + validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns its subject.
//
// Failures are classified as common.ErrTokenExpired for tokens past their
// expiry and common.ErrInvalidToken for everything else (bad signature,
// malformed structure, missing subject). Callers must not surface the
// distinction to clients.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
