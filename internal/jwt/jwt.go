// Package jwt issues and validates the HS256 access tokens of the API.
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTDuration = 24 * time.Hour
)

var ErrInvalidSubject = errors.New("invalid subject")

type JWTParams struct {
	Role   string
	UserID int64
}

// Claims are the claims carried by an access token. The subject is the user
// id in decimal.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSubject, c.Subject)
	}
	return id, nil
}

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: params.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(params.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

// ValidateJWT verifies the signature, expiry and key version of rawToken.
func ValidateJWT(rawToken, version string, secret []byte) (*Claims, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
