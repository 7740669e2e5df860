package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CSRFGenerator mints and validates HS256 signed CSRF tokens for the form
// entry points.
type CSRFGenerator struct {
	secret string
	expiry time.Duration
}

// NewCSRFGenerator creates a new CSRF token generator
func NewCSRFGenerator(secret string, expiry time.Duration) *CSRFGenerator {
	return &CSRFGenerator{
		secret: secret,
		expiry: expiry,
	}
}

// Generate creates a signed CSRF token
func (g *CSRFGenerator) Generate() (string, error) {
	claims := jwt.MapClaims{
		"exp":  time.Now().Add(g.expiry).Unix(),
		"iat":  time.Now().Unix(),
		"type": "csrf",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(g.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign csrf token: %w", err)
	}

	return tokenString, nil
}

// Validate checks the signature, expiry and type of a CSRF token
func (g *CSRFGenerator) Validate(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(g.secret), nil
	})

	if err != nil {
		return fmt.Errorf("failed to parse csrf token: %w", err)
	}

	if !token.Valid {
		return fmt.Errorf("csrf token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid csrf token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "csrf" {
		return fmt.Errorf("token is not a csrf token")
	}

	return nil
}
