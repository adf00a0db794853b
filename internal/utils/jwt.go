package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [ParseTokenInfo] when the token has no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenInfo is what the client can learn from an access token without the
// server's key.
type TokenInfo struct {
	Subject   string
	Scope     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// ParseTokenInfo decodes the claims of an access token WITHOUT verifying its
// signature. The result is informational only and must never be used to make
// an authorization decision; the server remains the authority.
//
// Returns [ErrNoExpiry] (wrapped) together with the other claims when exp is
// missing.
func ParseTokenInfo(tokenString string) (TokenInfo, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenInfo{}, errors.New("invalid token claims")
	}

	var info TokenInfo
	info.Subject, _ = claims.GetSubject()
	if scope, ok := claims["scope"].(string); ok {
		info.Scope = scope
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return info, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return info, ErrNoExpiry
	}
	info.ExpiresAt = exp.Time

	return info, nil
}
