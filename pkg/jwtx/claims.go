// Package jwtx is the HS256 token codec shared by the bearer-auth and
// device-registration flows. Only the payload contract is interesting here:
// a bearer token carries the caller's user ID as its subject, a
// device-secret token additionally carries the derived user secret.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for bearer tokens.
const DefaultAccessTokenTTL = 30 * time.Minute

// DefaultDeviceSecretTTL is the default lifetime for device-secret tokens.
// These are long-lived: a user holds on to one and presents it whenever
// they enrol a new device.
const DefaultDeviceSecretTTL = 30 * 24 * time.Hour

// Claims are the token claims used across the service. The user ID always
// travels in the registered Subject field.
type Claims struct {
	jwt.RegisteredClaims

	// Secret is only present in device-secret tokens; it is the derived
	// user secret proving the caller may register devices for Subject.
	Secret string `json:"secret,omitempty"`
}

// NewAccessClaims builds the claims for a bearer token.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewDeviceSecretClaims builds the claims for a device-secret token bound to
// subject.
func NewDeviceSecretClaims(subject, secret, issuer string, ttl time.Duration, now time.Time) Claims {
	c := NewAccessClaims(subject, issuer, ttl, now)
	c.Secret = secret
	return c
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer claim against the expected value. An
// empty expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token is inside its validity window.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
