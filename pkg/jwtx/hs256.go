package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer signs Claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier checks a compact JWT and returns its Claims. Expiry is NOT
// enforced here; callers decide via Claims.ValidateExpiry, so that expired
// tokens can still be distinguished from garbage ones.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 is a symmetric signer/verifier. The same shared key signs bearer
// tokens and device-secret tokens.
type HS256 struct {
	key    []byte
	issuer string
}

// NewHS256 returns an HS256 codec for the given shared key. A non-empty
// issuer is enforced on every verified token.
func NewHS256(key []byte, issuer string) *HS256 {
	return &HS256{key: key, issuer: issuer}
}

func (h *HS256) Sign(c Claims) (string, error) {
	if c.Issuer == "" {
		c.Issuer = h.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(h.key)
}

func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	_, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
