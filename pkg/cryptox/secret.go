package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// DeriveUserSecret computes the per-user device-registration secret from the
// stored password hash and the user's email. The password hash is salted, so
// the secret cannot be recomputed from the raw password alone; it is handed
// to the user exactly once, at registration.
func DeriveUserSecret(passwordHash, email string) string {
	sum := sha256.Sum256([]byte(passwordHash + ":" + email))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// FingerprintSecret returns the deterministic SHA-256 fingerprint of a
// secret. Only the fingerprint is persisted; device registration proves
// possession by presenting a secret whose fingerprint matches.
func FingerprintSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
