package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Contains(t, parts[3], "m=")
	require.Contains(t, parts[3], "t=")
	require.Contains(t, parts[3], "p=")
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("hunter2hunter2", hash))
	require.ErrorIs(t, VerifyPassword("hunter3hunter3", hash), ErrPasswordMismatch)
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("whatever", "not-a-phc-string")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestDeriveUserSecretIsDeterministicPerUser(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("a long password")
	require.NoError(t, err)

	s1 := DeriveUserSecret(hash, "a@x.com")
	s2 := DeriveUserSecret(hash, "a@x.com")
	s3 := DeriveUserSecret(hash, "b@x.com")

	require.Equal(t, s1, s2)
	require.NotEqual(t, s1, s3)
	require.NotEmpty(t, s1)
}

func TestFingerprintSecretMatchesOnlySameSecret(t *testing.T) {
	t.Parallel()

	fp := FingerprintSecret("secret-value")
	require.Equal(t, fp, FingerprintSecret("secret-value"))
	require.NotEqual(t, fp, FingerprintSecret("other-value"))
}
