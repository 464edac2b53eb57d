package service

import (
	"context"
	"testing"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/store"
	"github.com/fleetops/fleetcmd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	users, _, _ := newTestServices(t)

	t.Run("creates user and mints both tokens", func(t *testing.T) {
		res, err := users.Register(ctx, RegisterUserParams{
			Name:        "Alice",
			Email:       "alice@example.com",
			RawPassword: "correct horse battery staple",
		})
		require.NoError(t, err)

		// Bearer token subject is the new user ID.
		codec := users.Signer.(*jwtx.HS256)
		claims, err := codec.Verify(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, res.UserID, claims.Subject)
		require.Empty(t, claims.Secret)

		// Device-secret token carries the derived secret.
		secretClaims, err := codec.Verify(res.UserSecretToken)
		require.NoError(t, err)
		require.Equal(t, res.UserID, secretClaims.Subject)
		require.NotEmpty(t, secretClaims.Secret)

		// The stored user never exposes the raw secret or password.
		u, err := users.GetUserByID(ctx, res.UserID)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.Email)
		require.NotEqual(t, secretClaims.Secret, u.UserSecretHash)
		require.Equal(t, domain.UserTypeUser, u.UserType)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterUserParams{
			Name:        "Alice Again",
			Email:       "alice@example.com",
			RawPassword: "some other password",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("email is normalised before the uniqueness check", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterUserParams{
			Name:        "Shouty Alice",
			Email:       "ALICE@EXAMPLE.COM",
			RawPassword: "some other password",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		cases := []RegisterUserParams{
			{Name: "", Email: "b@example.com", RawPassword: "long enough pw"},
			{Name: "Bob", Email: "not-an-email", RawPassword: "long enough pw"},
			{Name: "Bob", Email: "b@example.com", RawPassword: "short"},
			{Name: "Bob", Email: "b@example.com", RawPassword: "long enough pw", UserType: "SUPERUSER"},
		}
		for _, p := range cases {
			_, err := users.Register(ctx, p)
			require.ErrorIs(t, err, ErrInvalidData)
		}
	})

	t.Run("accepts ADMIN user type", func(t *testing.T) {
		res, err := users.Register(ctx, RegisterUserParams{
			Name:        "Root",
			Email:       "root@example.com",
			RawPassword: "long enough pw",
			UserType:    "ADMIN",
		})
		require.NoError(t, err)

		u, err := users.GetUserByID(ctx, res.UserID)
		require.NoError(t, err)
		require.Equal(t, domain.UserTypeAdmin, u.UserType)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users, _, _ := newTestServices(t)

	userID, _ := registerTestUser(t, users, "carol@example.com")

	t.Run("by user id", func(t *testing.T) {
		token, err := users.Login(ctx, userID, "hunter2hunter2")
		require.NoError(t, err)

		claims, err := users.Signer.(*jwtx.HS256).Verify(token)
		require.NoError(t, err)
		require.Equal(t, userID, claims.Subject)
	})

	t.Run("by email", func(t *testing.T) {
		token, err := users.Login(ctx, "carol@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.Login(ctx, userID, "wrong password")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := users.Login(ctx, "nobody@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := users.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	users, devices, _ := newTestServices(t)

	t.Run("missing user", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, "01JXXXXXXXXXXXXXXXXXXXXXXX")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("device ids reflect registrations in order", func(t *testing.T) {
		userID, secretToken := registerTestUser(t, users, "dave@example.com")

		first, err := devices.RegisterDevice(ctx, "edge-01", userID, userID, secretToken)
		require.NoError(t, err)
		second, err := devices.RegisterDevice(ctx, "edge-02", userID, userID, secretToken)
		require.NoError(t, err)

		u, err := users.GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, []string{first, second}, u.DeviceIDs)
	})
}
