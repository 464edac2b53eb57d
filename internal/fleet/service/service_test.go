package service

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/fleetcmd/internal/fleet/store"
	"github.com/fleetops/fleetcmd/internal/fleet/store/drivers/sqlite"
	"github.com/fleetops/fleetcmd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "fleetcmd-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestServices(t *testing.T) (*UserService, *DeviceService, *CommandService) {
	t.Helper()

	st := newTestStore(t)
	codec := jwtx.NewHS256([]byte("test-secret-key-0123456789abcdef"), testIssuer)

	users := &UserService{
		Store:           st,
		Signer:          codec,
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		DeviceSecretTTL: 24 * time.Hour,
	}
	devices := &DeviceService{Store: st, Verifier: codec}
	commands := &CommandService{Store: st}

	return users, devices, commands
}

// registerTestUser registers a user and returns its ID plus the device-secret
// token needed for device registration.
func registerTestUser(t *testing.T, users *UserService, email string) (string, string) {
	t.Helper()

	res, err := users.Register(context.Background(), RegisterUserParams{
		Name:        "Test User",
		Email:       email,
		RawPassword: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.UserID)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.UserSecretToken)

	return res.UserID, res.UserSecretToken
}

func registerTestDevice(t *testing.T, users *UserService, devices *DeviceService, email string) (userID, secretToken, deviceID string) {
	t.Helper()

	userID, secretToken = registerTestUser(t, users, email)

	deviceID, err := devices.RegisterDevice(context.Background(), "edge-01", userID, userID, secretToken)
	require.NoError(t, err)
	require.NotEmpty(t, deviceID)

	return userID, secretToken, deviceID
}
