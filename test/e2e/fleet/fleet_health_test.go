package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh service.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the
// database as reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks, "Readiness should include dependency checks")
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Readyz endpoint is healthy")
}
