package fleet_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
)

/*
 * Common constants and helper functions for fleet service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "fleetcmd-test:latest"

	testJWTSecret = "e2e-jwt-secret-0123456789abcdef"

	testUserName     = "Ada Lovelace"
	testUserEmail    = "ada@example.com"
	testUserPassword = "CorrectHorse1!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Fleet Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Fleet Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/fleetcmd/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupFleetContainer starts the fleet service in a container and returns the
// base URL. Rate limits are raised so rapid test traffic does not trip the
// production defaults; rate limit behaviour gets its own setup below.
func setupFleetContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"FLEET_JWT_SECRET":    testJWTSecret,
			"FLEET_ISSUER":        "fleetcmd-e2e",
			"FLEET_DATABASE_FILE": "/tmp/fleet.db",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupFleetContainerWithDefaultRateLimits starts the fleet service with
// DEFAULT rate limits. This is specifically for testing that rate limiting
// actually works. Most tests should use setupFleetContainer().
func setupFleetContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"FLEET_JWT_SECRET":    testJWTSecret,
			"FLEET_ISSUER":        "fleetcmd-e2e",
			"FLEET_DATABASE_FILE": "/tmp/fleet.db",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			// NOTE: No rate limit overrides - using production defaults
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerTestUser registers a fresh user and returns the session plus the
// full registration response (the user secret token is only available here).
func registerTestUser(t *testing.T, client *fleetsdk.SDKClient, email string) (*fleetsdk.Session, *fleetsdk.RegisterUserResponse) {
	t.Helper()

	session, resp, err := client.Register(t.Context(), fleetsdk.RegisterUserRequest{
		Name:        testUserName,
		Email:       email,
		RawPassword: testUserPassword,
	})
	require.NoError(t, err, "Registration should succeed")
	require.NotNil(t, session)
	require.NotEmpty(t, resp.UserID, "User ID should not be empty")
	require.NotEmpty(t, resp.JWT, "Bearer token should not be empty")
	require.NotEmpty(t, resp.UserSecret, "User secret token should not be empty")

	return session, resp
}

// registerTestDevice enrols a device under the session's user and returns its ID.
func registerTestDevice(t *testing.T, session *fleetsdk.Session, userSecret, name string) string {
	t.Helper()

	deviceID, err := session.RegisterDevice(t.Context(), name, session.UserID(), userSecret)
	require.NoError(t, err, "Device registration should succeed")
	require.NotEmpty(t, deviceID, "Device ID should not be empty")

	return deviceID
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *fleetsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIStatus verifies an error is an APIError with the given status code.
func assertAPIStatus(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *fleetsdk.APIError
	require.ErrorAs(t, err, &apiErr, "%s - expected an API error, got: %v", context, err)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s - unexpected status, detail: %s", context, apiErr.Detail)
}
