package fleet_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
)

// TestDeviceRegistration verifies the full enrolment flow: register a user,
// then use the returned user secret token to enrol a device.
func TestDeviceRegistration(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)
	session, resp := registerTestUser(t, client, testUserEmail)

	deviceID := registerTestDevice(t, session, resp.UserSecret, "thermostat-01")

	device, err := session.GetDevice(t.Context(), deviceID)
	require.NoError(t, err)
	require.Equal(t, deviceID, device.ID)
	require.Equal(t, "thermostat-01", device.Name)
	require.Equal(t, resp.UserID, device.UserID)
	require.Empty(t, device.CommandIDs, "Fresh device should have no commands")

	// The owner's device list must reflect the new device
	user, err := session.GetUser(t.Context(), resp.UserID)
	require.NoError(t, err)
	require.Equal(t, []string{deviceID}, user.DeviceIDs)
}

// TestDeviceRegistrationRejectsWrongSecret verifies a device cannot be
// enrolled with another user's secret token.
func TestDeviceRegistrationRejectsWrongSecret(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)
	session, _ := registerTestUser(t, client, testUserEmail)
	_, other := registerTestUser(t, client, "mallory@example.com")

	_, err := session.RegisterDevice(t.Context(), "rogue", session.UserID(), other.UserSecret)
	assertAPIStatus(t, err, http.StatusUnauthorized, "Enrolment with another user's secret")
}

// TestDeviceRegistrationRejectsGarbageSecret verifies an unparseable secret
// token is rejected outright.
func TestDeviceRegistrationRejectsGarbageSecret(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)
	session, _ := registerTestUser(t, client, testUserEmail)

	_, err := session.RegisterDevice(t.Context(), "rogue", session.UserID(), "garbage")
	assertAPIStatus(t, err, http.StatusUnauthorized, "Enrolment with garbage secret")
}

// TestListDevices verifies the list endpoint returns devices in enrolment
// order and 404s for a user with no devices.
func TestListDevices(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)
	session, resp := registerTestUser(t, client, testUserEmail)

	// No devices yet: the contract is 404, not an empty list
	_, err := session.GetDevicesByUser(t.Context(), resp.UserID)
	assertAPIStatus(t, err, http.StatusNotFound, "Listing devices on a fresh account")

	first := registerTestDevice(t, session, resp.UserSecret, "sensor-01")
	second := registerTestDevice(t, session, resp.UserSecret, "sensor-02")

	devices, err := session.GetDevicesByUser(t.Context(), resp.UserID)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	require.Equal(t, first, devices[0].ID)
	require.Equal(t, second, devices[1].ID)
}

// TestGetUnknownDevice verifies lookup of a device that does not exist.
func TestGetUnknownDevice(t *testing.T) {
	baseURL, cleanup := setupFleetContainer(t)
	defer cleanup()

	client := fleetsdk.NewSDKClient(baseURL)
	session, _ := registerTestUser(t, client, testUserEmail)

	_, err := session.GetDevice(t.Context(), "01K0000000000000000000DEAD")
	assertAPIStatus(t, err, http.StatusNotFound, "Unknown device lookup")
}
