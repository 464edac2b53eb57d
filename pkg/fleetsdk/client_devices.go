package fleetsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RegisterDevice registers a new device under a user. The userSecretToken is
// the device-secret token proving knowledge of the user secret issued at
// registration.
func (s *Session) RegisterDevice(ctx context.Context, deviceName, userID, userSecretToken string) (string, error) {
	body, err := encodeJSON(RegisterDeviceRequest{
		DeviceName: deviceName,
		UserID:     userID,
		IssuerID:   userID,
		UserSecret: userSecretToken,
	})
	if err != nil {
		return "", err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/devices/register", body)
	if err != nil {
		return "", err
	}

	var out RegisterDeviceResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return "", err
	}

	return out.DeviceID, nil
}

// GetDevice fetches a device by ID.
func (s *Session) GetDevice(ctx context.Context, deviceID string) (*Device, error) {
	q := url.Values{"device_id": {deviceID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/devices/get?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out GetDeviceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Device, nil
}

// GetDevicesByUser fetches all devices owned by a user. A user with no
// devices yields ErrNotFound, not an empty list.
func (s *Session) GetDevicesByUser(ctx context.Context, userID string) ([]Device, error) {
	q := url.Values{"user_id": {userID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/devices/get/all?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out GetDevicesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return out.Devices, nil
}
