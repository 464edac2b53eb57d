package fleetsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateCommand issues a new command against a device. The command starts in
// PENDING status.
func (s *Session) CreateCommand(ctx context.Context, req CreateCommandRequest) (string, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return "", err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/commands/create", body)
	if err != nil {
		return "", err
	}

	var out CreateCommandResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return "", err
	}

	return out.CommandID, nil
}

// CreateCommandsBatch issues one command per device, all-or-nothing. If any
// device is missing, nothing is created.
func (s *Session) CreateCommandsBatch(ctx context.Context, req BatchCreateCommandsRequest) ([]string, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/commands/batch/create", body)
	if err != nil {
		return nil, err
	}

	var out BatchCreateCommandsResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return out.CommandIDs, nil
}

// GetCommand fetches a command by ID.
func (s *Session) GetCommand(ctx context.Context, commandID string) (*Command, error) {
	q := url.Values{"command_id": {commandID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/commands/get?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out GetCommandResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Command, nil
}

// GetCommandsBatch fetches the commands matching the given IDs. An empty
// match yields ErrNotFound.
func (s *Session) GetCommandsBatch(ctx context.Context, commandIDs []string) ([]Command, error) {
	body, err := encodeJSON(BatchGetCommandsRequest{CommandIDs: commandIDs})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/commands/batch/get", body)
	if err != nil {
		return nil, err
	}

	var out BatchGetCommandsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return out.Commands, nil
}

// GetMostRecentPendingCommand returns the newest PENDING command for a
// device. This is the polling entry point devices call; it requires no
// bearer token.
func (c *SDKClient) GetMostRecentPendingCommand(ctx context.Context, deviceID string) (*Command, error) {
	q := url.Values{"device_id": {deviceID}}
	resp, err := c.doRequest(ctx, http.MethodGet, "/commands/recent?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out GetCommandResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Command, nil
}

// UpdateCommandStatus sets a command's status. Setting the status it already
// has fails with ErrNotModified.
func (s *Session) UpdateCommandStatus(ctx context.Context, commandID, status string) error {
	body, err := encodeJSON(UpdateCommandStatusRequest{
		CommandID: commandID,
		Status:    status,
	})
	if err != nil {
		return err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/commands/update/status", body)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
