package fleetsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RegisterUser creates a new user account. Most callers should use Register,
// which also establishes a Session.
func (c *SDKClient) RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterUserResponse, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/register", body)
	if err != nil {
		return nil, err
	}

	var out RegisterUserResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoginUser exchanges credentials for a bearer token. Most callers should use
// Login, which also establishes a Session.
func (c *SDKClient) LoginUser(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/login", body)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetUser fetches a user by ID. Password and secret hashes are never
// included in the response.
func (s *Session) GetUser(ctx context.Context, userID string) (*User, error) {
	q := url.Values{"user_id": {userID}}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/users/get?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out GetUserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.User, nil
}
