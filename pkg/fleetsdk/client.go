package fleetsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the fleet command service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new fleet service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new user account and returns an authenticated session
// along with the one-time user secret needed for device registration.
func (c *SDKClient) Register(ctx context.Context, req RegisterUserRequest) (*Session, *RegisterUserResponse, error) {
	resp, err := c.RegisterUser(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	return newSession(c, resp.UserID, resp.JWT), resp, nil
}

// Login authenticates with a user ID or email plus password and returns an
// authenticated session.
func (c *SDKClient) Login(ctx context.Context, identifier, password string) (*Session, error) {
	resp, err := c.LoginUser(ctx, LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return nil, err
	}

	return newSession(c, identifier, resp.JWT), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// bearer token. Useful when a token was obtained out of band.
func (c *SDKClient) NewSessionFromToken(userID, token string) *Session {
	return newSession(c, userID, token)
}
