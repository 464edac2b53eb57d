package fleetsdk

// Session is an authenticated handle on the fleet service. It carries the
// bearer token obtained from registration or login; tokens are not refreshed
// automatically, callers re-login when the token expires.
type Session struct {
	client *SDKClient
	userID string
	token  string
}

func newSession(c *SDKClient, userID, token string) *Session {
	return &Session{
		client: c,
		userID: userID,
		token:  token,
	}
}

// UserID returns the identifier the session was established with. For
// sessions created via Login this is whatever identifier the caller supplied
// (user ID or email).
func (s *Session) UserID() string {
	return s.userID
}

// Token returns the session's bearer token, e.g. for persisting it.
func (s *Session) Token() string {
	return s.token
}
