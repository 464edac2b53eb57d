package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/store"
	"github.com/fleetops/fleetcmd/pkg/cryptox"
	"github.com/fleetops/fleetcmd/pkg/idx"
	"github.com/fleetops/fleetcmd/pkg/jwtx"
	"github.com/fleetops/fleetcmd/pkg/slogx"
)

var (
	ErrInvalidData     = errors.New("invalid_data")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrEmailTaken      = errors.New("email_taken")
)

// UserService owns registration, login, and user lookup.
type UserService struct {
	Store           store.Store
	Signer          jwtx.Signer
	Issuer          string
	AccessTTL       time.Duration
	DeviceSecretTTL time.Duration
}

// RegisterUserParams are the validated-at-the-edge inputs for Register.
// UserType defaults to USER when empty.
type RegisterUserParams struct {
	Name           string
	Email          string
	RawPassword    string
	SubscriptionID string
	TenantID       string
	RoleID         string
	UserType       string
	Metadata       map[string]string
}

// RegisterUserResult carries everything the client needs after registration.
// UserSecretToken is shown exactly once; only its secret's fingerprint is
// stored.
type RegisterUserResult struct {
	UserID          string
	AccessToken     string
	UserSecretToken string
}

// Register creates a user account. The user secret is derived from the
// password hash and email, fingerprinted for storage, and handed back as a
// signed device-secret token the client presents when registering devices.
func (s *UserService) Register(ctx context.Context, p RegisterUserParams) (RegisterUserResult, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	if p.Name == "" || !strings.Contains(p.Email, "@") {
		return RegisterUserResult{}, ErrInvalidData
	}
	if len(p.RawPassword) < 8 {
		return RegisterUserResult{}, ErrInvalidData
	}

	userType := domain.UserTypeUser
	if p.UserType != "" {
		var err error
		userType, err = domain.ParseUserType(p.UserType)
		if err != nil {
			return RegisterUserResult{}, ErrInvalidData
		}
	}

	passwordHash, err := cryptox.HashPassword(p.RawPassword)
	if err != nil {
		return RegisterUserResult{}, err
	}

	secret := cryptox.DeriveUserSecret(passwordHash, p.Email)

	user := domain.User{
		ID:             idx.New().String(),
		Name:           p.Name,
		Email:          p.Email,
		PasswordHash:   passwordHash,
		UserSecretHash: cryptox.FingerprintSecret(secret),
		SubscriptionID: p.SubscriptionID,
		TenantID:       p.TenantID,
		RoleID:         p.RoleID,
		UserType:       userType,
		Metadata:       p.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return RegisterUserResult{}, ErrEmailTaken
		}
		return RegisterUserResult{}, err
	}

	accessToken, err := s.Signer.Sign(jwtx.NewAccessClaims(user.ID, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return RegisterUserResult{}, err
	}

	secretToken, err := s.Signer.Sign(jwtx.NewDeviceSecretClaims(user.ID, secret, s.Issuer, s.DeviceSecretTTL, now))
	if err != nil {
		return RegisterUserResult{}, err
	}

	l.Info("user registered", slog.String("user_id", user.ID))

	return RegisterUserResult{
		UserID:          user.ID,
		AccessToken:     accessToken,
		UserSecretToken: secretToken,
	}, nil
}

// Login resolves the identifier (user ID or email, "@" decides), verifies the
// password, and mints a fresh bearer token. A wrong password is
// ErrInvalidPassword, not a generic unauthorized, matching the API contract.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", ErrInvalidData
	}

	var (
		user domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.Store.Users().GetUserByID(ctx, identifier)
	}
	if err != nil {
		return "", err // store.ErrNotFound maps to 404 at the edge
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login password mismatch", slog.String("user_id", user.ID))
		return "", ErrInvalidPassword
	}

	return s.Signer.Sign(jwtx.NewAccessClaims(user.ID, s.Issuer, s.AccessTTL, now))
}

// GetUserByID fetches a user by id. Hash redaction is the transport layer's
// job; the domain value is returned whole.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Exists reports whether the user is present, for caller resolution.
func (s *UserService) Exists(ctx context.Context, userID string) (bool, error) {
	return s.Store.Users().Exists(ctx, userID)
}
