package domain

import (
	"fmt"
	"time"
)

// UserType distinguishes regular users from tenant administrators.
type UserType string

const (
	UserTypeUser  UserType = "USER"
	UserTypeAdmin UserType = "ADMIN"
)

// ParseUserType validates a user type string against the closed enum.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeUser, UserTypeAdmin:
		return UserType(s), nil
	}
	return "", fmt.Errorf("unknown user type %q", s)
}

type User struct {
	ID             string
	Name           string
	Email          string            // globally unique
	PasswordHash   string            // argon2 encoded
	UserSecretHash string            // fingerprint of the device-registration secret (base64url SHA-256)
	SubscriptionID string
	TenantID       string
	RoleID         string
	UserType       UserType
	Metadata       map[string]string
	DeviceIDs      []string // owned devices, registration order
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
