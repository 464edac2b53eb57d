package domain

import "time"

type Device struct {
	ID         string
	Name       string
	UserID     string            // Foreign key to users table, owning user
	Metadata   map[string]string
	CommandIDs []string // commands issued against this device, creation order
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
