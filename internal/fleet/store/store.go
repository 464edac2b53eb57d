package store

import (
	"context"
	"errors"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrNotModified is returned when a write was acknowledged but changed
	// zero rows, e.g. setting a command status to the status it already has.
	ErrNotModified = errors.New("store: not modified")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. We can change having the sub-repos as methods later but we do it
// now so we can have more control and actively stop people from accidently
// doing transactions within transactions.
type Store interface {
	Users() Users
	Devices() Devices
	Commands() Commands

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g.,
	// device creation plus owner link).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id, device IDs included.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login with an email identifier.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// Exists reports whether a user with the given id exists. Cheaper than
	// GetUserByID when only presence matters (caller resolution).
	Exists(ctx context.Context, id string) (bool, error)

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Devices interface {
	// GetDeviceByID returns a device by id, command IDs included.
	GetDeviceByID(ctx context.Context, id string) (domain.Device, error)

	// ListDevicesByUser returns all devices owned by a user, creation order.
	// An empty result is a valid ([], nil) return; the service layer decides
	// what an empty list means.
	ListDevicesByUser(ctx context.Context, userID string) ([]domain.Device, error)

	// CreateDevice inserts a new device (id is ULID). The devices.user_id
	// column is the owner link, so insertion IS the list append.
	CreateDevice(ctx context.Context, d domain.Device) error

	// Exists reports whether a device with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

type Commands interface {
	// GetCommandByID returns a command by id.
	GetCommandByID(ctx context.Context, id string) (domain.Command, error)

	// ListCommandsByIDs returns all commands whose id is in ids, creation
	// order. IDs with no matching command are skipped, not errors.
	ListCommandsByIDs(ctx context.Context, ids []string) ([]domain.Command, error)

	// GetMostRecentPending returns the newest PENDING command for a device
	// (ULIDs sort by creation time, so newest = highest id).
	GetMostRecentPending(ctx context.Context, deviceID string) (domain.Command, error)

	// CreateCommand inserts a new command (id is ULID).
	CreateCommand(ctx context.Context, c domain.Command) error

	// UpdateStatus sets the command status and bumps updated_at. A write
	// that changes zero rows yields ErrNotModified; the status guard in the
	// WHERE clause makes a same-status update indistinguishable from a
	// zero-effect write, which is exactly the contract.
	UpdateStatus(ctx context.Context, commandID string, status domain.CommandStatus) error
}
