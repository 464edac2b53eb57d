package fleetsdk

import "time"

// ============================================================================
// Entity Types
// ============================================================================

// User is the redacted user representation returned by the API. Password and
// secret hashes never leave the service.
type User struct {
	// ID is the unique identifier of the user (ULID)
	ID string `json:"id"`

	// Name is the display name of the user
	Name string `json:"name"`

	// Email is the unique email address of the user
	Email string `json:"email"`

	// DeviceIDs lists the IDs of devices registered under this user,
	// in registration order
	DeviceIDs []string `json:"device_ids"`

	// SubscriptionID identifies the user's subscription plan
	SubscriptionID string `json:"subscription_id,omitempty"`

	// TenantID identifies the tenant this user belongs to
	TenantID string `json:"tenant_id,omitempty"`

	// RoleID identifies the user's role within the tenant
	RoleID string `json:"role_id,omitempty"`

	// UserType is either "USER" or "ADMIN"
	UserType string `json:"user_type"`

	// Metadata is an opaque key-value bag
	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Device represents a device registered under a user.
type Device struct {
	// ID is the unique identifier of the device (ULID)
	ID string `json:"id"`

	// Name is the display name of the device
	Name string `json:"name"`

	// UserID is the ID of the owning user
	UserID string `json:"user_id"`

	// CommandIDs lists the IDs of commands issued against this device,
	// in creation order
	CommandIDs []string `json:"command_ids"`

	// Metadata is an opaque key-value bag
	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Command represents an asynchronous command issued to a device.
type Command struct {
	// ID is the unique identifier of the command (ULID)
	ID string `json:"id"`

	// DeviceID is the ID of the target device
	DeviceID string `json:"device_id"`

	// IssuerID is the ID of the user that issued the command
	IssuerID string `json:"issuer_id"`

	// Name is the command name (e.g., "UPDATE")
	Name string `json:"name"`

	// Args is an optional opaque argument string
	Args string `json:"args,omitempty"`

	// Status is the command lifecycle status (e.g., "PENDING", "RUNNING")
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================================================================
// User Endpoints
// ============================================================================

// RegisterUserRequest is the body for POST /users/register.
type RegisterUserRequest struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	RawPassword    string            `json:"raw_password"`
	SubscriptionID string            `json:"subscription_id,omitempty"`
	TenantID       string            `json:"tenant_id,omitempty"`
	RoleID         string            `json:"role_id,omitempty"`
	UserType       string            `json:"user_type,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// RegisterUserResponse is returned from POST /users/register. The UserSecret
// is shown exactly once; the service only stores its fingerprint.
type RegisterUserResponse struct {
	UserID     string `json:"user_id"`
	JWT        string `json:"jwt"`
	UserSecret string `json:"user_secret"`
}

// LoginRequest is the body for POST /users/login. Identifier is either the
// user's ID or their email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is returned from POST /users/login.
type LoginResponse struct {
	JWT string `json:"jwt"`
}

// GetUserResponse is returned from GET /users/get.
type GetUserResponse struct {
	User User `json:"user"`
}

// ============================================================================
// Device Endpoints
// ============================================================================

// RegisterDeviceRequest is the body for POST /devices/register. UserSecret is
// the device-secret token minted at registration time, not the raw secret.
type RegisterDeviceRequest struct {
	DeviceName string `json:"device_name"`
	UserID     string `json:"user_id"`
	IssuerID   string `json:"issuer_id"`
	UserSecret string `json:"user_secret"`
}

// RegisterDeviceResponse is returned from POST /devices/register.
type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
}

// GetDeviceResponse is returned from GET /devices/get.
type GetDeviceResponse struct {
	Device Device `json:"device"`
}

// GetDevicesResponse is returned from GET /devices/get/all.
type GetDevicesResponse struct {
	Devices []Device `json:"devices"`
}

// ============================================================================
// Command Endpoints
// ============================================================================

// CreateCommandRequest is the body for POST /commands/create.
type CreateCommandRequest struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Args     string `json:"args,omitempty"`
	IssuerID string `json:"issuer_id"`
}

// CreateCommandResponse is returned from POST /commands/create.
type CreateCommandResponse struct {
	CommandID string `json:"command_id"`
}

// BatchCreateCommandsRequest is the body for POST /commands/batch/create.
// One command is created per device, all-or-nothing.
type BatchCreateCommandsRequest struct {
	DeviceIDs []string `json:"device_ids"`
	Name      string   `json:"name"`
	Args      string   `json:"args,omitempty"`
	IssuerID  string   `json:"issuer_id"`
}

// BatchCreateCommandsResponse is returned from POST /commands/batch/create.
type BatchCreateCommandsResponse struct {
	CommandIDs []string `json:"command_ids"`
}

// GetCommandResponse is returned from GET /commands/get and
// GET /commands/recent.
type GetCommandResponse struct {
	Command Command `json:"command"`
}

// BatchGetCommandsRequest is the body for POST /commands/batch/get.
type BatchGetCommandsRequest struct {
	CommandIDs []string `json:"command_ids"`
}

// BatchGetCommandsResponse is returned from POST /commands/batch/get.
type BatchGetCommandsResponse struct {
	Commands []Command `json:"commands"`
}

// UpdateCommandStatusRequest is the body for PATCH /commands/update/status.
type UpdateCommandStatusRequest struct {
	CommandID string `json:"command_id"`
	Status    string `json:"status"`
}

// ============================================================================
// Health Endpoints
// ============================================================================

// HealthResponse is returned from GET /livez and GET /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}
