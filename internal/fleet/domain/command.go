package domain

import (
	"fmt"
	"time"
)

// CommandStatus is the closed set of lifecycle states a command moves
// through. Commands are created PENDING; TERMINATED and FAILED are terminal.
// The lifecycle is PENDING -> {RUNNING, SENT} -> {BLOCKED, RECEIVED} ->
// {TERMINATED, FAILED}, with READY for queued-not-dispatched commands.
// Updates accept any documented status; adjacency is not enforced.
type CommandStatus string

const (
	StatusPending    CommandStatus = "PENDING"
	StatusReady      CommandStatus = "READY"
	StatusRunning    CommandStatus = "RUNNING"
	StatusSent       CommandStatus = "SENT"
	StatusBlocked    CommandStatus = "BLOCKED"
	StatusReceived   CommandStatus = "RECEIVED"
	StatusTerminated CommandStatus = "TERMINATED"
	StatusFailed     CommandStatus = "FAILED"
)

// ParseCommandStatus validates a status string against the closed enum.
// Undocumented values are rejected at the deserialization boundary.
func ParseCommandStatus(s string) (CommandStatus, error) {
	switch CommandStatus(s) {
	case StatusPending, StatusReady, StatusRunning, StatusSent,
		StatusBlocked, StatusReceived, StatusTerminated, StatusFailed:
		return CommandStatus(s), nil
	}
	return "", fmt.Errorf("unknown command status %q", s)
}

// Terminal reports whether the status admits no further transitions.
func (s CommandStatus) Terminal() bool {
	return s == StatusTerminated || s == StatusFailed
}

// CommandName is the closed set of commands devices know how to execute.
type CommandName string

const (
	CommandUpdate   CommandName = "UPDATE"
	CommandRestart  CommandName = "RESTART"
	CommandShutdown CommandName = "SHUTDOWN"
	CommandPing     CommandName = "PING"
)

// ParseCommandName validates a command name string against the closed enum.
func ParseCommandName(s string) (CommandName, error) {
	switch CommandName(s) {
	case CommandUpdate, CommandRestart, CommandShutdown, CommandPing:
		return CommandName(s), nil
	}
	return "", fmt.Errorf("unknown command name %q", s)
}

type Command struct {
	ID        string
	DeviceID  string // Foreign key to devices table
	IssuerID  string // user that issued the command
	Name      CommandName
	Args      string // opaque, optional
	Status    CommandStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
