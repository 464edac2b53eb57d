package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/store"
	"github.com/fleetops/fleetcmd/pkg/idx"
	"github.com/fleetops/fleetcmd/pkg/slogx"
)

// CommandService owns the command lifecycle: creation, lookup, device
// polling, and status updates.
type CommandService struct {
	Store store.Store
}

// CreateCommandParams are the inputs for Create and CreateBatch. Name must be
// a documented command name; Args is opaque and optional.
type CreateCommandParams struct {
	Name     string
	Args     string
	IssuerID string
}

// Create issues a command against deviceID, starting PENDING. The device
// existence check and insert share a transaction so the command cannot land
// on a device that vanished between check and write.
func (s *CommandService) Create(ctx context.Context, deviceID string, p CreateCommandParams) (string, error) {
	name, err := domain.ParseCommandName(p.Name)
	if err != nil {
		return "", ErrInvalidData
	}
	if deviceID == "" || p.IssuerID == "" {
		return "", ErrInvalidData
	}

	now := time.Now().UTC()
	commandID := idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		ok, err := tx.Devices().Exists(ctx, deviceID)
		if err != nil {
			return err
		}
		if !ok {
			return store.ErrNotFound
		}

		return tx.Commands().CreateCommand(ctx, domain.Command{
			ID:        commandID,
			DeviceID:  deviceID,
			IssuerID:  p.IssuerID,
			Name:      name,
			Args:      p.Args,
			Status:    domain.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("command created",
		slog.String("command_id", commandID),
		slog.String("device_id", deviceID),
	)

	return commandID, nil
}

// CreateBatch issues one command per device, all-or-nothing. Every device is
// checked before anything is written; the first missing device aborts the
// transaction and nothing is created.
func (s *CommandService) CreateBatch(ctx context.Context, deviceIDs []string, p CreateCommandParams) ([]string, error) {
	name, err := domain.ParseCommandName(p.Name)
	if err != nil {
		return nil, ErrInvalidData
	}
	if len(deviceIDs) == 0 || p.IssuerID == "" {
		return nil, ErrInvalidData
	}

	now := time.Now().UTC()
	commandIDs := make([]string, 0, len(deviceIDs))

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, deviceID := range deviceIDs {
			ok, err := tx.Devices().Exists(ctx, deviceID)
			if err != nil {
				return err
			}
			if !ok {
				return store.ErrNotFound
			}
		}

		for _, deviceID := range deviceIDs {
			cmd := domain.Command{
				ID:        idx.New().String(),
				DeviceID:  deviceID,
				IssuerID:  p.IssuerID,
				Name:      name,
				Args:      p.Args,
				Status:    domain.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Commands().CreateCommand(ctx, cmd); err != nil {
				return err
			}
			commandIDs = append(commandIDs, cmd.ID)
		}

		if len(commandIDs) != len(deviceIDs) {
			return store.ErrNotModified
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("command batch created",
		slog.Int("count", len(commandIDs)),
	)

	return commandIDs, nil
}

// GetByID fetches a command by id.
func (s *CommandService) GetByID(ctx context.Context, commandID string) (domain.Command, error) {
	return s.Store.Commands().GetCommandByID(ctx, commandID)
}

// GetBatch returns the commands matching ids. Unknown ids are skipped; an
// empty result is store.ErrNotFound, mirroring the collection-as-absence
// behavior of the device listing.
func (s *CommandService) GetBatch(ctx context.Context, ids []string) ([]domain.Command, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidData
	}

	commands, err := s.Store.Commands().ListCommandsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(commands) == 0 {
		return nil, store.ErrNotFound
	}
	return commands, nil
}

// GetMostRecentPending is the device polling entry point: the newest PENDING
// command for the device, or store.ErrNotFound when the queue is drained.
func (s *CommandService) GetMostRecentPending(ctx context.Context, deviceID string) (domain.Command, error) {
	ok, err := s.Store.Devices().Exists(ctx, deviceID)
	if err != nil {
		return domain.Command{}, err
	}
	if !ok {
		return domain.Command{}, store.ErrNotFound
	}

	return s.Store.Commands().GetMostRecentPending(ctx, deviceID)
}

// UpdateStatus sets a command's status to any documented value. Adjacency is
// not enforced, but a same-status update changes zero rows and fails with
// store.ErrNotModified.
func (s *CommandService) UpdateStatus(ctx context.Context, commandID, newStatus string) error {
	status, err := domain.ParseCommandStatus(newStatus)
	if err != nil {
		return ErrInvalidData
	}
	if commandID == "" {
		return ErrInvalidData
	}

	if err := s.Store.Commands().UpdateStatus(ctx, commandID, status); err != nil {
		if errors.Is(err, store.ErrNotModified) {
			slogx.FromContext(ctx).Warn("command status update had no effect",
				slog.String("command_id", commandID),
				slog.String("status", string(status)),
			)
		}
		return err
	}
	return nil
}
