package service

import (
	"context"
	"crypto/subtle"
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

var ErrInvalidUserSecret = errors.New("invalid_user_secret")

// DeviceService owns device registration and lookup.
type DeviceService struct {
	Store    store.Store
	Verifier jwtx.Verifier
}

// RegisterDevice creates a device under userID after proving the caller holds
// the user's secret. The secretToken is a signed device-secret token whose
// subject must be userID and whose secret must fingerprint to the stored
// user_secret_hash. Creation runs in a transaction with the owner lookup so a
// concurrently deleted user cannot leave an orphan device.
func (s *DeviceService) RegisterDevice(ctx context.Context, deviceName, userID, issuerID, secretToken string) (string, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	deviceName = strings.TrimSpace(deviceName)
	if deviceName == "" || userID == "" {
		return "", ErrInvalidData
	}
	if issuerID == "" {
		issuerID = userID
	}

	claims, err := s.Verifier.Verify(secretToken)
	if err != nil {
		l.Info("device secret token verification failed", slog.String("user_id", userID))
		return "", ErrInvalidUserSecret
	}
	if err := claims.ValidateExpiry(); err != nil {
		return "", ErrInvalidUserSecret
	}
	if claims.Subject != userID || claims.Secret == "" {
		return "", ErrInvalidUserSecret
	}

	deviceID := idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err // store.ErrNotFound maps to 404 at the edge
		}

		fp := cryptox.FingerprintSecret(claims.Secret)
		if subtle.ConstantTimeCompare([]byte(fp), []byte(user.UserSecretHash)) != 1 {
			return ErrInvalidUserSecret
		}

		// Inserting the row IS the owner-list append: devices.user_id is
		// the link, so there is no separate read-modify-write step.
		return tx.Devices().CreateDevice(ctx, domain.Device{
			ID:        deviceID,
			Name:      deviceName,
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}

	l.Info("device registered",
		slog.String("device_id", deviceID),
		slog.String("user_id", userID),
	)

	return deviceID, nil
}

// GetDeviceByID fetches a device by id.
func (s *DeviceService) GetDeviceByID(ctx context.Context, deviceID string) (domain.Device, error) {
	return s.Store.Devices().GetDeviceByID(ctx, deviceID)
}

// GetDevicesByUser returns all devices owned by userID. A user with no
// devices yields store.ErrNotFound: the original API treats the empty
// collection as absence and clients depend on the 404.
func (s *DeviceService) GetDevicesByUser(ctx context.Context, userID string) ([]domain.Device, error) {
	devices, err := s.Store.Devices().ListDevicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, store.ErrNotFound
	}
	return devices, nil
}
