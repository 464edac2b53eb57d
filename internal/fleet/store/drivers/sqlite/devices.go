package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
)

type devicesRepo struct {
	db dbtx
}

const deviceColumns = `id, name, user_id, metadata, created_at, updated_at`

func (r *devicesRepo) GetDeviceByID(ctx context.Context, id string) (domain.Device, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE id = ?`, id)
	d, err := scanDevice(row)
	if err != nil {
		return domain.Device{}, mapNotFound(err)
	}

	d.CommandIDs, err = r.commandIDs(ctx, d.ID)
	if err != nil {
		return domain.Device{}, err
	}
	return d, nil
}

func (r *devicesRepo) ListDevicesByUser(ctx context.Context, userID string) ([]domain.Device, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE user_id = ? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range devices {
		devices[i].CommandIDs, err = r.commandIDs(ctx, devices[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return devices, nil
}

func (r *devicesRepo) CreateDevice(ctx context.Context, d domain.Device) error {
	metadata, err := marshalMetadata(d.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO devices (id, name, user_id, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.UserID, metadata, d.CreatedAt, d.UpdatedAt,
	)
	return err
}

func (r *devicesRepo) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM devices WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// commandIDs hydrates the device's command list, creation order.
func (r *devicesRepo) commandIDs(ctx context.Context, deviceID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM commands WHERE device_id = ? ORDER BY id ASC`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanDevice(row rowScanner) (domain.Device, error) {
	var (
		d        domain.Device
		metadata string
	)
	err := row.Scan(&d.ID, &d.Name, &d.UserID, &metadata, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Device{}, err
	}

	d.Metadata, err = unmarshalMetadata(metadata)
	if err != nil {
		return domain.Device{}, err
	}
	return d, nil
}
