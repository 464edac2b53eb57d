package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/store"
)

type commandsRepo struct {
	db dbtx
}

const commandColumns = `id, device_id, issuer_id, name, args, status, created_at, updated_at`

func (r *commandsRepo) GetCommandByID(ctx context.Context, id string) (domain.Command, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+commandColumns+` FROM commands WHERE id = ?`, id)
	c, err := scanCommand(row)
	if err != nil {
		return domain.Command{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commandsRepo) ListCommandsByIDs(ctx context.Context, ids []string) ([]domain.Command, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+commandColumns+` FROM commands WHERE id IN (`+placeholders+`) ORDER BY id ASC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []domain.Command
	for rows.Next() {
		c, err := scanCommand(rows)
		if err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, rows.Err()
}

func (r *commandsRepo) GetMostRecentPending(ctx context.Context, deviceID string) (domain.Command, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+commandColumns+` FROM commands
		WHERE device_id = ? AND status = ?
		ORDER BY id DESC LIMIT 1`,
		deviceID, string(domain.StatusPending))
	c, err := scanCommand(row)
	if err != nil {
		return domain.Command{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commandsRepo) CreateCommand(ctx context.Context, c domain.Command) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO commands (id, device_id, issuer_id, name, args, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.DeviceID, c.IssuerID, string(c.Name), c.Args, string(c.Status),
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// UpdateStatus guards on the current status in the WHERE clause, so a
// same-status update affects zero rows and surfaces as ErrNotModified.
func (r *commandsRepo) UpdateStatus(ctx context.Context, commandID string, status domain.CommandStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE commands SET status = ?, updated_at = ?
		WHERE id = ? AND status != ?`,
		string(status), time.Now().UTC(), commandID, string(status))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Zero rows: distinguish a missing command from a zero-effect write.
	exists, err := commandExists(ctx, r.db, commandID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrNotModified
}

func commandExists(ctx context.Context, db dbtx, id string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM commands WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func scanCommand(row rowScanner) (domain.Command, error) {
	var (
		c      domain.Command
		name   string
		status string
	)
	err := row.Scan(&c.ID, &c.DeviceID, &c.IssuerID, &name, &c.Args, &status,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Command{}, err
	}

	c.Name = domain.CommandName(name)
	c.Status = domain.CommandStatus(status)
	return c, nil
}
