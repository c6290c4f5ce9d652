package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"warotator/internal/types"

	"github.com/google/uuid"
)

const numberColumns = `id, group_id, phone, name, custom_message, is_active, last_used_at, created_at, updated_at`

// rotationOrder is the least-recently-used order: never used numbers first,
// then the oldest use; ties go to the oldest number.
const rotationOrder = `ORDER BY last_used_at ASC NULLS FIRST, created_at ASC, id ASC`

// ActiveNumbers returns the active numbers of a group in rotation order.
// A group without active numbers yields an empty slice.
func (db *Database) ActiveNumbers(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error) {
	out := []types.WhatsAppNumber{}
	err := db.db.SelectContext(ctx, &out, `
		SELECT `+numberColumns+`
		FROM whatsapp_numbers
		WHERE group_id = $1 AND is_active
		`+rotationOrder, groupID)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// SelectNext picks the least recently used active number of the group and
// marks it used at now, in one transaction. The group row is locked first,
// so selections for the same group run one at a time while other groups
// proceed independently. The returned number carries the LastUsedAt it had
// before the update. A missing group yields ErrNotFound and an inactive one
// ErrGroupInactive.
func (db *Database) SelectNext(ctx context.Context, groupID uuid.UUID, now time.Time) (*types.WhatsAppNumber, error) {
	tx, err := db.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT set_config('lock_timeout', $1, true)`, pgInterval(db.lockTimeout)); err != nil {
		return nil, classify(err)
	}

	// NO KEY UPDATE does not conflict with the KEY SHARE locks that click
	// inserts take through their foreign key.
	var active bool
	if err := tx.GetContext(ctx, &active, `SELECT is_active FROM groups WHERE id = $1 FOR NO KEY UPDATE`, groupID); err != nil {
		return nil, classify(err)
	}
	if !active {
		return nil, ErrGroupInactive
	}

	var n types.WhatsAppNumber
	err = tx.GetContext(ctx, &n, `
		SELECT `+numberColumns+`
		FROM whatsapp_numbers
		WHERE group_id = $1 AND is_active
		`+rotationOrder+`
		LIMIT 1`, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveNumbers
		}
		return nil, classify(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE whatsapp_numbers SET last_used_at = $2 WHERE id = $1`, n.ID, now.UTC()); err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify(err)
	}
	return &n, nil
}

func (db *Database) NumberByID(ctx context.Context, id uuid.UUID) (*types.WhatsAppNumber, error) {
	var n types.WhatsAppNumber
	err := db.db.GetContext(ctx, &n, `SELECT `+numberColumns+` FROM whatsapp_numbers WHERE id = $1`, id)
	if err != nil {
		return nil, classify(err)
	}
	return &n, nil
}

// ListNumbers returns every number of a group, active or not, in rotation order.
func (db *Database) ListNumbers(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error) {
	out := []types.WhatsAppNumber{}
	err := db.db.SelectContext(ctx, &out, `
		SELECT `+numberColumns+`
		FROM whatsapp_numbers
		WHERE group_id = $1
		`+rotationOrder, groupID)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (db *Database) CreateNumber(ctx context.Context, n *types.WhatsAppNumber) error {
	_, err := db.db.NamedExecContext(ctx, `
		INSERT INTO whatsapp_numbers (id, group_id, phone, name, custom_message, is_active, last_used_at, created_at, updated_at)
		VALUES (:id, :group_id, :phone, :name, :custom_message, :is_active, :last_used_at, :created_at, :updated_at)
	`, n)
	if err != nil {
		if errors.Is(classify(err), ErrInUse) {
			// the referenced group does not exist
			return ErrNotFound
		}
		return classify(err)
	}
	return nil
}

// UpdateNumber writes the admin-editable fields. last_used_at is owned by
// SelectNext and is left alone.
func (db *Database) UpdateNumber(ctx context.Context, n *types.WhatsAppNumber) error {
	res, err := db.db.NamedExecContext(ctx, `
		UPDATE whatsapp_numbers
		SET phone = :phone,
		    name = :name,
		    custom_message = :custom_message,
		    is_active = :is_active,
		    updated_at = :updated_at
		WHERE id = :id
	`, n)
	if err != nil {
		return classify(err)
	}
	return expectAffected(res)
}

func (db *Database) DeleteNumber(ctx context.Context, id uuid.UUID) error {
	res, err := db.db.ExecContext(ctx, `DELETE FROM whatsapp_numbers WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectAffected(res)
}

// pgInterval renders d in a unit Postgres settings understand.
func pgInterval(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
