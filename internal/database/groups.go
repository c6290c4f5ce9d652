package database

import (
	"context"
	"database/sql"

	"warotator/internal/types"

	"github.com/google/uuid"
)

const groupColumns = `id, slug, name, default_message, is_active, created_at, updated_at`

func (db *Database) GroupBySlug(ctx context.Context, slug string) (*types.Group, error) {
	var g types.Group
	err := db.db.GetContext(ctx, &g, `SELECT `+groupColumns+` FROM groups WHERE slug = $1`, slug)
	if err != nil {
		return nil, classify(err)
	}
	return &g, nil
}

func (db *Database) GroupByID(ctx context.Context, id uuid.UUID) (*types.Group, error) {
	var g types.Group
	err := db.db.GetContext(ctx, &g, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	if err != nil {
		return nil, classify(err)
	}
	return &g, nil
}

func (db *Database) CreateGroup(ctx context.Context, g *types.Group) error {
	_, err := db.db.NamedExecContext(ctx, `
		INSERT INTO groups (id, slug, name, default_message, is_active, created_at, updated_at)
		VALUES (:id, :slug, :name, :default_message, :is_active, :created_at, :updated_at)
	`, g)
	return classify(err)
}

// UpdateGroup writes name, default message and the active flag. The slug is
// never rewritten once a group exists.
func (db *Database) UpdateGroup(ctx context.Context, g *types.Group) error {
	res, err := db.db.NamedExecContext(ctx, `
		UPDATE groups
		SET name = :name,
		    default_message = :default_message,
		    is_active = :is_active,
		    updated_at = :updated_at
		WHERE id = :id
	`, g)
	if err != nil {
		return classify(err)
	}
	return expectAffected(res)
}

// DeleteGroup removes the group together with its numbers. It fails with
// ErrInUse when clicks were recorded for it.
func (db *Database) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	tx, err := db.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM whatsapp_numbers WHERE group_id = $1`, id); err != nil {
		return classify(err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	return classify(tx.Commit())
}

func (db *Database) ListGroups(ctx context.Context) ([]types.GroupSummary, error) {
	var out []types.GroupSummary
	err := db.db.SelectContext(ctx, &out, `
		SELECT g.id, g.slug, g.name, g.default_message, g.is_active, g.created_at, g.updated_at,
		       (SELECT COUNT(*) FROM whatsapp_numbers n WHERE n.group_id = g.id AND n.is_active) AS active_numbers,
		       (SELECT COUNT(*) FROM click_events c WHERE c.group_id = g.id) AS clicks
		FROM groups g
		ORDER BY g.name ASC, g.created_at ASC
	`)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
