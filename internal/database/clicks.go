package database

import (
	"context"
	"errors"
	"log/slog"

	"warotator/internal/types"
)

const insertClick = `
	INSERT INTO click_events (id, group_id, number_id, created_at, ip_address, user_agent, device_type,
	                          referrer, utm_source, utm_medium, utm_campaign, country, city, browser, os)
	VALUES (:id, :group_id, :number_id, :created_at, :ip_address, :user_agent, :device_type,
	        :referrer, :utm_source, :utm_medium, :utm_campaign, :country, :city, :browser, :os)`

func (db *Database) Name() string { return "postgres" }

// InsertClicks appends a batch of click events. When the multi-row insert
// fails (typically one event referencing a number deleted meanwhile) the
// events are retried one by one so a single bad row does not lose the batch.
func (db *Database) InsertClicks(ctx context.Context, clicks []types.ClickEvent) error {
	if len(clicks) == 0 {
		return nil
	}

	_, err := db.db.NamedExecContext(ctx, insertClick, clicks)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	slog.Warn("batch click insert failed, retrying per row", "error", err, "size", len(clicks))

	var errs []error
	for _, c := range clicks {
		if _, err := db.db.NamedExecContext(ctx, insertClick, c); err != nil {
			slog.Error("failed to insert click", "error", err, "click_id", c.ID, "group_id", c.GroupID)
			errs = append(errs, classify(err))
		}
	}
	return errors.Join(errs...)
}
