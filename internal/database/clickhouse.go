package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"
	"time"

	"warotator/internal/types"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	clickmigrations "github.com/golang-migrate/migrate/v4/database/clickhouse"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/clickhouse/*.sql
var migrationsClickHouseFS embed.FS

type ClickHouseOptions struct {
	Addr     string
	User     string
	Password string
	Database string
}

// ClickHouse mirrors click events into a column store for long range
// analytics. Postgres stays the source of truth for the dashboard queries.
type ClickHouse struct {
	db *sql.DB
}

func ConnectClickHouse(ctx context.Context, opts ClickHouseOptions) (*ClickHouse, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{opts.Addr},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.User,
			Password: opts.Password,
		},
		DialTimeout: time.Second * 30,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	ch := &ClickHouse{db: conn}
	if err := ch.runMigrations(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ch, nil
}

func (ch *ClickHouse) runMigrations() error {
	d, err := iofs.New(migrationsClickHouseFS, "migrations/clickhouse")
	if err != nil {
		return err
	}

	driver, err := clickmigrations.WithInstance(ch.db, &clickmigrations.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"clickhouse", driver,
	)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("clickhouse migrations applied successfully")
	return nil
}

func (ch *ClickHouse) Name() string { return "clickhouse" }

// InsertClicks sends the batch as a single ClickHouse block.
func (ch *ClickHouse) InsertClicks(ctx context.Context, clicks []types.ClickEvent) error {
	if len(clicks) == 0 {
		return nil
	}

	tx, err := ch.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO click_events (id, group_id, number_id, created_at, ip_address, user_agent,
		device_type, referrer, utm_source, utm_medium, utm_campaign, country, city, browser, os)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range clicks {
		_, err := stmt.ExecContext(ctx,
			c.ID, c.GroupID, c.NumberID, c.CreatedAt, c.IPAddress, c.UserAgent,
			c.DeviceType, c.Referrer, c.UTMSource, c.UTMMedium, c.UTMCampaign, c.Country, c.City, c.Browser, c.OS,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (ch *ClickHouse) Close() error {
	return ch.db.Close()
}
