package database

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type PostgresOptions struct {
	MaxOpenConns int
	// LockTimeout bounds how long a selection waits for the group row lock.
	LockTimeout time.Duration
}

// Database is the Postgres store for groups, numbers and click events.
type Database struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

func ConnectPostgres(ctx context.Context, url string, opts PostgresOptions) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	lockTimeout := opts.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = 2 * time.Second
	}
	pg := &Database{db: db, lockTimeout: lockTimeout}

	if err := pg.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return pg, nil
}

func (db *Database) RunMigrations() error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db.db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("database migrations applied successfully")
	return nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.db.PingContext(ctx)
}

func (db *Database) Close() error {
	return db.db.Close()
}
