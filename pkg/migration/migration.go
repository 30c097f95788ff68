package migration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const defaultMigrationsTable = "schema_migrations"

// Config describes where the SQL files live.
type Config struct {
	MigrationsFS    fs.FS
	MigrationsPath  string // directory inside MigrationsFS, "." for the root
	MigrationsTable string
	LockTimeout     time.Duration
}

// Migrator applies golang-migrate migrations through a pgx pool.
type Migrator struct {
	config Config
	pool   *pgxpool.Pool
}

// NewMigrator creates a Migrator.
func NewMigrator(config Config, pool *pgxpool.Pool) *Migrator {
	if config.MigrationsPath == "" {
		config.MigrationsPath = "."
	}
	if config.MigrationsTable == "" {
		config.MigrationsTable = defaultMigrationsTable
	}
	if config.LockTimeout <= 0 {
		config.LockTimeout = 30 * time.Second
	}
	return &Migrator{config: config, pool: pool}
}

// Up applies all pending migrations. No pending migrations is not an error.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", func(mg *migrate.Migrate) error { return mg.Up() })
}

// Down rolls back every migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", func(mg *migrate.Migrate) error { return mg.Down() })
}

// Steps applies n migrations forward, or -n backward.
func (m *Migrator) Steps(ctx context.Context, n int) error {
	return m.run(ctx, "steps", func(mg *migrate.Migrate) error { return mg.Steps(n) })
}

// ForceVersion sets the version without running migrations, clearing the dirty flag.
func (m *Migrator) ForceVersion(ctx context.Context, version int) error {
	return m.run(ctx, "force", func(mg *migrate.Migrate) error { return mg.Force(version) })
}

// Version returns the current version. A fresh database reports 0, false.
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	mg, err := m.createMigrator(ctx)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(mg)

	version, dirty, err := mg.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

func (m *Migrator) run(ctx context.Context, op string, fn func(*migrate.Migrate) error) error {
	mg, err := m.createMigrator(ctx)
	if err != nil {
		return err
	}
	defer closeMigrator(mg)

	if err := fn(mg); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Str("op", op).Msg("database schema already up to date")
			return nil
		}
		return fmt.Errorf("migration %s failed: %w", op, err)
	}
	version, dirty, _ := mg.Version()
	log.Info().Str("op", op).Uint("version", version).Bool("dirty", dirty).Msg("database migrations applied")
	return nil
}

func (m *Migrator) createMigrator(ctx context.Context) (*migrate.Migrate, error) {
	if err := m.pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database is not reachable: %w", err)
	}
	db := stdlib.OpenDBFromPool(m.pool)

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: m.config.MigrationsTable})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	source, err := iofs.New(m.config.MigrationsFS, m.config.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}
	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	mg.LockTimeout = m.config.LockTimeout
	mg.Log = zerologAdapter{}
	return mg, nil
}

func closeMigrator(mg *migrate.Migrate) {
	srcErr, dbErr := mg.Close()
	if srcErr != nil || dbErr != nil {
		log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
	}
}

// zerologAdapter implements migrate.Logger.
type zerologAdapter struct{}

func (zerologAdapter) Printf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func (zerologAdapter) Verbose() bool { return false }
