// Command migrate manages the story service schema.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	pkgdb "story-server/pkg/database"
	"story-server/pkg/migration"
	"story-server/shared/database/migrations"
	"story-server/story-service/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("migration command failed")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back story service migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file with DB_* settings")

	withMigrator := func(fn func(ctx context.Context, m *migration.Migrator, args []string) error) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(envFile)
			if err != nil {
				return err
			}
			ctx := c.Context()
			pool, err := pkgdb.Connect(ctx, cfg.Database())
			if err != nil {
				return err
			}
			defer pool.Close()
			return fn(ctx, newMigrator(pool), args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, m *migration.Migrator, _ []string) error {
				return m.Up(ctx)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, m *migration.Migrator, _ []string) error {
				return m.Down(ctx)
			}),
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply N migrations, or roll back when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(ctx context.Context, m *migration.Migrator, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q: %w", args[0], err)
				}
				return m.Steps(ctx, n)
			}),
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the schema version without running migrations and clear the dirty flag",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(ctx context.Context, m *migration.Migrator, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return m.ForceVersion(ctx, v)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, m *migration.Migrator, _ []string) error {
				version, dirty, err := m.Version(ctx)
				if err != nil {
					return err
				}
				log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
				return nil
			}),
		},
	)
	return cmd
}

func newMigrator(pool *pgxpool.Pool) *migration.Migrator {
	return migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, pool)
}
