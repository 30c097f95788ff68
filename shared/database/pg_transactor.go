package database

import (
	"context"
	"fmt"

	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type pgTransactor struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ interfaces.Transactor = (*pgTransactor)(nil)

// NewPgTransactor returns a Transactor backed by pool.
func NewPgTransactor(pool *pgxpool.Pool, logger *zap.Logger) interfaces.Transactor {
	return &pgTransactor{pool: pool, logger: logger.Named("PgTransactor")}
}

// WithTx runs fn in a transaction, commits on success and rolls back on error or panic.
func (t *pgTransactor) WithTx(ctx context.Context, fn func(tx interfaces.DBTX) error) error {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		t.logger.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("%w: failed to begin tx: %w", models.ErrInternalServer, err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.Background())
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.logger.Warn("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		t.logger.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("%w: failed to commit tx: %w", models.ErrInternalServer, err)
	}
	return nil
}
