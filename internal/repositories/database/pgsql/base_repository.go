package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE pgx reports when a unique index rejects an
// insert. The entries table relies on it for same-day conflict detection.
const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", classifyStoreError(err))
	}
	return tx, nil
}

// Rollback rolls back a transaction, tolerating an already-finished one.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// classifyStoreError tags connectivity and timeout failures with
// apperrors.ErrStoreUnavailable so callers can tell a transient outage apart
// from "no such record". Other errors pass through unchanged.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return err
}

// withReadRetry runs a read operation and retries it exactly once if the
// failure was classified as transient. Writes are never retried; they must
// stay single-shot so a conflict cannot be double-reported.
func withReadRetry(ctx context.Context, op func(context.Context) error) error {
	err := op(ctx)
	if err == nil || !errors.Is(err, apperrors.ErrStoreUnavailable) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}
	return op(ctx)
}
