package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/echoharbor/auth-core/internal/logger"
)

// querier is the subset of database operations shared by *sql.DB and
// *sql.Tx. Repository methods run against whichever the context carries.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txCtxKey carries the open transaction through the context so that deep
// callees (repositories) join the request's transaction without explicit
// parameter threading.
type txCtxKey struct{}

// WithTransaction runs fn inside a single database transaction. The
// transaction is attached to the context handed to fn; every repository call
// made with that context joins it. The transaction commits when fn returns
// nil and rolls back on any error — every mutating flow gets the same
// rollback behavior.
func (db *DB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	// The deferred rollback also closes the transaction when fn panics;
	// after a successful commit it returns sql.ErrTxDone and is a no-op.
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.FromContext(ctx).Err(rbErr).Msg("transaction rollback failed")
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// querier returns the transaction carried by ctx, falling back to the plain
// connection pool when none is open.
func (db *DB) querier(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}

	return db.DB
}
