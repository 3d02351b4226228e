package store

import (
	"context"
	"fmt"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

// authLogRepository is the PostgreSQL-backed implementation of
// [AuthLogRepository]. The authentication log is append-only: there are no
// update or delete operations.
type authLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthLogRepository constructs an [AuthLogRepository] backed by the
// provided database connection and logger.
func NewAuthLogRepository(db *DB, logger *logger.Logger) AuthLogRepository {
	logger.Debug().Msg("creating auth log repository")
	return &authLogRepository{
		db:     db,
		logger: logger,
	}
}

// Append writes one log entry and returns it with server-assigned fields
// (ID, CreatedAt).
func (r *authLogRepository) Append(ctx context.Context, entry models.AuthLog) (models.AuthLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, insertAuthLog,
		entry.AuthID, entry.IPAddress, entry.Description, entry.Event)

	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		log.Err(err).Str("func", "*authLogRepository.Append").Msg("error: auth log insert failed")
		return models.AuthLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}
