package store

import (
	"context"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
)

// Storages bundles the database handle and every repository built over it.
type Storages struct {
	DB *DB

	AccountRepository      AccountRepository
	AuthLogRepository      AuthLogRepository
	NotificationRepository NotificationRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		DB:                     db,
		AccountRepository:      NewAccountRepository(db, log),
		AuthLogRepository:      NewAuthLogRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
	}, nil
}
