package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository]. Notification rows are created when a flow needs
// to communicate with a user and mutated exactly once to record the delivery
// outcome.
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// GetTemplateByCode retrieves the notification template registered under
// code.
//
// Error handling:
//   - empty result set → [ErrTemplateNotFound]
func (r *notificationRepository) GetTemplateByCode(ctx context.Context, code string) (models.NotificationTemplate, error) {
	log := logger.FromContext(ctx)

	var template models.NotificationTemplate
	row := r.db.querier(ctx).QueryRowContext(ctx, selectTemplateByCode, code)
	if err := row.Scan(&template.ID, &template.Code, &template.Subject, &template.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NotificationTemplate{}, ErrTemplateNotFound
		}
		log.Err(err).Str("func", "*notificationRepository.GetTemplateByCode").Msg("error: template query failed")
		return models.NotificationTemplate{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return template, nil
}

// Create persists a notification row and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *notificationRepository) Create(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, insertNotification,
		notification.Subject, notification.Description, notification.TemplateID,
		notification.SenderID, notification.ReceiverID, notification.Sent)

	if err := row.Scan(&notification.ID, &notification.CreatedAt); err != nil {
		log.Err(err).Str("func", "*notificationRepository.Create").Msg("error: notification insert failed")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return notification, nil
}

// MarkSent records the delivery outcome of an existing notification.
//
// Error handling:
//   - zero rows affected → [ErrNotificationNotFound]
func (r *notificationRepository) MarkSent(ctx context.Context, id int64, sent bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.querier(ctx).ExecContext(ctx, markNotificationSent, sent, id)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkSent").Msg("error: notification update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
