package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &notificationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}

	return repo, mock, db
}

func TestNotificationRepository_GetTemplateByCode(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM notification_template").
		WithArgs("PASSWORD_RECOVERY").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "subject", "description"}).
			AddRow(5, "PASSWORD_RECOVERY", "Password Recovery", "Your new password is ready."))

	template, err := repo.GetTemplateByCode(context.Background(), "PASSWORD_RECOVERY")
	require.NoError(t, err)

	assert.Equal(t, int64(5), template.ID)
	assert.Equal(t, "Password Recovery", template.Subject)
}

func TestNotificationRepository_GetTemplateByCode_NotFound(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM notification_template").
		WithArgs("MISSING").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTemplateByCode(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestNotificationRepository_Create(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	now := time.Now()
	notification := models.Notification{
		Subject:     "Password Recovery",
		Description: "Your new password is ready.",
		TemplateID:  5,
		SenderID:    1,
		ReceiverID:  42,
	}

	mock.ExpectQuery("INSERT INTO notification").
		WithArgs(notification.Subject, notification.Description, notification.TemplateID,
			notification.SenderID, notification.ReceiverID, notification.Sent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(77, now))

	created, err := repo.Create(context.Background(), notification)
	require.NoError(t, err)

	assert.Equal(t, int64(77), created.ID)
	assert.False(t, created.Sent)
}

func TestNotificationRepository_MarkSent(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE notification").
		WithArgs(true, int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), 77, true))
}

func TestNotificationRepository_MarkSent_NotFound(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE notification").
		WithArgs(false, int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), 999, false)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
