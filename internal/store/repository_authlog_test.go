package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

func newTestAuthLogRepo(t *testing.T) (*authLogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &authLogRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}

	return repo, mock, db
}

func TestAuthLogRepository_Append(t *testing.T) {
	repo, mock, db := newTestAuthLogRepo(t)
	defer db.Close()

	now := time.Now()
	entry := models.AuthLog{
		AuthID:      42,
		IPAddress:   "203.0.113.9",
		Description: "User: alice logged_in.",
		Event:       models.AuthEventLoggedIn,
	}

	mock.ExpectQuery("INSERT INTO authentication_log").
		WithArgs(entry.AuthID, entry.IPAddress, entry.Description, entry.Event).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	appended, err := repo.Append(context.Background(), entry)
	require.NoError(t, err)

	assert.Equal(t, int64(11), appended.ID)
	assert.Equal(t, entry.Description, appended.Description)
	assert.WithinDuration(t, now, appended.CreatedAt, time.Second)
}

func TestAuthLogRepository_Append_DriverError(t *testing.T) {
	repo, mock, db := newTestAuthLogRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO authentication_log").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Append(context.Background(), models.AuthLog{AuthID: 42})
	assert.Error(t, err)
}
