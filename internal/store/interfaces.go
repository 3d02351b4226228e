package store

import (
	"context"

	"github.com/echoharbor/auth-core/models"
)

// AccountRepository is the persistence collaborator for authentication rows.
// Lookups return [ErrAccountNotFound] for empty result sets; mutations join
// the transaction carried by the context when one is open.
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	GetByUserName(ctx context.Context, userName string) (models.Account, error)

	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	CreatePerson(ctx context.Context, person models.Person) (models.Person, error)
	Update(ctx context.Context, update models.AccountUpdate) error

	ListDependents(ctx context.Context, authID int64) ([]models.AccountInfo, error)
}

// AuthLogRepository appends entries to the append-only authentication log.
type AuthLogRepository interface {
	Append(ctx context.Context, entry models.AuthLog) (models.AuthLog, error)
}

// NotificationRepository persists notification rows and their templates.
type NotificationRepository interface {
	GetTemplateByCode(ctx context.Context, code string) (models.NotificationTemplate, error)
	Create(ctx context.Context, notification models.Notification) (models.Notification, error)
	MarkSent(ctx context.Context, id int64, sent bool) error
}
