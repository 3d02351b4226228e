package service

import (
	"context"
	"time"

	"github.com/echoharbor/auth-core/internal/notify"
	"github.com/echoharbor/auth-core/models"
)

// ─────────────────────────────────────────────
// Function-field mocks shared by the service tests.
// Each method field can be overridden per test case; calling an unset field
// panics, which makes unexpected collaborator calls fail loudly.
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	getByIDFn        func(ctx context.Context, id int64) (models.Account, error)
	getByEmailFn     func(ctx context.Context, email string) (models.Account, error)
	getByUserNameFn  func(ctx context.Context, userName string) (models.Account, error)
	createAccountFn  func(ctx context.Context, account models.Account) (models.Account, error)
	createPersonFn   func(ctx context.Context, person models.Person) (models.Person, error)
	updateFn         func(ctx context.Context, update models.AccountUpdate) error
	listDependentsFn func(ctx context.Context, authID int64) ([]models.AccountInfo, error)
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id int64) (models.Account, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockAccountRepository) GetByUserName(ctx context.Context, userName string) (models.Account, error) {
	return m.getByUserNameFn(ctx, userName)
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	return m.createAccountFn(ctx, account)
}

func (m *mockAccountRepository) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	return m.createPersonFn(ctx, person)
}

func (m *mockAccountRepository) Update(ctx context.Context, update models.AccountUpdate) error {
	return m.updateFn(ctx, update)
}

func (m *mockAccountRepository) ListDependents(ctx context.Context, authID int64) ([]models.AccountInfo, error) {
	return m.listDependentsFn(ctx, authID)
}

type mockAuthLogRepository struct {
	appendFn func(ctx context.Context, entry models.AuthLog) (models.AuthLog, error)
}

func (m *mockAuthLogRepository) Append(ctx context.Context, entry models.AuthLog) (models.AuthLog, error) {
	return m.appendFn(ctx, entry)
}

type mockNotificationRepository struct {
	getTemplateByCodeFn func(ctx context.Context, code string) (models.NotificationTemplate, error)
	createFn            func(ctx context.Context, notification models.Notification) (models.Notification, error)
	markSentFn          func(ctx context.Context, id int64, sent bool) error
}

func (m *mockNotificationRepository) GetTemplateByCode(ctx context.Context, code string) (models.NotificationTemplate, error) {
	return m.getTemplateByCodeFn(ctx, code)
}

func (m *mockNotificationRepository) Create(ctx context.Context, notification models.Notification) (models.Notification, error) {
	return m.createFn(ctx, notification)
}

func (m *mockNotificationRepository) MarkSent(ctx context.Context, id int64, sent bool) error {
	return m.markSentFn(ctx, id, sent)
}

type mockSessionManager struct {
	createFn   func(ctx context.Context, info models.AccountInfo) (string, error)
	readFn     func(ctx context.Context, token string) (*models.SessionData, error)
	deleteFn   func(ctx context.Context, token string) error
	validateFn func(ctx context.Context, token string) (*models.SessionData, error)
}

func (m *mockSessionManager) Create(ctx context.Context, info models.AccountInfo) (string, error) {
	return m.createFn(ctx, info)
}

func (m *mockSessionManager) Read(ctx context.Context, token string) (*models.SessionData, error) {
	return m.readFn(ctx, token)
}

func (m *mockSessionManager) Delete(ctx context.Context, token string) error {
	return m.deleteFn(ctx, token)
}

func (m *mockSessionManager) Validate(ctx context.Context, token string) (*models.SessionData, error) {
	return m.validateFn(ctx, token)
}

type mockNotifier struct {
	sendFn func(ctx context.Context, msg notify.Message) error
}

func (m *mockNotifier) Send(ctx context.Context, msg notify.Message) error {
	return m.sendFn(ctx, msg)
}

// passthroughTxRunner runs the function directly; transactional semantics are
// covered by the store tests.
type passthroughTxRunner struct{}

func (passthroughTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// timePtr is a shorthand for timestamp fixtures.
func timePtr(t time.Time) *time.Time {
	return &t
}
