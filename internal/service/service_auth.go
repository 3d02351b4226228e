package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/store"
	"github.com/echoharbor/auth-core/internal/utils"
	"github.com/echoharbor/auth-core/models"
)

// authService implements [AuthService] over the account repository, the
// auth log and the session manager.
type authService struct {
	cfg      config.App
	accounts store.AccountRepository
	authLog  store.AuthLogRepository
	sessions SessionManager

	// now is the clock used by the school payment check. Tests substitute it.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(cfg config.App, storages *store.Storages, sessions SessionManager, log *logger.Logger) AuthService {
	log.Debug().Msg("creating auth service")

	return &authService{
		cfg:      cfg,
		accounts: storages.AccountRepository,
		authLog:  storages.AuthLogRepository,
		sessions: sessions,
		now:      time.Now,
		logger:   log,
	}
}

// Authenticate walks the login state machine: resolve account, check status
// flags, verify the password, create the session, attach dependents, log the
// event. Every validation failure is a typed sentinel error.
func (s *authService) Authenticate(ctx context.Context, param models.AuthenticateParam) (models.AuthenticateResult, error) {
	account, err := s.resolveAccount(ctx, param.UserEmail, param.UserName)
	if err != nil {
		return models.AuthenticateResult{}, err
	}

	if !account.Active {
		return models.AuthenticateResult{}, ErrUserDeactivated
	}
	if err := s.checkSchool(account); err != nil {
		return models.AuthenticateResult{}, err
	}

	if !account.Confirmed {
		return models.AuthenticateResult{}, ErrInvalidPassword
	}
	if err := verifyTransportPassword(account.PasswordHash, param.UserPassword); err != nil {
		return models.AuthenticateResult{}, err
	}

	languageID := s.cfg.DefaultLanguageID
	if account.Person != nil && account.Person.LanguageID != 0 {
		languageID = account.Person.LanguageID
	}
	ctx = utils.WithLanguageID(ctx, languageID)

	info := account.Info()

	token, err := s.sessions.Create(ctx, info)
	if err != nil {
		return models.AuthenticateResult{}, fmt.Errorf("creating session: %w", err)
	}

	students := []models.AccountInfo{}
	if account.ProfileID == models.RoleGuardian || account.ProfileID == models.RoleTeacher {
		students, err = s.accounts.ListDependents(ctx, account.ID)
		if err != nil {
			return models.AuthenticateResult{}, fmt.Errorf("listing dependents: %w", err)
		}
	}

	s.appendAuthLog(ctx, info, models.AuthEventLoggedIn)

	return models.AuthenticateResult{
		SessionToken: token,
		AccountInfo:  info,
		Students:     students,
	}, nil
}

// Logout logs the event for the session's account (when one is still live)
// and deletes the session. Deleting an already-gone session is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.sessions.Read(ctx, token)
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}
	if session != nil {
		s.appendAuthLog(ctx, session.SessionInfo, models.AuthEventLoggedOut)
	}

	return s.sessions.Delete(ctx, token)
}

// resolveAccount looks the account up by email, falling back to username.
func (s *authService) resolveAccount(ctx context.Context, email, userName string) (models.Account, error) {
	if email != "" {
		account, err := s.accounts.GetByEmail(ctx, email)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, fmt.Errorf("resolving account by email: %w", err)
		}
	}

	if userName != "" {
		account, err := s.accounts.GetByUserName(ctx, userName)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, fmt.Errorf("resolving account by username: %w", err)
		}
	}

	return models.Account{}, ErrUserDoesNotExist
}

// checkSchool gates school-scoped logins. The check short-circuits before the
// password step: an inactive school, or one whose last payment is older than
// the grace window, blocks the account.
func (s *authService) checkSchool(account models.Account) error {
	if account.ProfileID != models.RoleSchool {
		return nil
	}
	if account.Person == nil || account.Person.School == nil {
		return nil
	}

	school := account.Person.School
	if !school.Active {
		return ErrSchoolDeactivated
	}
	if school.LastPaymentAt == nil || s.now().Sub(*school.LastPaymentAt) > s.cfg.PaymentGrace {
		return ErrSchoolDeactivated
	}

	return nil
}

// appendAuthLog writes one append-only log entry. Logging is best-effort:
// a failed append never fails the login or logout it describes.
func (s *authService) appendAuthLog(ctx context.Context, info models.AccountInfo, event models.AuthEvent) {
	entry := models.AuthLog{
		AuthID:      info.ID,
		IPAddress:   utils.GetClientIPFromContext(ctx),
		Description: fmt.Sprintf("User: %s %s.", info.UserName, event),
		Event:       event,
	}

	if _, err := s.authLog.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("auth_id", info.ID).
			Str("event", string(event)).
			Msg("appending authentication log entry failed")
	}
}

// verifyTransportPassword decodes the base64 transport encoding and checks
// the plaintext against the stored hash. Any failure is ErrInvalidPassword;
// the caller cannot distinguish a malformed payload from a wrong password.
func verifyTransportPassword(hash, encoded string) error {
	plaintext, err := utils.DecodeTransportPassword(encoded)
	if err != nil {
		return ErrInvalidPassword
	}

	ok, err := utils.VerifyPassword(hash, plaintext)
	if err != nil || !ok {
		return ErrInvalidPassword
	}

	return nil
}
