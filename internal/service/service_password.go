package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/notify"
	"github.com/echoharbor/auth-core/internal/store"
	"github.com/echoharbor/auth-core/internal/utils"
	"github.com/echoharbor/auth-core/models"
)

const (
	resetCodeLength        = 4
	recoveryPasswordLength = 8

	templateCodePasswordRecovery = "PASSWORD_RECOVERY"
	notificationRoutePassword    = "password_recovery"
)

// passwordService implements [PasswordService]. Every mutating operation runs
// inside one transaction; notifications that merely inform the user are sent
// after the commit so a delivery failure never rolls back the change.
type passwordService struct {
	cfg           config.App
	db            TransactionRunner
	accounts      store.AccountRepository
	notifications store.NotificationRepository
	notifier      notify.Notifier

	logger *logger.Logger
}

// NewPasswordService constructs the password service.
func NewPasswordService(cfg config.App, storages *store.Storages, notifier notify.Notifier, log *logger.Logger) PasswordService {
	log.Debug().Msg("creating password service")

	return &passwordService{
		cfg:           cfg,
		db:            storages.DB,
		accounts:      storages.AccountRepository,
		notifications: storages.NotificationRepository,
		notifier:      notifier,
		logger:        log,
	}
}

// RequestReset sets the reset flag, issues a fresh reset code and mails it to
// the account's address. A mismatched email fails before any mutation.
func (s *passwordService) RequestReset(ctx context.Context, param models.PasswordParam) error {
	var email string
	var code string

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		account, err := s.getAccountByID(ctx, param.AuthID)
		if err != nil {
			return err
		}
		if account.Email != param.UserEmail {
			return ErrInvalidEmail
		}

		code, err = utils.GenerateResetCode(resetCodeLength)
		if err != nil {
			return fmt.Errorf("generating reset code: %w", err)
		}

		flag := true
		email = account.Email

		return s.accounts.Update(ctx, models.AccountUpdate{
			ID:            account.ID,
			ResetPassword: &flag,
			ResetCode:     &code,
		})
	})
	if err != nil {
		return err
	}

	s.sendBestEffort(ctx, notify.Message{
		Subject:   "Password Reset - CODE",
		Body:      fmt.Sprintf("Your password reset code is: %s", code),
		Recipient: email,
	})

	return nil
}

// ValidateCode compares the submitted code to the stored one. Pure check:
// no state is mutated and the code is not cleared. An account with no issued
// code never validates.
func (s *passwordService) ValidateCode(ctx context.Context, param models.PasswordParam) (bool, error) {
	account, err := s.getAccountByID(ctx, param.AuthID)
	if err != nil {
		return false, err
	}

	return account.ResetCode != "" && account.ResetCode == param.ResetCode, nil
}

// Update is the authenticated password change. The old password must verify
// against the stored hash before the new one is applied; a mismatch leaves
// the row untouched.
func (s *passwordService) Update(ctx context.Context, param models.PasswordParam) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context) error {
		account, err := s.getAccountByEmail(ctx, param.UserEmail)
		if err != nil {
			return err
		}

		if err := verifyTransportPassword(account.PasswordHash, param.OldPassword); err != nil {
			return err
		}

		hash, err := hashTransportPassword(param.UserPassword)
		if err != nil {
			return err
		}

		return s.accounts.Update(ctx, models.AccountUpdate{
			ID:           account.ID,
			PasswordHash: &hash,
		})
	})
}

// Recover is the forced reset: a random password replaces the stored hash,
// the reset flag is raised, and the user is notified with the temporary
// password. The notification row records the delivery outcome; a notification
// failure never fails the recovery itself.
func (s *passwordService) Recover(ctx context.Context, param models.AuthenticateParam) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context) error {
		account, err := s.getAccountByEmail(ctx, param.UserEmail)
		if err != nil {
			return err
		}
		if !account.Active {
			return ErrUserDeactivated
		}
		if !account.Confirmed {
			return ErrInvalidAccess
		}

		plaintext, err := utils.GenerateRandomPassword(recoveryPasswordLength)
		if err != nil {
			return fmt.Errorf("generating recovery password: %w", err)
		}
		hash, err := utils.HashPassword(plaintext)
		if err != nil {
			return fmt.Errorf("hashing recovery password: %w", err)
		}

		flag := true
		if err := s.accounts.Update(ctx, models.AccountUpdate{
			ID:            account.ID,
			PasswordHash:  &hash,
			ResetPassword: &flag,
		}); err != nil {
			return err
		}

		s.notifyRecovery(ctx, account, plaintext)

		return nil
	})
}

// Reset completes the loop opened by RequestReset: it requires the email to
// match and the reset flag to be raised, then clears the flag and code and
// stores the new hash. The confirmation mail goes out after the commit.
func (s *passwordService) Reset(ctx context.Context, param models.PasswordParam) error {
	var email string

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		account, err := s.getAccountByID(ctx, param.AuthID)
		if err != nil {
			return err
		}
		if account.Email != param.UserEmail {
			return ErrInvalidEmail
		}
		if !account.ResetPassword {
			return ErrUnauthorized
		}

		hash, err := hashTransportPassword(param.UserPassword)
		if err != nil {
			return err
		}

		flag := false
		clearedCode := ""
		email = account.Email

		return s.accounts.Update(ctx, models.AccountUpdate{
			ID:            account.ID,
			PasswordHash:  &hash,
			ResetPassword: &flag,
			ResetCode:     &clearedCode,
		})
	})
	if err != nil {
		return err
	}

	s.sendBestEffort(ctx, notify.Message{
		Subject:   "Password was Reset",
		Body:      "Your password was just reset. If you did not request this, please contact us.",
		Recipient: email,
	})

	return nil
}

// notifyRecovery persists the notification row for the recovery template,
// attempts delivery with the temporary password as the route context, and
// records the outcome. Every step is best-effort.
func (s *passwordService) notifyRecovery(ctx context.Context, account models.Account, plaintext string) {
	log := logger.FromContext(ctx)

	template, err := s.notifications.GetTemplateByCode(ctx, templateCodePasswordRecovery)
	if err != nil {
		log.Err(err).Str("code", templateCodePasswordRecovery).Msg("loading notification template failed")
		return
	}

	notification, err := s.notifications.Create(ctx, models.Notification{
		Subject:     template.Subject,
		Description: template.Description,
		TemplateID:  template.ID,
		SenderID:    s.cfg.SenderAuthID,
		ReceiverID:  account.ID,
	})
	if err != nil {
		log.Err(err).Int64("receiver_id", account.ID).Msg("creating notification failed")
		return
	}

	sendErr := s.notifier.Send(ctx, notify.Message{
		Subject:   notification.Subject,
		Body:      notification.Description,
		Recipient: account.Email,
		Route:     notificationRoutePassword,
		Context:   plaintext,
	})
	if sendErr != nil {
		// TODO: schedule a redelivery once a retry queue exists.
		log.Err(sendErr).Int64("notification_id", notification.ID).Msg("notification delivery failed")
	}

	if err := s.notifications.MarkSent(ctx, notification.ID, sendErr == nil); err != nil {
		log.Err(err).Int64("notification_id", notification.ID).Msg("recording notification outcome failed")
	}
}

// sendBestEffort delivers an informational message, logging any failure.
func (s *passwordService) sendBestEffort(ctx context.Context, msg notify.Message) {
	if err := s.notifier.Send(ctx, msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("recipient", msg.Recipient).Msg("notification delivery failed")
	}
}

func (s *passwordService) getAccountByID(ctx context.Context, id int64) (models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrUserDoesNotExist
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("resolving account by id: %w", err)
	}

	return account, nil
}

func (s *passwordService) getAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrUserDoesNotExist
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("resolving account by email: %w", err)
	}

	return account, nil
}

// hashTransportPassword decodes the base64 transport encoding and hashes the
// plaintext for storage.
func hashTransportPassword(encoded string) (string, error) {
	plaintext, err := utils.DecodeTransportPassword(encoded)
	if err != nil {
		return "", ErrInvalidPassword
	}

	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return hash, nil
}
