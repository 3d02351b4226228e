package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/store"
	"github.com/echoharbor/auth-core/models"
)

// registrationService implements [RegistrationService].
type registrationService struct {
	cfg      config.App
	db       TransactionRunner
	accounts store.AccountRepository

	logger *logger.Logger
}

// NewRegistrationService constructs the registration service.
func NewRegistrationService(cfg config.App, storages *store.Storages, log *logger.Logger) RegistrationService {
	log.Debug().Msg("creating registration service")

	return &registrationService{
		cfg:      cfg,
		db:       storages.DB,
		accounts: storages.AccountRepository,
		logger:   log,
	}
}

// Register creates the person and account rows in one transaction. Any error,
// including a duplicate email or username, rolls both inserts back. The new
// account starts active and unconfirmed.
func (s *registrationService) Register(ctx context.Context, profileCode string, param models.RegistrationParam) (models.AccountInfo, error) {
	profileID, ok := models.RoleByCode[profileCode]
	if !ok {
		return models.AccountInfo{}, ErrUnknownProfile
	}

	hash, err := hashTransportPassword(param.UserPassword)
	if err != nil {
		return models.AccountInfo{}, err
	}

	languageID := param.LanguageID
	if languageID == 0 {
		languageID = s.cfg.DefaultLanguageID
	}

	var created models.Account
	err = s.db.WithTransaction(ctx, func(ctx context.Context) error {
		person, err := s.accounts.CreatePerson(ctx, models.Person{
			Name:       param.PersonName,
			LanguageID: languageID,
		})
		if err != nil {
			return fmt.Errorf("creating person: %w", err)
		}

		created, err = s.accounts.CreateAccount(ctx, models.Account{
			Email:        param.UserEmail,
			UserName:     param.UserName,
			PasswordHash: hash,
			Active:       true,
			Confirmed:    false,
			ProfileID:    profileID,
			PersonID:     person.ID,
		})
		if err != nil {
			return err
		}
		created.Person = &person

		return nil
	})
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		return models.AccountInfo{}, ErrUserAlreadyExists
	}
	if err != nil {
		return models.AccountInfo{}, err
	}

	return created.Info(), nil
}

// CheckUserName reports whether the username is already taken.
func (s *registrationService) CheckUserName(ctx context.Context, userName string) (bool, error) {
	_, err := s.accounts.GetByUserName(ctx, userName)
	if errors.Is(err, store.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolving account by username: %w", err)
	}

	return true, nil
}

// VerifyEmail reports whether the email belongs to an account and, when it
// does, the account's id.
func (s *registrationService) VerifyEmail(ctx context.Context, email string) (int64, bool, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolving account by email: %w", err)
	}

	return account.ID, true, nil
}
