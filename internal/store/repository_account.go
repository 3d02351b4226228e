package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. Lookups join the person and school rows so that the
// authentication flow gets locale and school status in one round trip.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions, and run
// against the transaction carried by the context when one is open.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves the account with the given identifier.
//
// Error handling:
//   - empty result set → [ErrAccountNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *accountRepository) GetByID(ctx context.Context, id int64) (models.Account, error) {
	return r.getOne(ctx, selectAccountByID, id)
}

// GetByEmail retrieves the account registered under the given email.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.getOne(ctx, selectAccountByEmail, email)
}

// GetByUserName retrieves the account registered under the given username.
func (r *accountRepository) GetByUserName(ctx context.Context, userName string) (models.Account, error) {
	return r.getOne(ctx, selectAccountByUserName, userName)
}

func (r *accountRepository) getOne(ctx context.Context, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, query, arg)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.getOne").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// CreateAccount persists a new authentication row and returns it with
// server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	var personID any
	if account.PersonID != 0 {
		personID = account.PersonID
	}

	row := r.db.querier(ctx).QueryRowContext(ctx, createAccount,
		account.Email, account.UserName, account.PasswordHash,
		account.Active, account.Confirmed, account.ProfileID, personID)

	if err := row.Scan(&account.ID, &account.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: account insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return account, nil
}

// CreatePerson persists a new person row and returns it with its
// server-assigned identifier.
func (r *accountRepository) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, createPerson, person.Name, person.LanguageID)
	if err := row.Scan(&person.ID); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreatePerson").Msg("error: person insert failed")
		return models.Person{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return person, nil
}

// Update applies a partial mutation built from the non-nil fields of update.
//
// Error handling:
//   - update with no changes → [ErrBuildingSQLQuery]
//   - zero rows affected → [ErrAccountNotFound]
func (r *accountRepository) Update(ctx context.Context, update models.AccountUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountUpdateQuery(update)
	if err != nil {
		return err
	}

	result, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error: account update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ListDependents returns the student accounts linked to the given guardian
// or teacher account, ordered by id. An account with no dependents yields an
// empty (non-nil) slice.
func (r *accountRepository) ListDependents(ctx context.Context, authID int64) ([]models.AccountInfo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, selectDependents, authID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListDependents").Msg("error: dependents query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	students := make([]models.AccountInfo, 0)
	for rows.Next() {
		var info models.AccountInfo
		var personID sql.NullInt64
		var personName sql.NullString
		var languageID sql.NullInt64

		if err := rows.Scan(&info.ID, &info.Email, &info.UserName, &info.ProfileID, &personID, &personName, &languageID); err != nil {
			log.Err(err).Str("func", "*accountRepository.ListDependents").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		info.PersonID = personID.Int64
		info.PersonName = personName.String
		info.LanguageID = languageID.Int64
		students = append(students, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return students, nil
}

// scanAccount scans one joined account/person/school row. Person and school
// columns come from LEFT JOINs and may all be NULL.
func scanAccount(row *sql.Row) (models.Account, error) {
	var account models.Account
	var resetCode sql.NullString

	var personID sql.NullInt64
	var personName sql.NullString
	var languageID sql.NullInt64

	var schoolID sql.NullInt64
	var schoolName sql.NullString
	var schoolActive sql.NullBool
	var lastPaymentAt sql.NullTime

	err := row.Scan(
		&account.ID, &account.Email, &account.UserName, &account.PasswordHash,
		&account.Active, &account.Confirmed, &account.ResetPassword, &resetCode,
		&account.ProfileID, &personID, &account.CreatedAt,
		&personID, &personName, &languageID,
		&schoolID, &schoolName, &schoolActive, &lastPaymentAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	account.ResetCode = resetCode.String

	if personID.Valid {
		account.PersonID = personID.Int64
		account.Person = &models.Person{
			ID:         personID.Int64,
			Name:       personName.String,
			LanguageID: languageID.Int64,
		}

		if schoolID.Valid {
			var paidAt *time.Time
			if lastPaymentAt.Valid {
				t := lastPaymentAt.Time
				paidAt = &t
			}
			account.Person.School = &models.School{
				ID:            schoolID.Int64,
				Name:          schoolName.String,
				Active:        schoolActive.Bool,
				LastPaymentAt: paidAt,
			}
		}
	}

	return account, nil
}
