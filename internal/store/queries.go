// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/echoharbor/auth-core/models"
)

const (
	// accountColumns joins the person and school rows the authentication
	// flow needs for locale derivation and school-status checks.
	selectAccountBase = `
		SELECT
			a.id,
			a.user_email,
			a.user_name,
			a.user_pwd,
			a.is_active,
			a.is_confirmed,
			a.reset_password,
			a.reset_code,
			a.profile_id,
			a.person_id,
			a.created_at,
			p.id,
			p.name,
			p.language_id,
			s.id,
			s.name,
			s.is_active,
			s.last_payment_at
		FROM authentication a
		LEFT JOIN person p ON p.id = a.person_id
		LEFT JOIN school s ON s.id = p.school_id`

	selectAccountByID       = selectAccountBase + ` WHERE a.id = $1;`
	selectAccountByEmail    = selectAccountBase + ` WHERE a.user_email = $1;`
	selectAccountByUserName = selectAccountBase + ` WHERE a.user_name = $1;`

	createAccount = `
		INSERT INTO authentication (user_email, user_name, user_pwd, is_active, is_confirmed, profile_id, person_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;`

	createPerson = `
		INSERT INTO person (name, language_id)
		VALUES ($1, $2)
		RETURNING id;`

	selectDependents = `
		SELECT
			a.id,
			a.user_email,
			a.user_name,
			a.profile_id,
			a.person_id,
			p.name,
			p.language_id
		FROM dependent d
		JOIN authentication a ON a.id = d.student_auth_id
		LEFT JOIN person p ON p.id = a.person_id
		WHERE d.auth_id = $1
		ORDER BY a.id;`

	insertAuthLog = `
		INSERT INTO authentication_log (auth_id, ip_address, description, auth_event)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`

	selectTemplateByCode = `
		SELECT id, code, subject, description
		FROM notification_template
		WHERE code = $1;`

	insertNotification = `
		INSERT INTO notification (subject, description, template_id, sender_id, receiver_id, sent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;`

	markNotificationSent = `
		UPDATE notification
		SET sent = $1
		WHERE id = $2;`
)

// buildAccountUpdateQuery builds the UPDATE for a partial account mutation.
// Only the non-nil fields of update become SET clauses. Returns
// [ErrBuildingSQLQuery] when the update carries no changes.
func buildAccountUpdateQuery(update models.AccountUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("authentication").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": update.ID})

	if update.PasswordHash != nil {
		builder = builder.Set("user_pwd", *update.PasswordHash)
	}
	if update.ResetPassword != nil {
		builder = builder.Set("reset_password", *update.ResetPassword)
	}
	if update.ResetCode != nil {
		builder = builder.Set("reset_code", *update.ResetCode)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
