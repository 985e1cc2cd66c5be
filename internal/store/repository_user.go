// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" and "network_admins" tables. The same code serves PostgreSQL and
// SQLite; the embedded [*DB] supplies the dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.Slug, &user.DisplayName, &user.Email, timestamp{&user.CreatedAt})
	return user, err
}

// sqliteTimeFormats are the layouts SQLite writes for CURRENT_TIMESTAMP and
// for time.Time values bound by go-sqlite3.
var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timestamp scans a created_at column. go-sqlite3 only converts TEXT to
// time.Time when the result column reports a declared type.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqliteTimeFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

// FindUserByLogin retrieves the user whose login equals login exactly.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByLoginQuery(r.builder, login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Str("login", login).Msg("error finding user by login")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns all users ordered by login.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to list users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 32)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// ApplyRename executes plan in a single transaction:
//  1. update login, slug and (optionally) display name;
//  2. when plan.ReaffirmNetworkPrivilege is set, grant network privilege to
//     the new login and revoke the stale grant of the old one.
//
// The transaction is rolled back (via defer) on any failure, so a failed
// privilege write never leaves a renamed account behind.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - no row for plan.UserID → [ErrNoUserWasFound].
func (r *userRepository) ApplyRename(ctx context.Context, plan models.RenamePlan) (models.User, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*userRepository.ApplyRename").
		Int64("user_id", plan.UserID).
		Str("current_login", plan.CurrentLogin).
		Logger()

	updateQuery, updateArgs, err := buildUpdateUserFieldsQuery(r.builder, plan.UserID, plan.Fields)
	if err != nil {
		log.Err(err).Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	updated, err := scanUser(tx.QueryRowContext(ctx, updateQuery, updateArgs...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Warn().Msg("user disappeared before rename")
			return models.User{}, ErrNoUserWasFound
		case r.classify(err) == UniqueViolation:
			log.Warn().Err(err).Msg("login taken concurrently")
			return models.User{}, fmt.Errorf("%w: %w", ErrLoginAlreadyExists, err)
		default:
			log.Err(err).Str("class", r.classify(err).String()).Msg("failed to update user fields")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if plan.ReaffirmNetworkPrivilege && updated.Login != plan.CurrentLogin {
		if err = r.moveNetworkPrivilege(ctx, tx, plan.CurrentLogin, updated.Login); err != nil {
			log.Err(err).Msg("failed to re-affirm network privilege")
			return models.User{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("new_login", updated.Login).Msg("rename committed")

	return updated, nil
}

func (r *userRepository) moveNetworkPrivilege(ctx context.Context, tx *sql.Tx, from, to string) error {
	grantQuery, grantArgs, err := buildGrantNetworkPrivilegeQuery(r.builder, to)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, grantQuery, grantArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	revokeQuery, revokeArgs, err := buildRevokeNetworkPrivilegeQuery(r.builder, from)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, revokeQuery, revokeArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
