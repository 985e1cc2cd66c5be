// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-username-changer/internal/logger"
)

type privilegeRepository struct {
	*DB
	logger *logger.Logger
}

// NewPrivilegeRepository constructs a [PrivilegeRepository] over the
// "network_admins" and "user_capabilities" tables.
func NewPrivilegeRepository(db *DB, logger *logger.Logger) PrivilegeRepository {
	logger.Debug().Msg("creating privilege repository")
	return &privilegeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *privilegeRepository) HasNetworkPrivilege(ctx context.Context, login string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountNetworkPrivilegeQuery(r.builder, login)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*privilegeRepository.HasNetworkPrivilege").Str("login", login).Msg("failed to check network privilege")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *privilegeRepository) ListNetworkAdmins(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNetworkAdminsQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*privilegeRepository.ListNetworkAdmins").Msg("failed to list network admins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var logins []string
	for rows.Next() {
		var login string
		if err = rows.Scan(&login); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logins = append(logins, login)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logins, nil
}

func (r *privilegeRepository) HasCapability(ctx context.Context, userID int64, capability string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCapabilityQuery(r.builder, userID, capability)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*privilegeRepository.HasCapability").
			Int64("user_id", userID).
			Str("capability", capability).
			Msg("failed to check capability")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
