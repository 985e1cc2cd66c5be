// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-username-changer/internal/logger"
)

// attributionRepository stores co-author attribution: one term per login in
// "attribution_terms", linked to content items via "attribution_items".
type attributionRepository struct {
	*DB
	logger *logger.Logger
}

func NewAttributionRepository(db *DB, logger *logger.Logger) AttributionRepository {
	logger.Debug().Msg("creating attribution repository")
	return &attributionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *attributionRepository) FindAttributedItems(ctx context.Context, login string) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAttributedItemsQuery(r.builder, login)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attributionRepository.FindAttributedItems").Str("login", login).Msg("failed to find attributed items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []int64
	for rows.Next() {
		var itemID int64
		if err = rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, itemID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// Reattribute ensures a term exists for login and links it to itemID, in one
// transaction.
func (r *attributionRepository) Reattribute(ctx context.Context, itemID int64, login string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*attributionRepository.Reattribute").
		Int64("item_id", itemID).
		Str("login", login).
		Logger()

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	ensureQuery, ensureArgs, err := buildEnsureAttributionTermQuery(r.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
		log.Err(err).Msg("failed to ensure attribution term")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	termQuery, termArgs, err := buildSelectAttributionTermIDQuery(r.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var termID int64
	if err = tx.QueryRowContext(ctx, termQuery, termArgs...).Scan(&termID); err != nil {
		log.Err(err).Msg("failed to read attribution term id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	linkQuery, linkArgs, err := buildLinkAttributionQuery(r.builder, itemID, termID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		log.Err(err).Int64("term_id", termID).Msg("failed to link attribution term")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *attributionRepository) RemoveAttributionTerm(ctx context.Context, login string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*attributionRepository.RemoveAttributionTerm").
		Str("login", login).
		Logger()

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	linksQuery, linksArgs, err := buildDeleteAttributionLinksQuery(r.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
		log.Err(err).Msg("failed to delete attribution links")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	termQuery, termArgs, err := buildDeleteAttributionTermQuery(r.builder, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, termQuery, termArgs...); err != nil {
		log.Err(err).Msg("failed to delete attribution term")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
