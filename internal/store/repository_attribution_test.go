// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-username-changer/internal/logger"
)

func newTestAttributionRepo(t *testing.T) (AttributionRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewAttributionRepository(db, logger.Nop()), mock
}

func TestFindAttributedItems(t *testing.T) {
	repo, mock := newTestAttributionRepo(t)

	mock.ExpectQuery(`SELECT i.item_id FROM attribution_items i JOIN attribution_terms t ON t.term_id = i.term_id WHERE t.login = \$1 ORDER BY i.item_id ASC`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow(int64(10)).AddRow(int64(11)))

	items, err := repo.FindAttributedItems(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, items)
}

func TestReattribute_Success(t *testing.T) {
	repo, mock := newTestAttributionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO attribution_terms \(login\) VALUES \(\$1\) ON CONFLICT \(login\) DO NOTHING`).
		WithArgs("alice2").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery(`SELECT term_id FROM attribution_terms WHERE login = \$1`).
		WithArgs("alice2").
		WillReturnRows(sqlmock.NewRows([]string{"term_id"}).AddRow(int64(5)))
	mock.ExpectExec(`INSERT INTO attribution_items \(item_id,term_id\) VALUES \(\$1,\$2\) ON CONFLICT \(item_id, term_id\) DO NOTHING`).
		WithArgs(int64(10), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Reattribute(context.Background(), 10, "alice2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReattribute_LinkFailureRollsBack(t *testing.T) {
	repo, mock := newTestAttributionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attribution_terms").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT term_id").WillReturnRows(sqlmock.NewRows([]string{"term_id"}).AddRow(int64(5)))
	mock.ExpectExec("INSERT INTO attribution_items").WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := repo.Reattribute(context.Background(), 10, "alice2")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveAttributionTerm(t *testing.T) {
	repo, mock := newTestAttributionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM attribution_items WHERE term_id IN \(SELECT term_id FROM attribution_terms WHERE login = \$1\)`).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM attribution_terms WHERE login = \$1`).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.RemoveAttributionTerm(context.Background(), "alice"))
	require.NoError(t, mock.ExpectationsWereMet())
}
