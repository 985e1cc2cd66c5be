// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            newPostgresBuilder(),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "login", "slug", "display_name", "email", "created_at"}

func ptr[T any](v T) *T { return &v }

var createdAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
