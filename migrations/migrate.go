// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded schema of the user directory, one
// goose migration set per supported database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Driver names accepted by Migrate. They match the database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported driver")
)

// Migrate applies every pending migration for driver.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)
	switch driver {
	case DriverPostgres:
		dialect, dir = goose.DialectPostgres, "postgres"
	case DriverSQLite:
		dialect, dir = goose.DialectSQLite3, "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error reading embedded %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}
