// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-username-changer/internal/logger"
)

// Storages groups the repositories built over one database handle.
type Storages struct {
	UserRepository        UserRepository
	PrivilegeRepository   PrivilegeRepository
	AttributionRepository AttributionRepository

	db *DB
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		PrivilegeRepository:   NewPrivilegeRepository(db, logger),
		AttributionRepository: NewAttributionRepository(db, logger),
		db:                    db,
	}
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
