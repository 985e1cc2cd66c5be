// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"
)

// Rename failure kinds. A failed rename is returned as *RenameError whose
// Kind is one of these, so callers match with errors.Is.
var (
	ErrMissingField            = errors.New("required field is missing")
	ErrNotFound                = errors.New("user not found")
	ErrNoOpRename              = errors.New("current and new login are the same")
	ErrConflict                = errors.New("login already exists")
	ErrRequiresElevatedContext = errors.New("network-privileged account must be renamed from the network level")
	ErrForbidden               = errors.New("acting user may not rename users")
	ErrPersistence             = errors.New("user directory failure")

	// ErrPartialSuccess is wrapped by RenameResult.AttributionErr. The rename
	// itself was committed.
	ErrPartialSuccess = errors.New("rename committed, attribution not fully moved")
)

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNilStorages             = errors.New("storages are not initialized")
)

// RenameError describes why a rename was rejected or failed.
type RenameError struct {
	// Kind is one of the rename failure sentinels.
	Kind error

	// Field names the missing input for ErrMissingField.
	Field string

	CurrentLogin string
	DesiredLogin string

	// Cause is the underlying storage error, if any. It is meant for logs
	// and is never shown to end users.
	Cause error
}

func (e *RenameError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *RenameError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
