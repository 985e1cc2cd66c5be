// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArgs       = errors.New("wrong number of arguments")
	ErrInvalidUserID   = errors.New("user id must be a positive integer")
	ErrNoServerAdapter = errors.New("server adapter is not configured")
	ErrNoTokenIssuer   = errors.New("token signing is not configured")
)
