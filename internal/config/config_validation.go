// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged configuration is usable by the server.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	return nil
}

// TokenCommand is the admin CLI sub-command that mints a bearer token
// locally. It needs the signing settings instead of a server connection.
const TokenCommand = "token"

// validateClient checks the settings the admin CLI depends on.
func (cfg *StructuredConfig) validateClient() error {
	if len(cfg.Args) > 0 && cfg.Args[0] == TokenCommand {
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
			return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
		}
		return nil
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidAdapterConfigs)
	}

	return nil
}
