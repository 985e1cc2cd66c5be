// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "invalid host",
			input:       "example:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.EqualError(t, err, tt.errorMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/users",
		"-driver", "pgx",
		"-config", "/etc/uc.json",
		"-token-sign-key", "secret",
		"-token-issuer", "platform",
		"-request-timeout", "10s",
		"-multi-tenant",
		"-attribution",
		"-strict-logins",
		"-log-level", "debug",
		"-server", "http://localhost:9000",
		"-token", "bearer",
		"-network",
		"rename", "alice", "alice2",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/users", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/uc.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "platform", cfg.App.TokenIssuer)
	assert.True(t, cfg.App.MultiTenant)
	assert.True(t, cfg.App.AttributionEnabled)
	assert.True(t, cfg.App.StrictLogins)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, "bearer", cfg.Adapter.Token)
	assert.True(t, cfg.Adapter.NetworkLevel)
	assert.Equal(t, []string{"rename", "alice", "alice2"}, cfg.Args)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.App.MultiTenant)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-grpc-address", "localhost:9090"})
	require.Error(t, err)
}
