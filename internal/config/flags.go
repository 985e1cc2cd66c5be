// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name)
// on a dedicated flag set. Positional arguments left after the flags are
// returned in [StructuredConfig.Args].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-multi-tenant enable network-level rename rules
//	-attribution move co-author attribution on rename
//	-strict-logins restrict logins to portable ASCII
//	-log-level zerolog level name
//	-server admin CLI server base URL
//	-token admin CLI bearer token
//	-network admin CLI uses the network-level surface
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var multiTenant, attribution, strictLogins bool
	var logLevel string
	var baseURL, token string
	var network bool

	fs := flag.NewFlagSet("username-changer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&multiTenant, "multi-tenant", false, "Enable network-level rename rules")
	fs.BoolVar(&attribution, "attribution", false, "Move co-author attribution on rename")
	fs.BoolVar(&strictLogins, "strict-logins", false, "Restrict logins to portable ASCII")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&baseURL, "server", "", "Server base URL for the admin CLI")
	fs.StringVar(&token, "token", "", "Admin bearer token for the admin CLI")
	fs.BoolVar(&network, "network", false, "Use the network-level surface")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			LogLevel:           logLevel,
			MultiTenant:        multiTenant,
			AttributionEnabled: attribution,
			StrictLogins:       strictLogins,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Token:          token,
			NetworkLevel:   network,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
