// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin command-line client.
//
// It dispatches sub-commands to the server adapter (list, get, allowed,
// rename, version) or, for "token", mints a bearer token locally with the
// shared signing key.
package client
