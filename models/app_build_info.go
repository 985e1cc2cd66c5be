// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// unknownBuildValue stands in for metadata not injected at link time.
const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected build metadata of a binary.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build metadata with empty values replaced by "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// String renders the metadata on one line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", a.version, a.date, a.commit)
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildValue
	}
	return value
}
