// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected build metadata of the agent and client
// binaries. It is reported by the version endpoint, the status action and the
// popup's about window.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// BuildVersion returns the release version, empty for local builds.
func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders "version (commit, date)" with N/A for missing parts.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orUnknown(a.version), orUnknown(a.commit), orUnknown(a.date))
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
