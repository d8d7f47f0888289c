// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable is printed for build metadata that was not injected.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit injected into a binary with
// -ldflags "-X main.buildVersion=...". Any of them may be empty.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the injected version, or "" if none was set.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the banner printed by the binaries at startup, with N/A in
// place of missing values.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNotAvailable(a.buildVersion),
		orNotAvailable(a.buildDate),
		orNotAvailable(a.buildCommit),
	)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
