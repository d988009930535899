// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoUnavailable stands in for build metadata the linker did not set.
const BuildInfoUnavailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags. It is
// printed at startup and backs the version endpoint when no version is
// configured.
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

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the startup banner, one field per line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orUnavailable(a.buildVersion), orUnavailable(a.buildDate), orUnavailable(a.buildCommit))
}

func orUnavailable(s string) string {
	if s == "" {
		return BuildInfoUnavailable
	}
	return s
}
