/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version provides build version information.
package version

import "fmt"

// Version is the current version of timeslots.
// This is set at build time via ldflags:
//
//	-X github.com/friendsincode/timeslots/internal/version.Version=X.Y.Z
var Version = "0.3.0"

// Commit is the source revision, also set via ldflags.
var Commit = ""

// String renders the version line printed by `timeslots version`.
func String() string {
	if Commit == "" {
		return fmt.Sprintf("timeslots %s", Version)
	}
	return fmt.Sprintf("timeslots %s (%s)", Version, Commit)
}
