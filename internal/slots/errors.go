/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the settings failed validation before any search.
	ErrInvalidConfig = errors.New("invalid slot settings")

	// ErrExhaustedSearch indicates the day ceiling was reached short of the requested count.
	ErrExhaustedSearch = errors.New("slot search exhausted")
)

// InvalidConfigError names the offending setting.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func invalid(field, reason string) error {
	return &InvalidConfigError{Field: field, Reason: reason}
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// ExhaustedSearchError reports how far the search got. Generate returns the
// partial slots alongside it.
type ExhaustedSearchError struct {
	Requested int
	Found     int
	Days      int
}

func (e *ExhaustedSearchError) Error() string {
	return fmt.Sprintf("found %d of %d requested slots within %d days", e.Found, e.Requested, e.Days)
}

func (e *ExhaustedSearchError) Unwrap() error { return ErrExhaustedSearch }
