// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package api

import "fmt"

// UnknownValueError reports a well-formed genre or platform that does not
// occur in the dataset.
type UnknownValueError struct {
	Type  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s does not exist: %s", e.Type, e.Value)
}

// serverErrorMessage is the only failure detail exposed to clients.
const serverErrorMessage = "Server error"

// notFoundBody is written for unmatched routes.
const notFoundBody = "Page not found"
