// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidType is returned for catalog types other than genre and platform.
var ErrInvalidType = errors.New("invalid type")

// CatalogType is a browsable game attribute.
type CatalogType string

// Catalog types.
const (
	CatalogGenre    CatalogType = "genre"
	CatalogPlatform CatalogType = "platform"
)

// ParseCatalogType accepts exactly "genre" or "platform".
func ParseCatalogType(s string) (CatalogType, error) {
	t := CatalogType(s)
	if _, err := t.Column(); err != nil {
		return "", err
	}
	return t, nil
}

// Column returns the game_sales column backing this type.
func (t CatalogType) Column() (string, error) {
	switch t {
	case CatalogGenre:
		return "genre", nil
	case CatalogPlatform:
		return "platform", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidType, string(t))
	}
}
