// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

// Package geocode resolves human-readable addresses into coordinates.
package geocode

import (
	"context"
	"errors"
)

// Result is a geocoding match.
type Result struct {
	Lat  float64
	Long float64
}

// ErrNoMatch is returned when the service answered but knows no place
// matching the query. Every other error means the lookup itself failed.
var ErrNoMatch = errors.New("no match found")

// Geocoder resolves a street address within a city into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, street, city string) (*Result, error)
}
