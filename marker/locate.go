// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package marker

import (
	"context"
	"errors"
	"log"

	"github.com/jorgemira/wikivoyage2kml/geocode"
)

// Locator recovers coordinates for markers whose source template carried
// none, querying a geocoder with the marker's address and the destination
// city as a hint.
type Locator struct {
	geocoder geocode.Geocoder
}

// NewLocator creates a Locator on top of a geocoder. Callers are expected
// to hand in a throttled geocoder so lookups respect the service's usage
// policy.
func NewLocator(g geocode.Geocoder) *Locator {
	return &Locator{geocoder: g}
}

// Locate tries to attach coordinates to a marker that failed validation.
// On success it returns a new marker carrying the found coordinates and
// the added_location flag; the original is never mutated. It returns nil
// when the marker has no address to try, the service failed or knew no
// match, or the match was out of range. Each outcome is logged as it
// happens and none of them is fatal: the caller moves on to the next
// marker.
func (l *Locator) Locate(ctx context.Context, m Marker, destination string) Marker {
	address := m["address"]
	if address == "" {
		log.Printf("Marker for %q not added because address is missing", m.Name())

		return nil
	}

	res, err := l.geocoder.Geocode(ctx, address, destination)

	switch {
	case errors.Is(err, geocode.ErrNoMatch):
		log.Printf("Marker for %q could not be found by the geocoder", m.Name())

		return nil
	case err != nil:
		log.Printf("Marker for %q not added, could not complete lookup: %s", m.Name(), err)

		return nil
	}

	located := m.WithLocation(res.Lat, res.Long)
	if !ValidCoordinates(located) {
		log.Printf(
			"Marker for %q not added, geocoder returned out-of-range coordinates (%v, %v)",
			m.Name(),
			res.Long,
			res.Lat,
		)

		return nil
	}

	log.Printf("Marker for %q added using automatic location", m.Name())

	return located
}
