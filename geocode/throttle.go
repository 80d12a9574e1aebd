// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Throttled serializes calls to an underlying geocoder and enforces a
// minimum interval between consecutive calls. The gate is shared by every
// caller, so the interval holds process-wide no matter how many markers
// need lookups.
type Throttled struct {
	geocoder    Geocoder
	limiter     *rate.Limiter
	errCooldown time.Duration
}

// NewThrottled wraps a geocoder with a courtesy gate of at most one call
// per minInterval. The first call goes out immediately; every later one
// waits until the interval since the previous call has passed.
// errCooldown, when positive, adds an extra pause after a service error
// before the error is reported, giving the service a rest.
func NewThrottled(g Geocoder, minInterval, errCooldown time.Duration) *Throttled {
	return &Throttled{
		geocoder:    g,
		limiter:     rate.NewLimiter(rate.Every(minInterval), 1),
		errCooldown: errCooldown,
	}
}

// Geocode waits for the courtesy gate and delegates to the wrapped
// geocoder.
func (t *Throttled) Geocode(ctx context.Context, street, city string) (*Result, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := t.geocoder.Geocode(ctx, street, city)

	// ErrNoMatch is a well-behaved answer, not a service failure.
	if err != nil && !errors.Is(err, ErrNoMatch) && t.errCooldown > 0 {
		timer := time.NewTimer(t.errCooldown)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	return res, err
}
