// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/jorgemira/wikivoyage2kml/utils/httputils"
)

// DefaultNominatimURL is the search endpoint of the public Nominatim
// instance.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// NominatimOptions configures a Nominatim client.
type NominatimOptions struct {
	// BaseURL overrides the search endpoint, e.g. for a self-hosted
	// instance or a test server.
	BaseURL string

	// UserAgent identifies the application, as the Nominatim usage policy
	// requires.
	UserAgent string

	// Enables light tracing of HTTP requests and responses.
	EnableHTTPTrace bool

	// Enables full HTTP body tracing.
	EnableHTTPBodyTrace bool
}

// Nominatim queries the OpenStreetMap Nominatim API. The public instance
// allows at most one request per second; wrap the client with NewThrottled
// to stay within that policy.
type Nominatim struct {
	baseURL string
	client  *http.Client
}

// NewNominatim creates a Nominatim geocoder.
func NewNominatim(opts NominatimOptions) *Nominatim {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "wikivoyage2kml/unknown"
	}

	var traceWriter io.Writer
	if opts.EnableHTTPTrace {
		traceWriter = os.Stderr
	}

	return &Nominatim{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &httputils.AppendRequestHeadersRoundTripper{
				Headers: map[string]string{
					"User-Agent": userAgent,
					"Accept":     "application/json",
				},
				Transport: &httputils.LoggingRoundTripper{
					Writer:    traceWriter,
					DumpBody:  opts.EnableHTTPBodyTrace,
					Transport: http.DefaultTransport,
				},
			},
		},
	}
}

// One entry of a Nominatim search response. The API serializes coordinates
// as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode issues one structured search and returns the best match, or
// ErrNoMatch when the service knows no such place.
func (n *Nominatim) Geocode(ctx context.Context, street, city string) (*Result, error) {
	params := url.Values{}
	params.Set("street", street)
	params.Set("city", city)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building geocoding request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(places) == 0 {
		return nil, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude %q: %w", places[0].Lat, err)
	}

	long, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude %q: %w", places[0].Lon, err)
	}

	return &Result{Lat: lat, Long: long}, nil
}
