// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package marker

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorgemira/wikivoyage2kml/geocode"
)

const articleBody = `
Welcome to the old town. {{pagebanner|Old Town Banner.jpg}}
{{see | name=Old Town | long=14.4 | lat=50.08}}
Some prose in between.
{{marker | name=Hidden Cafe | type=eat | address=Main St 1}}
`

func TestExtractWithFallbackEnabled(t *testing.T) {
	stub := &stubGeocoder{result: &geocode.Result{Lat: 50.09, Long: 14.41}}

	e := &Extractor{
		Table:   DefaultCategories(),
		Locator: NewLocator(stub),
	}

	got := e.Extract(context.Background(), articleBody, "Prague")

	want := []Marker{
		{"name": "Old Town", "type": "see", "long": "14.4", "lat": "50.08"},
		{
			"name":           "Hidden Cafe",
			"type":           "eat",
			"address":        "Main St 1",
			"long":           "14.41",
			"lat":            "50.09",
			"added_location": "yes",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}

	wantMetrics := ExtractMetrics{Kept: 2, Located: 1, Dropped: 0}
	if diff := cmp.Diff(wantMetrics, e.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWithFallbackDisabled(t *testing.T) {
	e := &Extractor{Table: DefaultCategories()}

	got := e.Extract(context.Background(), articleBody, "Prague")

	want := []Marker{
		{"name": "Old Town", "type": "see", "long": "14.4", "lat": "50.08"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}

	wantMetrics := ExtractMetrics{Kept: 1, Located: 0, Dropped: 1}
	if diff := cmp.Diff(wantMetrics, e.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFallbackDisabledNeverCallsGeocoder(t *testing.T) {
	// A nil locator is the disabled state; the geocoder must stay silent
	// even for markers that would qualify for a lookup.
	e := &Extractor{Table: DefaultCategories()}

	body := "{{marker | name=Hidden Cafe | type=eat | address=Main St 1}}"
	if got := e.Extract(context.Background(), body, "Prague"); len(got) != 0 {
		t.Fatalf("Extract() = %v, want no markers", got)
	}
}

func TestExtractKeepsDocumentOrder(t *testing.T) {
	body := `
{{sleep|name=Hotel B|long=2|lat=2}}
{{eat|name=Cafe A|long=1|lat=1}}
{{see|name=Sight C|long=3|lat=3}}
`

	e := &Extractor{Table: DefaultCategories()}
	got := e.Extract(context.Background(), body, "Anywhere")

	var names []string
	for _, m := range got {
		names = append(names, m.Name())
	}

	if diff := cmp.Diff([]string{"Hotel B", "Cafe A", "Sight C"}, names); diff != "" {
		t.Fatalf("marker order mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSurvivesFailedLookups(t *testing.T) {
	// The first marker fails its lookup; the next one must still be
	// processed.
	stub := &stubGeocoder{err: geocode.ErrNoMatch}

	e := &Extractor{
		Table:   DefaultCategories(),
		Locator: NewLocator(stub),
	}

	body := `
{{eat|name=No Such Place|address=Nowhere 1}}
{{see|name=Old Town|long=14.4|lat=50.08}}
`

	got := e.Extract(context.Background(), body, "Prague")

	want := []Marker{
		{"name": "Old Town", "type": "see", "long": "14.4", "lat": "50.08"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}

	if stub.calls != 1 {
		t.Fatalf("geocoder was called %d times, want 1", stub.calls)
	}
}

func TestExtractDropsInvalidGeocoderAnswers(t *testing.T) {
	stub := &stubGeocoder{result: &geocode.Result{Lat: 50.09, Long: 200}}

	e := &Extractor{
		Table:   DefaultCategories(),
		Locator: NewLocator(stub),
	}

	body := "{{eat|name=Broken|address=Main St 1}}"
	if got := e.Extract(context.Background(), body, "Prague"); len(got) != 0 {
		t.Fatalf("Extract() = %v, want no markers", got)
	}

	wantMetrics := ExtractMetrics{Kept: 0, Located: 0, Dropped: 1}
	if diff := cmp.Diff(wantMetrics, e.Metrics); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
}
