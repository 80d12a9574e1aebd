// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package marker

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/jorgemira/wikivoyage2kml/wikitext"
)

// ExtractMetrics tracks statistics about one extraction run.
type ExtractMetrics struct {
	Kept    int // markers in the final output
	Located int // markers whose coordinates came from the geocoder
	Dropped int // named markers discarded for unrecoverable coordinates
}

// Merge combines two ExtractMetrics.
func (m *ExtractMetrics) Merge(o *ExtractMetrics) *ExtractMetrics {
	m.Kept += o.Kept
	m.Located += o.Located
	m.Dropped += o.Dropped

	return m
}

// Extractor turns an article body into the ordered marker list to render.
type Extractor struct {
	// Table classifies markers. Required.
	Table CategoryTable

	// Locator recovers missing coordinates. When nil, markers without
	// valid coordinates are dropped.
	Locator *Locator

	// Progress enables a progress bar when stderr is a terminal.
	Progress bool

	Metrics ExtractMetrics
}

// Extract scans the wikitext body and returns every usable marker in the
// order its source template appears in the article. Markers that already
// carry valid coordinates are kept as-is; the rest go through the locator
// when one is configured and are dropped otherwise. A single marker's
// malformation or failed lookup never aborts the run.
func (e *Extractor) Extract(ctx context.Context, body, destination string) []Marker {
	var markers []Marker

	var bar *progressbar.ProgressBar
	if e.Progress && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Extracting "+destination),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for t := range wikitext.Scan(body) {
		if bar != nil {
			_ = bar.Add(1)
		}

		m := Normalize(t, e.Table)
		if m == nil {
			continue
		}

		switch {
		case ValidCoordinates(m):
			markers = append(markers, m)
			e.Metrics.Kept++
		case e.Locator != nil:
			if located := e.Locator.Locate(ctx, m, destination); located != nil {
				markers = append(markers, located)
				e.Metrics.Kept++
				e.Metrics.Located++
			} else {
				e.Metrics.Dropped++
			}
		default:
			e.Metrics.Dropped++
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return markers
}
