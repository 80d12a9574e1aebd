// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/jorgemira/wikivoyage2kml/geocode"
	"github.com/jorgemira/wikivoyage2kml/kml"
	"github.com/jorgemira/wikivoyage2kml/marker"
	"github.com/jorgemira/wikivoyage2kml/wikivoyage"
)

type buildOptions struct {
	language      string
	kmz           bool
	addLocations  bool
	output        string
	userAgent     string
	typesFile     string
	geocoderURL   string
	errorCooldown time.Duration
	traceHTTP     bool
	traceHTTPBody bool
}

var buildOpts = &buildOptions{}

// categoryTable resolves the table to use, honoring the override file.
func categoryTable(path string) (marker.CategoryTable, error) {
	if path == "" {
		return marker.DefaultCategories(), nil
	}

	return marker.LoadCategoryTable(path)
}

func defaultUserAgent(override string) string {
	if override != "" {
		return override
	}

	return fmt.Sprintf("wikivoyage2kml/%s (+https://github.com/jorgemira/wikivoyage2kml)", Version)
}

// newExtractor wires the extraction pipeline for one run.
func newExtractor(opts *buildOptions, table marker.CategoryTable, userAgent string) *marker.Extractor {
	extractor := &marker.Extractor{Table: table, Progress: true}

	if opts.addLocations {
		geocoder := geocode.NewThrottled(
			geocode.NewNominatim(geocode.NominatimOptions{
				BaseURL:             opts.geocoderURL,
				UserAgent:           userAgent,
				EnableHTTPTrace:     opts.traceHTTP,
				EnableHTTPBodyTrace: opts.traceHTTPBody,
			}),
			time.Second,
			opts.errorCooldown,
		)
		extractor.Locator = marker.NewLocator(geocoder)
	}

	return extractor
}

var buildCmd = &cobra.Command{
	Use:   "build <destination>",
	Short: "Builds the map file for a destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		destination := args[0]

		table, err := categoryTable(buildOpts.typesFile)
		if err != nil {
			return err
		}

		userAgent := defaultUserAgent(buildOpts.userAgent)

		wiki := wikivoyage.NewClient(&wikivoyage.ClientOptions{
			Language:            buildOpts.language,
			UserAgent:           userAgent,
			EnableHTTPTrace:     buildOpts.traceHTTP,
			EnableHTTPBodyTrace: buildOpts.traceHTTPBody,
		})

		body, err := wiki.Article(cmd.Context(), destination)
		if err != nil {
			return fmt.Errorf("getting page %q from %s.wikivoyage.org: %w", destination, buildOpts.language, err)
		}

		extractor := newExtractor(buildOpts, table, userAgent)
		markers := extractor.Extract(cmd.Context(), body, destination)

		document, err := kml.Document(destination, markers, table)
		if err != nil {
			return err
		}

		path, err := kml.Save(document, buildOpts.output, destination, buildOpts.language, buildOpts.kmz)
		if err != nil {
			return err
		}

		log.Printf(
			"%d markers added for destination %s (%d located, %d dropped), written to %s",
			extractor.Metrics.Kept,
			destination,
			extractor.Metrics.Located,
			extractor.Metrics.Dropped,
			path,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOpts.language, "language", "l", "en", "Language of the Wikivoyage article")
	buildCmd.Flags().BoolVarP(&buildOpts.kmz, "kmz", "z", false, "Save output in KMZ format")
	buildCmd.Flags().BoolVarP(&buildOpts.addLocations, "add", "a", false, "Add missing locations using the Nominatim geocoder")
	buildCmd.Flags().StringVarP(&buildOpts.output, "output", "o", ".", "Directory to write the output file to")
	buildCmd.Flags().StringVar(&buildOpts.userAgent, "user-agent", "", "Override the User-Agent header for API requests")
	buildCmd.Flags().StringVar(&buildOpts.typesFile, "types-file", "", "YAML file overriding the marker category table")
	buildCmd.Flags().StringVar(&buildOpts.geocoderURL, "geocoder-url", "", "Override the Nominatim search endpoint")
	buildCmd.Flags().DurationVar(&buildOpts.errorCooldown, "error-cooldown", 0, "Extra pause after a geocoder service error")
	buildCmd.Flags().BoolVar(&buildOpts.traceHTTP, "trace-http", false, "Display HTTP requests-responses")
	buildCmd.Flags().BoolVar(&buildOpts.traceHTTPBody, "trace-http-body", false, "Display HTTP requests-responses bodies")
}
