// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jorgemira/wikivoyage2kml/kml"
	"github.com/jorgemira/wikivoyage2kml/marker"
	"github.com/jorgemira/wikivoyage2kml/wikivoyage"
)

type serveOptions struct {
	addr string
}

var serveOpts = &serveOptions{}

// markerView is the JSON shape the preview API exposes per marker.
type markerView struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Lat           float64 `json:"lat"`
	Long          float64 `json:"long"`
	Color         string  `json:"color"`
	Icon          string  `json:"icon"`
	AddedLocation bool    `json:"added_location,omitempty"`
	Address       string  `json:"address,omitempty"`
	Content       string  `json:"content,omitempty"`
}

func viewOf(m marker.Marker, table marker.CategoryTable) markerView {
	// Extraction only keeps markers that passed coordinate validation, so
	// these parses cannot fail.
	lat, _ := strconv.ParseFloat(m["lat"], 64)
	long, _ := strconv.ParseFloat(m["long"], 64)

	cat := table.Lookup(m.Type())

	return markerView{
		Name:          m.Name(),
		Type:          m.Type(),
		Lat:           lat,
		Long:          long,
		Color:         cat.Color,
		Icon:          cat.Icon,
		AddedLocation: m["added_location"] != "",
		Address:       m["address"],
		Content:       m["content"],
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve <destination>",
	Short: "Builds a destination's markers and serves them for preview",
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

		views := make([]markerView, 0, len(markers))
		for _, m := range markers {
			views = append(views, viewOf(m, table))
		}

		log.Printf("%d markers ready for %s, serving on %s", len(markers), destination, serveOpts.addr)

		r := gin.Default()

		r.GET("/api/markers", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"destination": destination,
				"markers":     views,
			})
		})

		r.GET("/document.kml", func(ctx *gin.Context) {
			ctx.Header("Content-Disposition",
				fmt.Sprintf("attachment; filename=%q", kml.Filename(destination, buildOpts.language)+".kml"))
			ctx.Data(http.StatusOK, "application/vnd.google-earth.kml+xml", []byte(document))
		})

		return r.Run(serveOpts.addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "localhost:8080", "Address to listen on")
	serveCmd.Flags().StringVarP(&buildOpts.language, "language", "l", "en", "Language of the Wikivoyage article")
	serveCmd.Flags().BoolVarP(&buildOpts.addLocations, "add", "a", false, "Add missing locations using the Nominatim geocoder")
}
