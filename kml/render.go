// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

// Package kml renders markers into a KML map document.
package kml

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jorgemira/wikivoyage2kml/marker"
)

//go:embed templates/*.kml
var templatesFS embed.FS

var (
	placemarkTpl = template.Must(template.ParseFS(templatesFS, "templates/placemark.kml"))
	documentTpl  = template.Must(template.ParseFS(templatesFS, "templates/document.kml"))
)

func a(href, text string) string {
	return fmt.Sprintf("<a href='%s'>%s</a>", href, text)
}

func b(text string) string {
	return "<b>" + text + "</b>"
}

type placemarkData struct {
	Name        string
	Description string
	Color       string
	Icon        string
	Coordinates string
}

type documentData struct {
	Name       string
	Placemarks string
}

// Placemark renders one marker as a KML placemark. The description is
// assembled from whichever optional fields are present; field values were
// HTML-escaped at normalization time and are not escaped again here.
func Placemark(m marker.Marker, table marker.CategoryTable) (string, error) {
	var lines []string

	if m["added_location"] != "" {
		lines = append(lines, b("WARNING: ")+"Location has been added automatically, marker may not be correct")
	}

	if v := m["url"]; v != "" {
		lines = append(lines, b("URL: ")+a(v, v))
	}

	if v := m["phone"]; v != "" {
		lines = append(lines, b("Phone number: ")+a("tel:"+v, v))
	}

	if v := m["email"]; v != "" {
		lines = append(lines, b("Email: ")+a("mailto:"+v, v))
	}

	if v := m["address"]; v != "" {
		lines = append(lines, b("Address: ")+v)
	}

	if v := m["directions"]; v != "" {
		lines = append(lines, b("Directions: ")+v)
	}

	if v := m["hours"]; v != "" {
		lines = append(lines, b("Opening hours: ")+v)
	}

	if v := m["content"]; v != "" {
		lines = append(lines, b("Place description:"), v)
	}

	cat := table.Lookup(m.Type())

	var sb strings.Builder

	err := placemarkTpl.Execute(&sb, placemarkData{
		Name:        m.Name(),
		Description: strings.Join(lines, "<br/>"),
		Color:       cat.Color,
		Icon:        cat.Icon,
		Coordinates: m["long"] + ", " + m["lat"],
	})
	if err != nil {
		return "", fmt.Errorf("rendering placemark %q: %w", m.Name(), err)
	}

	return sb.String(), nil
}

// Document renders every marker and wraps the result in a KML document
// named after the destination.
func Document(destination string, markers []marker.Marker, table marker.CategoryTable) (string, error) {
	rendered := make([]string, 0, len(markers))

	for _, m := range markers {
		p, err := Placemark(m, table)
		if err != nil {
			return "", err
		}

		rendered = append(rendered, p)
	}

	var sb strings.Builder

	err := documentTpl.Execute(&sb, documentData{
		Name:       destination,
		Placemarks: strings.Join(rendered, "\n"),
	})
	if err != nil {
		return "", fmt.Errorf("rendering document for %q: %w", destination, err)
	}

	return sb.String(), nil
}
