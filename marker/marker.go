// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

// Package marker extracts point-of-interest markers from Wikivoyage
// article wikitext.
package marker

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Marker is one point of interest extracted from an article, destined to
// become one placemark on the map. Keys are the template field names that
// survived normalization; "name" and "type" are always present and values
// are HTML-escaped exactly once.
type Marker map[string]string

// Name returns the display name of the marker.
func (m Marker) Name() string { return m["name"] }

// Type returns the resolved category key.
func (m Marker) Type() string { return m["type"] }

// WithLocation returns a copy of the marker carrying the given coordinates
// plus the added_location flag recording that they were derived by a
// geocoder rather than authored in the article. The receiver is left
// untouched.
func (m Marker) WithLocation(lat, long float64) Marker {
	out := make(Marker, len(m)+3)
	for k, v := range m {
		out[k] = v
	}

	out["lat"] = strconv.FormatFloat(lat, 'f', -1, 64)
	out["long"] = strconv.FormatFloat(long, 'f', -1, 64)
	out["added_location"] = "yes"

	return out
}

// Category describes how markers of one category are presented on the map.
type Category struct {
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// CategoryTable maps category keys to their presentation. It is read-only
// for the lifetime of the process.
type CategoryTable map[string]Category

// DefaultCategory is the key every unknown category resolves to.
const DefaultCategory = "default"

// DefaultCategories returns the built-in category table, with the colors
// and icons maps.me understands.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		"do":            {Color: "teal", Icon: "Entertainment"},
		"go":            {Color: "brown", Icon: "Transport"},
		"buy":           {Color: "pink", Icon: "Shop"},
		"eat":           {Color: "red", Icon: "Food"},
		"see":           {Color: "green", Icon: "Sights"},
		"drink":         {Color: "yellow", Icon: "Bar"},
		"sleep":         {Color: "blue", Icon: "Hotel"},
		DefaultCategory: {Color: "gray", Icon: "None"},
	}
}

// Lookup returns the presentation for a category key, falling back to the
// default entry for unknown keys.
func (t CategoryTable) Lookup(key string) Category {
	if c, ok := t[key]; ok {
		return c
	}

	return t[DefaultCategory]
}

// LoadCategoryTable reads a category table override from a YAML file
// mapping category keys to color and icon. The table must carry a default
// entry, since every unknown category resolves to it.
func LoadCategoryTable(path string) (CategoryTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}

	var t CategoryTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing category table %q: %w", path, err)
	}

	if _, ok := t[DefaultCategory]; !ok {
		return nil, fmt.Errorf("category table %q has no %q entry", path, DefaultCategory)
	}

	return t, nil
}
