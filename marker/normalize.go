// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package marker

import (
	"html"
	"strings"

	"github.com/jorgemira/wikivoyage2kml/utils/textutils"
	"github.com/jorgemira/wikivoyage2kml/wikitext"
)

// Generic wrapper templates whose category comes from their type field
// instead of the template name.
var genericNames = map[string]bool{
	"marker":  true,
	"listing": true,
}

// Normalize converts one scanned template invocation into a Marker: keys
// and values are trimmed, fields left empty are dropped, and every
// retained value is HTML-escaped so free-text fields cannot corrupt the
// rendered document. The resolved category always lands in the marker's
// type field, forced to the default entry when it is not in the table.
//
// Invocations without a usable name field produce no marker; malformed
// ones degrade to a default-typed marker rather than failing.
func Normalize(t wikitext.Template, table CategoryTable) Marker {
	m := make(Marker, len(t.Fields)+1)

	for _, f := range t.Fields {
		key := strings.TrimSpace(f.Key)
		value := strings.TrimSpace(f.Value)

		if key == "" || value == "" {
			continue
		}

		m[key] = html.EscapeString(value)
	}

	category := textutils.LowerASCIIFolding(t.Name)
	if genericNames[category] {
		category = m["type"]
		if category == "" {
			category = DefaultCategory
		}
	}

	if _, ok := table[category]; !ok {
		category = DefaultCategory
	}

	m["type"] = category

	if m["name"] == "" {
		return nil
	}

	return m
}
