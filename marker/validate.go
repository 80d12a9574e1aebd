// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package marker

import (
	"math"
	"strconv"
)

// ValidCoordinates reports whether the marker carries a usable WGS84
// coordinate pair: both long and lat present, both finite decimal numbers,
// absolute longitude at most 180 and absolute latitude at most 90. A
// missing field, a non-numeric value or an out-of-range value all yield
// false.
func ValidCoordinates(m Marker) bool {
	long, err := strconv.ParseFloat(m["long"], 64)
	if err != nil {
		return false
	}

	lat, err := strconv.ParseFloat(m["lat"], 64)
	if err != nil {
		return false
	}

	// ParseFloat accepts spellings like "NaN" and "Inf".
	if math.IsNaN(long) || math.IsInf(long, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return false
	}

	return math.Abs(long) <= 180 && math.Abs(lat) <= 90
}
