// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jorgemira/wikivoyage2kml/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
