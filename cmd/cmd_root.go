// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "wikivoyage2kml",
	Short: "KML/KMZ maps for maps.me from Wikivoyage articles",
	Long: `
wikivoyage2kml turns the point-of-interest listings of a Wikivoyage travel
article into a KML or KMZ file that map applications such as maps.me can
open, optionally filling in missing coordinates through the Nominatim
geocoding service.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
