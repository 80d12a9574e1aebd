// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package kml

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

// Filename returns the output base name for a destination and language,
// without extension.
func Filename(destination, language string) string {
	return fmt.Sprintf("%s (%s) - Wikivoyage2KML", destination, language)
}

// Save writes the document into dir as a .kml file, or as a single-entry
// .kmz archive when kmz is set. It returns the path written.
func Save(document, dir, destination, language string, kmz bool) (string, error) {
	base := Filename(destination, language)

	if !kmz {
		path := filepath.Join(dir, base+".kml")
		if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
			return "", fmt.Errorf("writing %q: %w", path, err)
		}

		return path, nil
	}

	path := filepath.Join(dir, base+".kmz")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}

	zw := zip.NewWriter(f)

	w, err := zw.Create(base + ".kml")
	if err == nil {
		_, err = w.Write([]byte(document))
	}

	if cerr := zw.Close(); err == nil {
		err = cerr
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}

	return path, nil
}
