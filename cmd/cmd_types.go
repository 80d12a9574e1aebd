// Copyright 2026 The Wikivoyage2KML Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var typesFile string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the marker categories and their map presentation",
	RunE: func(_ *cobra.Command, _ []string) error {
		table, err := categoryTable(typesFile)
		if err != nil {
			return err
		}

		a, b, c := strings.Repeat("─", 8), strings.Repeat("─", 8), strings.Repeat("─", 14)
		fmt.Println("Marker categories:")
		fmt.Printf("╭─%-8s─┬─%-8s─┬─%-14s╮\n", a, b, c)
		fmt.Printf("│ %-8s │ %-8s │ %-14s│\n", "Category", "Color", "Icon")
		fmt.Printf("├─%-8s─┼─%-8s─┼─%-14s┤\n", a, b, c)

		for _, key := range slices.Sorted(maps.Keys(table)) {
			cat := table[key]
			fmt.Printf("│ %-8s │ %-8s │ %-14s│\n", key, cat.Color, cat.Icon)
		}

		fmt.Printf("╰─%-8s─┴─%-8s─┴─%-14s╯\n", a, b, c)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().StringVar(&typesFile, "types-file", "", "YAML file overriding the marker category table")
}
