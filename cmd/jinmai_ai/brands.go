package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/observability"
	"github.com/jonathan/jinmai-creation/internal/types"
)

func newBrandsCmd() *cobra.Command {
	var (
		category   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List the heritage brands in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			brands := make([]types.Brand, 0, len(cat.Brands()))
			for _, b := range cat.Brands() {
				if category == "" || b.Category == category {
					brands = append(brands, b)
				}
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), brands)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintBrands(brands)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list brands in this category (e.g. 传统艺术)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print brands as JSON")
	return cmd
}
