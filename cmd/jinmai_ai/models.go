package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/observability"
)

func newModelsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the available AI model descriptors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), cat.Models())
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintModels(cat.Models())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print models as JSON")
	return cmd
}
