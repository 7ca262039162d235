package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obrasload",
	Short: "Batch loader for obrasgov investment-project data",
	Long: `obrasload writes prepared obrasgov.br datasets into the relational
schema, keeping referential integrity across the category hierarchy
(eixo -> tipo -> subtipo), the three institution roles and the funding
sources.

Datasets are JSON files produced by the extraction/cleaning step, one file
per destination table. Tables load in dependency order; a constraint
violation aborts the offending table (that table only) and reports the row
and constraint.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
