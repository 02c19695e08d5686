package cmd

import (
	"github.com/spf13/cobra"

	"alembic/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-emit the loaded catalog in registry format",
	Long: `Export prints the deduplicated, sorted catalog as registry-format
blocks suitable for piping to a file and loading on a later run.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	format.Export = true

	render.New(format).Ingredients(cmd.OutOrStdout(), cat.All(), 0)
	return nil
}
