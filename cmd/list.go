package cmd

import (
	"github.com/spf13/cobra"

	"alembic/internal/render"
)

var listExport bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every ingredient in the catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listExport, "export", "E", false,
		"emit the re-parsable registry format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	format.Export = listExport

	r := render.New(format)
	r.Ingredients(cmd.OutOrStdout(), cat.All(), 1)
	return nil
}
