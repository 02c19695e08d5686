package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the registry file loads cleanly",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("registry %s is not valid: %w", cfg.Registry, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ingredients (%d duplicates dropped)\n",
		cfg.Registry, cat.Len(), cat.Dupes())
	return nil
}
