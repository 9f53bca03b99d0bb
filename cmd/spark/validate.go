package main

import (
	"github.com/aretw0/spark/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check themes for consistency",
	Long:  `Resolves every theme and reports missing parents, cyclic extends, unsafe token values and stylesheets that do not parse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, _, cleanup, err := setup(cmd, cli.Overrides{})
		if err != nil {
			return err
		}
		defer cleanup()
		return cli.ValidateReport(cmd.Context(), eng, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
