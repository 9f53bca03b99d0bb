package main

import (
	"github.com/aretw0/spark/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <theme>",
	Short: "Show the resolved tokens of a theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, _, cleanup, err := setup(cmd, cli.Overrides{})
		if err != nil {
			return err
		}
		defer cleanup()
		return cli.Inspect(cmd.Context(), eng, args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
