package main

import (
	"github.com/aretw0/spark/internal/cli"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Compare the resolved tokens of two themes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, _, cleanup, err := setup(cmd, cli.Overrides{})
		if err != nil {
			return err
		}
		defer cleanup()
		_, err = cli.Diff(cmd.Context(), eng, args[0], args[1], cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
