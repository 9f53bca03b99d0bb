package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/internal/cli"
	"github.com/aretw0/spark/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spark",
	Run: func(cmd *cobra.Command, args []string) {
		if cli.IsTerminal(cmd.OutOrStdout()) {
			tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(spark.Version))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "spark version %s\n", strings.TrimSpace(spark.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
