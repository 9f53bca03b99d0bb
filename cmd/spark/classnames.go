package main

import (
	"fmt"

	"github.com/aretw0/spark/internal/cli"
	"github.com/aretw0/spark/pkg/classnames"
	"github.com/spf13/cobra"
)

var classnamesCmd = &cobra.Command{
	Use:   "classnames <item>...",
	Short: "Compose a class attribute",
	Long: `Joins class names. Plain arguments are always included; name=bool arguments
are included only when true.

  spark classnames btn primary=true disabled=false   # btn primary`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), classnames.Join(cli.ParseItems(args)...))
	},
}

func init() {
	rootCmd.AddCommand(classnamesCmd)
}
