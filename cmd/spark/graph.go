package main

import (
	"fmt"

	"github.com/aretw0/spark/internal/cli"
	"github.com/aretw0/spark/internal/presentation/graph"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [theme]",
	Short: "Export the theme inheritance graph",
	Long:  `Outputs a Mermaid diagram of which themes extend which. Themes that fail to resolve are highlighted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, _, cleanup, err := setup(cmd, cli.Overrides{})
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		names, err := eng.Themes(ctx)
		if err != nil {
			return err
		}

		overlay := &graph.Overlay{}
		if len(args) > 0 {
			overlay.Selected = args[0]
		}
		themes := make([]*domain.Theme, 0, len(names))
		for _, name := range names {
			theme, err := eng.Theme(ctx, name)
			if err != nil {
				return err
			}
			themes = append(themes, theme)
			if _, err := eng.Chain(ctx, name); err != nil {
				overlay.Broken = append(overlay.Broken, name)
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(themes, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
