package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/spark/internal/cli"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render themes to a stylesheet",
	Long: `Renders the custom properties of every theme (or of one theme with --theme).
The stylesheet is written atomically to --out, or to stdout when --out is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, logger, opts, cleanup, err := setup(cmd, cli.Overrides{})
		if err != nil {
			return err
		}
		defer cleanup()

		theme, _ := cmd.Flags().GetString("theme")
		out, _ := cmd.Flags().GetString("out")
		if !cmd.Flags().Changed("out") {
			out = opts.Config.Out
		}
		watch, _ := cmd.Flags().GetBool("watch")

		if !watch {
			return cli.Build(cmd.Context(), eng, theme, out, cmd.OutOrStdout())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.WatchBuild(ctx, eng, theme, out, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("theme", "t", "", "Render a single theme")
	buildCmd.Flags().StringP("out", "o", "", `Output file, "-" for stdout (default from config: dist/tokens.css)`)
	buildCmd.Flags().BoolP("watch", "w", false, "Rebuild when theme documents change")
}
