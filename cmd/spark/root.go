package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/internal/cli"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spark",
	Short: "Spark composes design tokens into CSS custom properties",
	Long: `Spark reads theme documents (YAML or JSON), resolves their extends chains
into layered token sets, and renders them as CSS custom properties.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the theme documents (default from config: themes)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default spark.yaml)")
	rootCmd.PersistentFlags().String("prefix", "", "Custom property prefix (default from config: spark)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadOptions reads the config file and applies the persistent flags.
func loadOptions(cmd *cobra.Command, extra cli.Overrides) (cli.Options, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	extra.Dir, _ = flags.GetString("dir")
	extra.Prefix, _ = flags.GetString("prefix")
	extra.PrefixSet = flags.Changed("prefix")
	return cli.LoadOptions(path, debug, extra)
}

// setup loads options and builds the logger and engine for a command.
// The returned cleanup must be called when the command finishes.
func setup(cmd *cobra.Command, extra cli.Overrides, hooks ...domain.Hooks) (*spark.Engine, *slog.Logger, cli.Options, func(), error) {
	opts, err := loadOptions(cmd, extra)
	if err != nil {
		return nil, nil, opts, nil, err
	}
	logger := cli.CreateLogger(opts)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	eng, closer, err := cli.CreateEngine(ctx, opts, logger, hooks...)
	if err != nil {
		return nil, nil, opts, nil, err
	}
	return eng, logger, opts, func() { closeQuietly(closer, logger) }, nil
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("close failed", "error", err)
	}
}
