package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"patterns/internal/config"
	"patterns/internal/demo"
	"patterns/internal/render"
	"patterns/pkg/logging"
)

// For mocking in tests
var loadConfig = config.LoadConfig

// rootOptions carries global flags and the loaded configuration to subcommands.
type rootOptions struct {
	debug  bool
	output string

	cfg   config.PatternsConfig
	level logging.LogLevel
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run small demonstrations of classic design patterns",
		Long: `patterns demonstrates the Adapter, Bridge and Builder design patterns.

Each subcommand runs its pattern's classic demonstration, or performs a
single operation when selection flags are given. The same operations are
available interactively ('patterns browse') and as MCP tools ('patterns mcp').`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unknown variants)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format (text, yaml, styled); defaults to the configured format")

	cmd.AddCommand(newAdapterCmd(opts))
	cmd.AddCommand(newBridgeCmd(opts))
	cmd.AddCommand(newBuilderCmd(opts))
	cmd.AddCommand(newBrowseCmd(opts))
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// complete loads configuration, applies flag overrides and sets up logging.
func (o *rootOptions) complete(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		if dir, dirErr := config.GetUserConfigDir(); dirErr == nil {
			return fmt.Errorf("loading configuration (user config in %s): %w", dir, err)
		}
		return fmt.Errorf("loading configuration: %w", err)
	}
	if o.output != "" {
		if _, err := render.ParseFormat(o.output); err != nil {
			return err
		}
		cfg.GlobalSettings.Output = o.output
	}
	if o.debug {
		cfg.GlobalSettings.LogLevel = "debug"
	}

	level, err := logging.ParseLevel(cfg.GlobalSettings.LogLevel)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	logging.Debug("cli", "Running %q with output %s", cmd.CommandPath(), cfg.GlobalSettings.Output)

	o.cfg = cfg
	o.level = level
	return nil
}

func (o *rootOptions) demoOptions() (demo.Options, error) {
	return demo.OptionsFromConfig(o.cfg)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "patterns version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
