package cmd

import (
	"github.com/spf13/cobra"

	"patterns/internal/demo"
)

func newAdapterCmd(root *rootOptions) *cobra.Command {
	var timeFormat string

	cmd := &cobra.Command{
		Use:   "adapter",
		Short: "Call an adaptee through an adapter",
		Long: `Run the Adapter demonstration.

An Adaptee with an incompatible interface is wrapped by an Adapter that
satisfies the interface the client code expects. The adaptee stamps its
answer with the current time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.demoOptions()
			if err != nil {
				return err
			}
			if timeFormat != "" {
				opts.TimeFormat = timeFormat
			}
			return demo.RunAdapter(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&timeFormat, "time-format", "", "Go reference-time layout for the adaptee timestamp")
	return cmd
}
