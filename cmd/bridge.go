package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"patterns/internal/bridge"
	"patterns/internal/demo"
	"patterns/pkg/logging"
)

func newBridgeCmd(root *rootOptions) *cobra.Command {
	var kind, transport string

	cmd := &cobra.Command{
		Use:   "bridge [content...]",
		Short: "Send messages through interchangeable transports",
		Long: `Run the Bridge demonstration.

Without arguments a user message is sent by email and a system alert by SMS.
With content, a single message is sent using --kind and --transport.`,
		Example: `  patterns bridge
  patterns bridge --kind alert --transport email "Disk almost full"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selecting := cmd.Flags().Changed("kind") || cmd.Flags().Changed("transport")
			if len(args) == 0 && !selecting {
				opts, err := root.demoOptions()
				if err != nil {
					return err
				}
				return demo.RunBridge(cmd.OutOrStdout(), opts)
			}
			if len(args) == 0 {
				return errors.New("content is required when --kind or --transport is set")
			}

			k, err := bridge.ParseKind(kind)
			if err != nil {
				return err
			}
			t, err := bridge.ParseTransport(transport)
			if err != nil {
				return err
			}
			sender, err := bridge.NewSender(t, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			msg, err := bridge.NewMessage(k, sender)
			if err != nil {
				return err
			}
			logging.Debug("bridge", "Sending %s message over %s", k, t)
			return msg.Send(strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(bridge.KindUser), "Message kind (user, alert)")
	cmd.Flags().StringVar(&transport, "transport", string(bridge.TransportEmail), "Delivery transport (email, sms)")
	return cmd
}
