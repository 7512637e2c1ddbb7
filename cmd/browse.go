package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patterns/internal/demo"
	"patterns/internal/tui"
)

func newBrowseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [demo]",
		Short: "Browse and run the demonstrations interactively",
		Long: `Open an interactive list of the pattern demonstrations. Naming a demo
(adapter, bridge or builder) opens straight on its output.

Keys: enter runs the selected demo, r reruns it, y copies its output to the
clipboard, esc returns to the list and q quits.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := lookupDemo(args)
			if err != nil {
				return err
			}
			opts, err := root.demoOptions()
			if err != nil {
				return err
			}
			return tui.Run(opts, root.level, start)
		},
	}
}

// lookupDemo resolves the optional demo argument of browse.
func lookupDemo(args []string) (*demo.Demo, error) {
	if len(args) == 0 {
		return nil, nil
	}
	d, ok := demo.Lookup(strings.ToLower(args[0]))
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (want one of %s)", args[0], strings.Join(demoNames(), ", "))
	}
	return &d, nil
}

func demoNames() []string {
	var names []string
	for _, d := range demo.All() {
		names = append(names, d.Name)
	}
	return names
}
