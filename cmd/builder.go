package cmd

import (
	"github.com/spf13/cobra"

	"patterns/internal/builder"
	"patterns/internal/demo"
	"patterns/internal/render"
	"patterns/pkg/logging"
)

func newBuilderCmd(root *rootOptions) *cobra.Command {
	var variant, plan, steps string

	cmd := &cobra.Command{
		Use:   "builder",
		Short: "Assemble houses step by step",
		Long: `Run the Builder demonstration.

Without flags a minimal igloo and a full stone house are built by a director,
followed by a stone house built directly with only two steps. With --variant,
--plan or --steps a single house is built: --steps drives the builder
directly in the given order, otherwise the director runs --plan.`,
		Example: `  patterns builder
  patterns builder --variant igloo --plan minimal
  patterns builder --variant stone --steps basement,roof -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.demoOptions()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("variant") && !flags.Changed("plan") && !flags.Changed("steps") {
				return demo.RunBuilder(cmd.OutOrStdout(), opts)
			}

			v, err := builder.ParseVariant(variant)
			if err != nil {
				return err
			}
			b, err := builder.New(v)
			if err != nil {
				return err
			}

			if flags.Changed("steps") {
				parsed, err := builder.ParseSteps(steps)
				if err != nil {
					return err
				}
				logging.Debug("builder", "Building %s directly with steps %v", v, parsed)
				if err := builder.Apply(b, parsed...); err != nil {
					return err
				}
			} else {
				p, err := builder.ParsePlan(plan)
				if err != nil {
					return err
				}
				director := builder.NewDirector()
				if err := director.SetBuilder(b); err != nil {
					return err
				}
				logging.Debug("builder", "Director building %s house with %s plan", v, p)
				if err := director.Build(p); err != nil {
					return err
				}
			}
			return render.House(cmd.OutOrStdout(), opts.Format, "", b.House())
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(builder.VariantStone), "House variant (igloo, stone)")
	cmd.Flags().StringVar(&plan, "plan", string(builder.PlanFull), "Director plan (minimal, full)")
	cmd.Flags().StringVar(&steps, "steps", "", "Comma separated steps to run directly (basement, structure, roof, interior)")
	return cmd
}
