package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [flags] [-- cargo params...]",
		Short: "Print the build plan without running it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.getwd()
			if err != nil {
				return err
			}

			plan, err := c.app.Plan(cwd, requestFrom(cmd, args))
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(plan); err != nil {
				return zerr.Wrap(err, "failed to render build plan")
			}
			return enc.Close()
		},
	}
	cmd.Flags().SetInterspersed(false)
	addBuildFlags(cmd)
	return cmd
}
