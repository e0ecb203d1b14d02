package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [-- cargo params...]",
		Short: "Build Servo",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.getwd()
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), cwd, requestFrom(cmd, args))
		},
	}
	cmd.Flags().SetInterspersed(false)
	addBuildFlags(cmd)
	return cmd
}
