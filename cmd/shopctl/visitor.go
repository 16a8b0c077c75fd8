package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVisitorCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visitor",
		Short: "Manage the persisted visitor id",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current visitor id, creating one if needed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := c.visitors.GetOrCreate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <id>",
			Short: "Replace the visitor id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.visitors.Set(args[0])
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Generate and persist a fresh visitor id",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := c.visitors.Regenerate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		},
	)
	return cmd
}
