package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopfront/internal/storefront"
)

func newSuggestCmd(c *cli) *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Fetch search completions for a partial query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := storefront.NewAutocompleteController(c.client, c.visitors, max)
			suggestions, err := ctrl.GetSuggestions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s.Suggestion)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 5, "maximum number of suggestions")
	return cmd
}
