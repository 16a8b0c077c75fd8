package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shopfront/internal/retail"
)

func newRecommendCmd(c *cli) *cobra.Command {
	var (
		model     string
		productID string
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Fetch recommendations for the current visitor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			visitorID, err := c.visitors.GetOrCreate()
			if err != nil {
				return err
			}

			resp, err := c.client.Recommend(cmd.Context(), retail.RecommendParams{
				Model:     model,
				VisitorID: visitorID,
				ProductID: productID,
				PageSize:  pageSize,
			})
			if err != nil {
				return err
			}
			if len(resp.Results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recommendations.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPRICE")
			for _, r := range resp.Results {
				fmt.Fprintf(w, "%s\t%s\t%.2f\n", r.ID, r.Title, r.Price)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&model, "model", "recommended_for_you", "recommendation model id")
	cmd.Flags().StringVar(&productID, "product", "", "context product id, required by some models")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "number of recommendations")
	return cmd
}

func newModelsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the available recommendation models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := c.client.RecommendationModels(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tNEEDS PRODUCT")
			for _, m := range models {
				needs := ""
				if m.RequiresProductID {
					needs = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, needs)
			}
			return w.Flush()
		},
	}
}
