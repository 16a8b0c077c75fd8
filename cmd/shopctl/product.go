package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newProductCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", p.Title)
			fmt.Fprintf(out, "ID:           %s\n", p.ID)
			if len(p.Brands) > 0 {
				fmt.Fprintf(out, "Brand:        %s\n", strings.Join(p.Brands, ", "))
			}
			if p.PriceInfo != nil {
				price := fmt.Sprintf("%.2f %s", p.PriceInfo.Price, p.PriceInfo.CurrencyCode)
				if p.PriceInfo.OriginalPrice != nil {
					price += fmt.Sprintf(" (was %.2f)", *p.PriceInfo.OriginalPrice)
				}
				fmt.Fprintf(out, "Price:        %s\n", price)
			}
			fmt.Fprintf(out, "Availability: %s\n", p.Availability)
			if len(p.Categories) > 0 {
				fmt.Fprintf(out, "Categories:   %s\n", strings.Join(p.Categories, ", "))
			}
			if p.Description != "" {
				fmt.Fprintf(out, "\n%s\n", p.Description)
			}
			if len(p.Attributes) > 0 {
				keys := make([]string, 0, len(p.Attributes))
				for k := range p.Attributes {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				fmt.Fprintln(out)
				for _, k := range keys {
					fmt.Fprintf(out, "%s: %s\n", k, strings.Join(p.Attributes[k], ", "))
				}
			}
			return nil
		},
	}
}
