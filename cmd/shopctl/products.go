package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shopfront/internal/storefront"
)

func newProductsCmd(c *cli) *cobra.Command {
	var (
		slug     string
		pageSize int
		pages    int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products of a category, page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := storefront.NewCategoryController(c.client, c.client, nil, slug, pageSize)
			out := cmd.OutOrStdout()

			for page := 1; page <= pages; page++ {
				snap := ctrl.Execute(cmd.Context(), page)
				if snap.Err != "" {
					return fmt.Errorf("listing %q failed: %s", slug, snap.Err)
				}
				if page == 1 {
					fmt.Fprintf(out, "%s\n\n", snap.Name)
				}

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, p := range snap.Products {
					price := ""
					if p.PriceInfo != nil {
						price = fmt.Sprintf("%.2f %s", p.PriceInfo.Price, p.PriceInfo.CurrencyCode)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, price)
				}
				w.Flush()
				fmt.Fprintf(out, "-- page %d --\n", page)

				if !snap.HasNext {
					return nil
				}
			}

			fmt.Fprintln(out, "More products available, raise --pages to keep going.")
			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "category", "", "category slug to list")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "products per page")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")
	cobra.CheckErr(cmd.MarkFlagRequired("category"))
	return cmd
}

func newCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the store's categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := c.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tPRODUCTS")
			for _, cat := range categories {
				count := ""
				if cat.Count > 0 {
					count = fmt.Sprint(cat.Count)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Slug, cat.Name, count)
			}
			return w.Flush()
		},
	}
}
