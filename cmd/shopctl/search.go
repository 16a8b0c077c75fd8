package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shopfront/internal/storefront"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		page     int
		pageSize int
		sortBy   string
		filters  []string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the product catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := storefront.NewPageState()
			state.Query = args[0]
			state.Page = page
			state.SortBy = sortBy
			for _, f := range filters {
				key, values, err := parseFilterFlag(f)
				if err != nil {
					return err
				}
				state.Filters.Set(key, values)
			}

			ctrl := storefront.NewSearchController(c.client, c.visitors, pageSize)
			ctrl.SetState(state)
			snap := ctrl.Execute(cmd.Context())
			if snap.Err != "" {
				return fmt.Errorf("search failed: %s", snap.Err)
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tBRAND\tPRICE\tAVAILABILITY")
			for _, r := range snap.Results {
				p := r.Product
				price := ""
				if p.PriceInfo != nil {
					price = fmt.Sprintf("%.2f %s", p.PriceInfo.Price, p.PriceInfo.CurrencyCode)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Brands, ", "), price, p.Availability)
			}
			w.Flush()

			fmt.Fprintf(out, "\nPage %d of %d (%d results)\n", snap.Pagination.Page, snap.Pagination.TotalPages, snap.TotalSize)
			for _, facet := range snap.Facets {
				var parts []string
				for _, v := range facet.Values {
					parts = append(parts, fmt.Sprintf("%s (%d)", v.Value, v.Count))
				}
				fmt.Fprintf(out, "%s: %s\n", facet.Key, strings.Join(parts, ", "))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "results per page")
	cmd.Flags().StringVar(&sortBy, "sort", "", `sort order, e.g. "price asc"`)
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "facet filter as key=v1,v2 (repeatable)")
	return cmd
}

// parseFilterFlag splits a --filter argument of the form key=v1,v2.
func parseFilterFlag(s string) (string, []string, error) {
	key, rest, ok := strings.Cut(s, "=")
	if !ok || key == "" || rest == "" {
		return "", nil, fmt.Errorf("invalid --filter %q, expected key=v1,v2", s)
	}
	var values []string
	for _, v := range strings.Split(rest, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("invalid --filter %q, expected key=v1,v2", s)
	}
	return key, values, nil
}
