package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopfront/internal/retail"
)

type productView struct {
	Product *retail.Product
	Similar []retail.RecommendResult
	Err     string
}

func (app *application) productHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		app.badRequestResponse(w, r, fmt.Errorf("missing product id"))
		return
	}

	product, err := app.retail.GetProduct(r.Context(), productID)
	if err != nil {
		var apiErr *retail.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			app.notFoundResponse(w, r, err)
			return
		}
		app.render(w, r, "product", "Product", productView{Err: err.Error()})
		return
	}

	view := productView{Product: product}

	// Similar-items shelf is best-effort.
	similar, err := app.retail.Recommend(r.Context(), retail.RecommendParams{
		Model:     "similar_items",
		VisitorID: app.visitorID(r),
		ProductID: product.ID,
	})
	if err != nil {
		app.logger.Infow("similar items unavailable", "product", product.ID, "error", err)
	} else {
		view.Similar = similar.Results
	}

	app.render(w, r, "product", product.Title, view)
}
