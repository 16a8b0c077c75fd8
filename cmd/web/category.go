package main

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shopfront/internal/storefront"
)

type categoryView struct {
	Snap    storefront.CategorySnapshot
	PrevURL string
	NextURL string
}

// categoryHandler browses one category with cursor pagination. The
// continuation token travels through the URL, since nothing server-side
// outlives the request.
func (app *application) categoryHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "categorySlug")

	q := r.URL.Query()
	page := 1
	if raw := q.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	token := q.Get("token")

	ctrl := storefront.NewCategoryController(app.retail, app.retail, app.branding, slug, app.config.pageSize)
	ctrl.Seed(page, token)

	snap := ctrl.Execute(r.Context(), page)

	view := categoryView{Snap: snap}
	if snap.Page > 1 {
		// Restarting from page 1 is the only safe backward move with
		// forward-only tokens.
		view.PrevURL = "/category/" + url.PathEscape(slug)
	}
	if snap.HasNext {
		next := url.Values{}
		next.Set("page", strconv.Itoa(snap.Page+1))
		next.Set("token", ctrl.NextToken())
		view.NextURL = "/category/" + url.PathEscape(slug) + "?" + next.Encode()
	}

	app.render(w, r, "category", snap.Name, view)
}
