package main

import (
	"net/http"

	"shopfront/internal/retail"
)

type homeView struct {
	Categories  []retail.Category
	Recommended []retail.RecommendResult
}

// homeHandler renders the landing page: category navigation from the
// catalog plus a personalized shelf. Both sections are best-effort; a
// failed lookup hides the section instead of failing the page.
func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	view := homeView{}

	cats, err := app.retail.ListCategories(r.Context())
	if err != nil {
		app.logger.Errorw("categories unavailable", "error", err)
	} else {
		view.Categories = cats
	}

	recs, err := app.retail.Recommend(r.Context(), retail.RecommendParams{
		Model:     "recommended_for_you",
		VisitorID: app.visitorID(r),
	})
	if err != nil {
		app.logger.Infow("recommendations unavailable", "error", err)
	} else {
		view.Recommended = recs.Results
	}

	app.render(w, r, "home", app.branding.Current().SiteName, view)
}
