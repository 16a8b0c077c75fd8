package main

import (
	"net/http"

	"shopfront/internal/storefront"
)

// suggestHandler serves typeahead suggestions as JSON. The browser
// debounces keystrokes before calling; the controller still enforces
// the minimum query length so short queries never reach the backend.
func (app *application) suggestHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	ctrl := storefront.NewAutocompleteController(app.retail, requestVisitor(app.visitorID(r)), 0)
	suggestions, err := ctrl.GetSuggestions(r.Context(), query)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions}); err != nil {
		app.internalServerError(w, r, err)
	}
}
