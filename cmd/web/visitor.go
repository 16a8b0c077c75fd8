package main

import (
	"fmt"
	"net/http"

	"shopfront/internal/visitor"
)

type setVisitorPayload struct {
	VisitorID string `json:"visitor_id" validate:"required,min=3,max=128"`
}

func (app *application) getVisitorHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{"visitor_id": app.visitorID(r)}
	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setVisitorHandler switches to an explicit identity, e.g. one of the
// demo visitors. Consumers reload their visitor-scoped data afterwards;
// anything fetched under the old id is stale.
func (app *application) setVisitorHandler(w http.ResponseWriter, r *http.Request) {
	var payload setVisitorPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid visitor id: %w", err))
		return
	}

	app.setVisitorCookie(w, payload.VisitorID)
	app.logger.Infow("visitor id set", "visitor", payload.VisitorID)

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"visitor_id": payload.VisitorID}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) regenerateVisitorHandler(w http.ResponseWriter, r *http.Request) {
	id := visitor.Synthesize()
	app.setVisitorCookie(w, id)
	app.logger.Infow("visitor id regenerated", "visitor", id)

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"visitor_id": id}); err != nil {
		app.internalServerError(w, r, err)
	}
}
