package main

import (
	"context"
	"net/http"

	"shopfront/internal/visitor"
)

type contextKey string

const visitorCtxKey contextKey = "visitor_id"

// visitorCookie guarantees every request carries a visitor identity:
// the cookie is read if present, synthesized and set otherwise, and the
// id is exposed on the request context either way.
func (app *application) visitorCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(app.config.visitor.cookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		}
		if id == "" {
			id = visitor.Synthesize()
			app.setVisitorCookie(w, id)
		}

		ctx := context.WithValue(r.Context(), visitorCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) setVisitorCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.visitor.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(app.config.visitor.cookieAge.Seconds()),
		HttpOnly: false, // the typeahead script reads it
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *application) visitorID(r *http.Request) string {
	if id, ok := r.Context().Value(visitorCtxKey).(string); ok {
		return id
	}
	return ""
}

// requestVisitor adapts the per-request visitor id to the controllers'
// provider interface.
type requestVisitor string

func (v requestVisitor) GetOrCreate() (string, error) { return string(v), nil }

// suggestRateLimit bounds autocomplete traffic per visitor.
func (app *application) suggestRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(app.visitorID(r)); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
