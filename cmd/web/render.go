package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"shopfront/internal/branding"
	"shopfront/internal/retail"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"price": formatPrice,
	"deref": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	},
}).ParseFS(templateFS, "templates/*.tmpl"))

func staticHandler() http.HandlerFunc {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	server := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return server.ServeHTTP
}

// page is the envelope every template receives: branding for the chrome
// and theme, the visitor id for the identity box, and the page's own
// view model.
type page struct {
	Branding *branding.Branding
	Visitor  string
	Title    string
	Data     any
}

func (app *application) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	p := page{
		Branding: app.branding.Current(),
		Visitor:  app.visitorID(r),
		Title:    title,
		Data:     data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, p); err != nil {
		app.logger.Errorw("template render failed", "template", name, "error", err)
	}
}

func formatPrice(info *retail.PriceInfo) string {
	if info == nil {
		return ""
	}
	symbol := info.CurrencyCode
	if symbol == "USD" || symbol == "" {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.2f", symbol, info.Price)
}
