package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"shopfront/internal/branding"
	"shopfront/internal/ratelimiter"
	"shopfront/internal/retail"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	retail      *retail.Client
	branding    *branding.Provider
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	backendURL  string
	pageSize    int
	branding    brandingConfig
	visitor     visitorConfig
	rateLimiter ratelimiter.Config
}

type brandingConfig struct {
	path string
}

type visitorConfig struct {
	cookieName string
	cookieAge  time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.visitorCookie)

	r.Get("/health", app.healthCheckHandler)
	r.Get("/static/*", staticHandler())

	r.Get("/", app.homeHandler)
	r.Get("/search", app.searchHandler)
	r.Get("/category/{categorySlug}", app.categoryHandler)
	r.Get("/product/{productID}", app.productHandler)

	r.With(app.suggestRateLimit).Get("/suggest", app.suggestHandler)

	r.Route("/api/visitor", func(r chi.Router) {
		r.Get("/", app.getVisitorHandler)
		r.Post("/", app.setVisitorHandler)
		r.Post("/regenerate", app.regenerateVisitorHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}
	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
