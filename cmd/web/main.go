package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopfront/internal/branding"
	"shopfront/internal/ratelimiter"
	"shopfront/internal/retail"
)

var version = "1.0.0"

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func loadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 30
	defaultEnabled := true

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            10 * time.Second,
		Enabled:              enabled,
	}
}

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	pageSize := retail.DefaultPageSize
	if val := os.Getenv("PAGE_SIZE"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid value for PAGE_SIZE: %q", val)
		}
		pageSize = parsed
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8000"
	}
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8080"
	}

	cfg := config{
		addr:       addr,
		env:        os.Getenv("ENV"),
		backendURL: backendURL,
		pageSize:   pageSize,
		branding: brandingConfig{
			path: os.Getenv("BRANDING_PATH"),
		},
		visitor: visitorConfig{
			cookieName: "visitor_id",
			cookieAge:  365 * 24 * time.Hour,
		},
		rateLimiter: loadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Branding
	brand, err := branding.Load(cfg.branding.path)
	if err != nil {
		logger.Fatal(err)
	}
	provider := branding.NewProvider(brand)

	if cfg.branding.path != "" {
		stop, err := branding.Watch(cfg.branding.path, provider, logger)
		if err != nil {
			logger.Errorw("branding watch unavailable", "path", cfg.branding.path, "error", err)
		} else {
			defer stop()
			logger.Infow("branding hot reload enabled", "path", cfg.branding.path)
		}
	}

	// Retail backend client
	client := retail.NewClient(cfg.backendURL, logger)
	logger.Infow("retail backend configured", "url", cfg.backendURL)

	// Rate limiter for the suggest endpoint
	limiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		retail:      client,
		branding:    provider,
		rateLimiter: limiter,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
