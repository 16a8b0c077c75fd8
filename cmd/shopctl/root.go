package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopfront/internal/retail"
	"shopfront/internal/visitor"
)

type cli struct {
	backendURL  string
	visitorPath string

	logger   *zap.SugaredLogger
	client   *retail.Client
	visitors *visitor.Store
}

func newLogger() *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core).Sugar()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "Terminal client for the shopfront retail backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if c.backendURL == "" {
				c.backendURL = os.Getenv("BACKEND_URL")
			}
			if c.backendURL == "" {
				c.backendURL = "http://localhost:8080"
			}
			if c.visitorPath == "" {
				c.visitorPath = visitor.DefaultPath()
			}

			c.logger = newLogger()
			c.client = retail.NewClient(c.backendURL, c.logger)
			c.visitors = visitor.NewStore(visitor.NewFileBackend(c.visitorPath))
		},
	}

	root.PersistentFlags().StringVar(&c.backendURL, "backend", "", "backend base URL (default $BACKEND_URL or http://localhost:8080)")
	root.PersistentFlags().StringVar(&c.visitorPath, "visitor-file", "", "path of the persisted visitor id")

	root.AddCommand(
		newSearchCmd(c),
		newSuggestCmd(c),
		newProductCmd(c),
		newProductsCmd(c),
		newCategoriesCmd(c),
		newRecommendCmd(c),
		newModelsCmd(c),
		newVisitorCmd(c),
	)
	return root
}
