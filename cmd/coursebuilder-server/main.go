package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/siyamthandatsobo/ai-course-builder/internal/bootstrap"
	"github.com/siyamthandatsobo/ai-course-builder/internal/config"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/database"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference/openai"
	"github.com/siyamthandatsobo/ai-course-builder/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "coursebuilder-server",
		Short:         "AI course builder HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	if cfg.Auth.HMACSecret == "" {
		return fmt.Errorf("AUTH_HMAC_SECRET environment variable is required")
	}

	aiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, uint(cfg.Generation.MaxRetryAttempts))
	app.AddShutdownHook(func(ctx context.Context) error {
		return aiClient.Close()
	})

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})
	repo := course.NewSQLRepository(db)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := server.NewHandler(repo, aiClient, cfg.Generation.DefaultQuestionCount, logger)
	authService := server.NewAuthService(cfg.Auth.HMACSecret, time.Duration(cfg.Auth.TokenTTLMins)*time.Minute)
	router := server.NewRouter(cfg.Server, handler, authService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(router, &http2.Server{}),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
