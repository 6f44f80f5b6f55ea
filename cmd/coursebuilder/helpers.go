package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/siyamthandatsobo/ai-course-builder/internal/config"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/database"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference/openai"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openRepository(cfg *config.Config) (*sqlx.DB, *course.SQLRepository, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, course.NewSQLRepository(db), nil
}

func newOpenAIClient(cfg *config.Config) (*openai.Client, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	return openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, uint(cfg.Generation.MaxRetryAttempts)), nil
}
