// Package config loads application configuration from a YAML file plus
// environment variables for secrets.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Generation GenerationConfig `mapstructure:"generation"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// GenerationConfig tunes the course generation sequence.
type GenerationConfig struct {
	RevealDelayMS        int `mapstructure:"reveal_delay_ms" validate:"min=0"`
	DefaultQuestionCount int `mapstructure:"default_question_count" validate:"min=1"`
	MaxRetryAttempts     int `mapstructure:"max_retry_attempts" validate:"min=0"`
}

type TemplatesConfig struct {
	CourseTemplate string `mapstructure:"course_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	CourseDirectory string `mapstructure:"course_directory"`
}

type AuthConfig struct {
	HMACSecret   string `mapstructure:"hmac_secret"`
	TokenTTLMins int    `mapstructure:"token_ttl_minutes" validate:"min=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/coursebuilder")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "coursebuilder")
	v.SetDefault("database.username", "user")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("generation.reveal_delay_ms", 400)
	v.SetDefault("generation.default_question_count", 10)
	v.SetDefault("generation.max_retry_attempts", 3)
	// Template is optional, the embedded fallback is used when unset
	v.SetDefault("templates.course_template", "")
	v.SetDefault("outputs.course_directory", filepath.Join("outputs", "courses"))
	v.SetDefault("auth.token_ttl_minutes", 12*60)

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	// Bind secrets to environment variables
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("auth.hmac_secret", "AUTH_HMAC_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind AUTH_HMAC_SECRET environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
