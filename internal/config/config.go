package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/utils"
)

type Config struct {
	Port               string
	DBConnectionString string
	DataPath           string
	ProjectsPath       string
	RepositoryURL      string
	Timezone           string
	BasePath           string
	InferLanguage      bool
	SessionTTL         time.Duration
	ChartConfigFile    string
	GitHub             *GitHubConfig
}

func Load() (*Config, error) {
	inferLanguage, err := strconv.ParseBool(getEnv("INFER_LANGUAGE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid INFER_LANGUAGE: %w", err)
	}

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	github := DefaultGitHubConfig()
	github.Token = getEnv("GITHUB_TOKEN", "")
	github.Username = getEnv("GITHUB_USERNAME", "")
	github.APIBaseURL = getEnv("GITHUB_API_URL", github.APIBaseURL)

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),
		DataPath:           getEnv("LOC_CSV_PATH", "meta/loc.csv"),
		ProjectsPath:       getEnv("PROJECTS_JSON_PATH", "lib/projects.json"),
		RepositoryURL:      getEnv("REPOSITORY_URL", ""),
		Timezone:           getEnv("TIMEZONE", "UTC"),
		BasePath:           getEnv("BASE_PATH", "/"),
		InferLanguage:      inferLanguage,
		SessionTTL:         time.Duration(sessionTTL) * time.Minute,
		ChartConfigFile:    getEnv("CHART_CONFIG_FILE", "chart.toml"),
		GitHub:             github,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.DataPath == "" {
		return fmt.Errorf("LOC_CSV_PATH cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.RepositoryURL != "" {
		if _, _, err := utils.ParseRepoURL(c.RepositoryURL); err != nil {
			return fmt.Errorf("invalid REPOSITORY_URL: %w", err)
		}
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("BASE_PATH must start with /")
	}
	return nil
}

// Location resolves the configured timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CommitURLPrefix is prepended to commit ids to build commit links
func (c *Config) CommitURLPrefix() string {
	return utils.CommitURLPrefix(c.RepositoryURL)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
