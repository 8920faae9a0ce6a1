package config

import "time"

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	Token      string
	Username   string
	APIBaseURL string
	// RepoLimit is how many recently updated repositories join the project list
	RepoLimit int
	RateLimit RateLimitConfig
}

// RateLimitConfig holds rate limit configuration
type RateLimitConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Enabled reports whether GitHub lookups are configured
func (c *GitHubConfig) Enabled() bool {
	return c.Username != ""
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL: "https://api.github.com",
		RepoLimit:  5,
		RateLimit: RateLimitConfig{
			MaxRetries:     3,
			InitialBackoff: time.Second,
			MaxBackoff:     time.Minute,
		},
	}
}
