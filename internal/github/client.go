package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// DefaultBaseURL is the public GitHub REST endpoint
const DefaultBaseURL = "https://api.github.com"

// RateLimitInfo holds information about GitHub API rate limits
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
	// Retry-After from secondary limits
	SecondaryLimitReset time.Time
}

// GitHubClient represents a client for interacting with the GitHub API
type GitHubClient struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger

	mu            sync.Mutex
	rateLimitInfo RateLimitInfo

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*GitHubClient)

// WithRetryConfig configures retry behavior
func WithRetryConfig(maxRetries int, initialBackoff, maxBackoff time.Duration) ClientOption {
	return func(c *GitHubClient) {
		c.maxRetries = maxRetries
		c.initialBackoff = initialBackoff
		c.maxBackoff = maxBackoff
	}
}

// WithBaseURL points the client at another API root, e.g. a GitHub Enterprise host
func WithBaseURL(baseURL string) ClientOption {
	return func(c *GitHubClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying transport client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *GitHubClient) {
		c.client = httpClient
	}
}

// NewGitHubClient creates a new GitHub client. An empty token makes
// unauthenticated requests.
func NewGitHubClient(token string, logger *logrus.Logger, opts ...ClientOption) *GitHubClient {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = 30 * time.Second

	client := &GitHubClient{
		client:         httpClient,
		baseURL:        DefaultBaseURL,
		logger:         logger,
		maxRetries:     3,
		initialBackoff: time.Second,
		maxBackoff:     time.Minute,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the limits seen on the most recent response
func (c *GitHubClient) RateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimitInfo
}

// updateRateLimitInfo updates the rate limit information from response headers
func (c *GitHubClient) updateRateLimitInfo(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if retrySeconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil {
			c.rateLimitInfo.SecondaryLimitReset = time.Now().Add(time.Duration(retrySeconds) * time.Second)
		}
	}
}

// rateLimitWait reports how long to wait before retrying a throttled request
func (c *GitHubClient) rateLimitWait() (time.Duration, RateLimitInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resetTime := c.rateLimitInfo.ResetTime
	if !c.rateLimitInfo.SecondaryLimitReset.IsZero() {
		resetTime = c.rateLimitInfo.SecondaryLimitReset
	}
	return time.Until(resetTime), c.rateLimitInfo
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// doRequestWithBackoff performs a GET with exponential backoff on transport
// and server errors. Throttled requests wait for the reset only when it is
// within maxBackoff; otherwise a RateLimitError is returned.
func (c *GitHubClient) doRequestWithBackoff(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	backoff := c.initialBackoff

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = NewGitHubError(0, "request failed", err)
			c.logger.WithFields(logrus.Fields{
				"url":     endpoint,
				"attempt": attempt + 1,
			}).WithError(err).Warn("GitHub request failed")
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
			continue
		}

		c.updateRateLimitInfo(resp)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = NewGitHubError(resp.StatusCode, "failed to read response body", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests ||
			(resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"):
			wait, info := c.rateLimitWait()
			if wait > c.maxBackoff {
				return NewRateLimitError(info.ResetTime, info.Limit, info.Remaining)
			}
			c.logger.Warnf("Rate limit exceeded. Waiting %v before retry", wait)
			lastErr = NewRateLimitError(info.ResetTime, info.Limit, info.Remaining)
			if err := sleep(ctx, wait); err != nil {
				return err
			}
			continue
		case resp.StatusCode == http.StatusNotFound:
			return NewGitHubError(resp.StatusCode, "not found", nil)
		case resp.StatusCode >= 500:
			lastErr = NewGitHubError(resp.StatusCode, string(body), nil)
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
			continue
		case resp.StatusCode != http.StatusOK:
			return NewGitHubError(resp.StatusCode, string(body), nil)
		}

		if result != nil {
			if err := json.Unmarshal(body, result); err != nil {
				return NewGitHubError(resp.StatusCode, "failed to decode response", err)
			}
		}
		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func isStatus(err error, code int) bool {
	ghErr, ok := err.(*GitHubError)
	return ok && ghErr.StatusCode == code
}

// GetUser fetches the public profile of a user
func (c *GitHubClient) GetUser(ctx context.Context, login string) (*models.Profile, error) {
	if login == "" {
		return nil, NewValidationError("login", "cannot be empty")
	}

	var user apiUser
	if err := c.doRequestWithBackoff(ctx, "/users/"+url.PathEscape(login), nil, &user); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, NewUserNotFoundError(login)
		}
		return nil, err
	}
	return user.toModel(), nil
}

// ListUserRepos returns up to limit repositories of a user, most recently
// updated first
func (c *GitHubClient) ListUserRepos(ctx context.Context, login string, limit int) ([]*models.Repository, error) {
	if login == "" {
		return nil, NewValidationError("login", "cannot be empty")
	}
	if limit <= 0 || limit > 100 {
		return nil, NewValidationError("limit", strconv.Itoa(limit))
	}

	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", strconv.Itoa(limit))

	logger := c.logger.WithFields(logrus.Fields{
		"login": login,
		"limit": limit,
	})
	logger.Debug("Fetching repositories from GitHub API")

	var repos []apiRepo
	if err := c.doRequestWithBackoff(ctx, "/users/"+url.PathEscape(login)+"/repos", query, &repos); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, NewUserNotFoundError(login)
		}
		logger.WithError(err).Error("Failed to fetch repositories")
		return nil, err
	}

	result := make([]*models.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, r.toModel())
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
