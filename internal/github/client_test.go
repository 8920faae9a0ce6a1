package github

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T, handler http.HandlerFunc, token string) *GitHubClient {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGitHubClient(
		token,
		logger,
		WithBaseURL(server.URL),
		WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
	)
}

func TestGitHubClient_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/octocat", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"login": "octocat",
				"name": "The Octocat",
				"avatar_url": "https://avatars.example/octocat",
				"html_url": "https://github.com/octocat",
				"public_repos": 8,
				"public_gists": 2,
				"followers": 100,
				"following": 9
			}`))
		}, "test-token")

		profile, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", profile.Login)
		assert.Equal(t, "The Octocat", profile.Name)
		assert.Equal(t, 8, profile.PublicRepos)
		assert.Equal(t, 2, profile.PublicGists)
		assert.Equal(t, 100, profile.Followers)
		assert.Equal(t, 9, profile.Following)

		info := client.RateLimit()
		assert.Equal(t, 5000, info.Limit)
		assert.Equal(t, 4999, info.Remaining)
		assert.Equal(t, time.Unix(1234567890, 0), info.ResetTime)
	})

	t.Run("anonymous request sends no authorization", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"login": "octocat"}`))
		}, "")

		profile, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", profile.Login)
	})

	t.Run("not found", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Not Found"}`))
		}, "")

		_, err := client.GetUser(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("empty login", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}, "")

		_, err := client.GetUser(ctx, "")
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestGitHubClient_ListUserRepos(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by update", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			w.Write([]byte(`[
				{
					"name": "hello-world",
					"full_name": "octocat/hello-world",
					"description": null,
					"html_url": "https://github.com/octocat/hello-world",
					"language": "Go",
					"stargazers_count": 3,
					"forks_count": 1,
					"created_at": "2020-01-01T00:00:00Z",
					"updated_at": "2024-03-02T10:00:00Z"
				},
				{
					"name": "spoon-knife",
					"description": "A fork target",
					"html_url": "https://github.com/octocat/spoon-knife",
					"updated_at": "2023-05-01T00:00:00Z"
				}
			]`))
		}, "")

		repos, err := client.ListUserRepos(ctx, "octocat", 5)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "hello-world", repos[0].Name)
		assert.Empty(t, repos[0].Description)
		assert.Equal(t, "Go", repos[0].Language)
		assert.Equal(t, 3, repos[0].StarsCount)
		assert.Equal(t, 2024, repos[0].UpdatedAt.Year())
		assert.Equal(t, "A fork target", repos[1].Description)
	})

	t.Run("invalid limit", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}, "")

		_, err := client.ListUserRepos(ctx, "octocat", 0)
		assert.Error(t, err)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int32
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`[]`))
		}, "")

		repos, err := client.ListUserRepos(ctx, "octocat", 5)
		require.NoError(t, err)
		assert.Empty(t, repos)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, "")

		_, err := client.ListUserRepos(ctx, "octocat", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max retries exceeded")
	})

	t.Run("rate limit beyond backoff window", func(t *testing.T) {
		reset := time.Now().Add(time.Hour).Unix()
		client := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
			w.WriteHeader(http.StatusForbidden)
		}, "")

		_, err := client.ListUserRepos(ctx, "octocat", 5)
		require.Error(t, err)
		assert.True(t, IsRateLimitError(err))
	})
}
