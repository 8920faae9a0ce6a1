package projects

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

type MockRepoLister struct {
	mock.Mock
}

func (m *MockRepoLister) ListUserRepos(ctx context.Context, login string, limit int) ([]*models.Repository, error) {
	args := m.Called(ctx, login, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Repository), args.Error(1)
}

const projectsJSON = `[
	{"title": "Lab 1", "image": "images/lab1.png", "description": "Intro to HTML", "year": "2024"},
	{"title": "Lab 2", "image": "images/lab2.png", "description": "CSS layouts", "year": "2024"},
	{"title": "Data viz", "image": "images/viz.png", "description": "D3 charts", "year": "2025"},
	{"title": "Untitled", "image": "", "description": "No year given"}
]`

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeProjects(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("local only", func(t *testing.T) {
		svc := NewService(writeProjects(t, projectsJSON), testLogger())
		projects := svc.List(ctx)
		require.Len(t, projects, 4)
		assert.Equal(t, "Lab 1", projects[0].Title)
	})

	t.Run("missing file yields empty list", func(t *testing.T) {
		svc := NewService(filepath.Join(t.TempDir(), "absent.json"), testLogger())
		projects := svc.List(ctx)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("malformed file yields empty list", func(t *testing.T) {
		svc := NewService(writeProjects(t, `{"title":`), testLogger())
		assert.Empty(t, svc.List(ctx))
	})

	t.Run("served over http", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(projectsJSON))
		}))
		defer server.Close()

		svc := NewService(server.URL+"/lib/projects.json", testLogger())
		assert.Len(t, svc.List(ctx), 4)
	})

	t.Run("with github repositories", func(t *testing.T) {
		repos := new(MockRepoLister)
		repos.On("ListUserRepos", mock.Anything, "octocat", 5).Return([]*models.Repository{
			{Name: "hello-world", URL: "https://github.com/octocat/hello-world", UpdatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "described", Description: "Has words", URL: "https://github.com/octocat/described"},
		}, nil)

		svc := NewService(writeProjects(t, projectsJSON), testLogger(), WithGitHub(repos, "octocat", 5))
		projects := svc.List(ctx)
		require.Len(t, projects, 6)

		gh := projects[4]
		assert.Equal(t, "hello-world", gh.Title)
		assert.Equal(t, GitHubImage, gh.Image)
		assert.Equal(t, NoDescription, gh.Description)
		assert.Equal(t, "2025", gh.Year)
		assert.Equal(t, "Has words", projects[5].Description)
		assert.Equal(t, "", projects[5].Year)
		repos.AssertExpectations(t)
	})

	t.Run("github failure keeps local projects", func(t *testing.T) {
		repos := new(MockRepoLister)
		repos.On("ListUserRepos", mock.Anything, "octocat", 5).Return(nil, errors.New("boom"))

		svc := NewService(writeProjects(t, projectsJSON), testLogger(), WithGitHub(repos, "octocat", 5))
		assert.Len(t, svc.List(ctx), 4)
		repos.AssertExpectations(t)
	})
}

func TestFilter(t *testing.T) {
	projects := []*models.Project{
		{Title: "Lab 1", Description: "Intro to HTML", Year: "2024"},
		{Title: "Data viz", Description: "D3 charts", Year: "2025"},
	}

	assert.Len(t, Filter(projects, ""), 2)
	assert.Len(t, Filter(projects, "2025"), 1)

	matched := Filter(projects, "HTML")
	require.Len(t, matched, 1)
	assert.Equal(t, "Lab 1", matched[0].Title)

	assert.Empty(t, Filter(projects, "rust"))
}

func TestLatest(t *testing.T) {
	projects := []*models.Project{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}
	assert.Len(t, Latest(projects, 3), 3)
	assert.Equal(t, "a", Latest(projects, 3)[0].Title)
	assert.Len(t, Latest(projects[:2], 3), 2)
	assert.Empty(t, Latest(projects, -1))
}

func TestYearRollup(t *testing.T) {
	projects := []*models.Project{
		{Year: "2025"}, {Year: "2024"}, {}, {Year: "2025"}, {Year: "2024"}, {Year: "2025"},
	}

	data := YearRollup(projects)
	assert.Equal(t, []chart.PieDatum{
		{Label: "2025", Value: 3},
		{Label: "2024", Value: 2},
		{Label: UnknownYear, Value: 1},
	}, data)

	pie := Pie(projects)
	assert.Equal(t, float64(PieRadius), pie.Radius)
	require.Len(t, pie.Slices, 3)
	assert.Equal(t, "2025 (3)", pie.Legend()[0].Text)
}
