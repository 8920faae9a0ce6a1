// Package projects assembles the project cards of the portfolio and the
// per-year pie drawn above them.
package projects

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/utils"
)

const (
	// GitHubImage is the card image of repositories pulled from GitHub.
	GitHubImage = "images/github.svg"
	// NoDescription replaces an empty repository description.
	NoDescription = "No description available."
	// UnknownYear labels projects without a year in the pie.
	UnknownYear = "Unknown"
	// PieRadius is the outer radius of the year pie.
	PieRadius = 100
)

// RepoLister lists a user's most recently updated repositories.
type RepoLister interface {
	ListUserRepos(ctx context.Context, login string, limit int) ([]*models.Repository, error)
}

// Service reads the static project list and merges in GitHub repositories.
type Service struct {
	location   string
	httpClient *http.Client
	repos      RepoLister
	username   string
	repoLimit  int
	logger     *logrus.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithGitHub adds up to limit repositories of username to every listing.
func WithGitHub(repos RepoLister, username string, limit int) Option {
	return func(s *Service) {
		s.repos = repos
		s.username = username
		s.repoLimit = limit
	}
}

// WithHTTPClient sets the client used when location is a URL.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

func NewService(location string, logger *logrus.Logger, opts ...Option) *Service {
	s := &Service{
		location:   location,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchJSON decodes the JSON document at location into v.
func (s *Service) FetchJSON(ctx context.Context, location string, v interface{}) error {
	rc, err := utils.OpenLocation(ctx, s.httpClient, location)
	if err != nil {
		return err
	}
	defer rc.Close()
	return json.NewDecoder(rc).Decode(v)
}

// List returns the static projects followed by the GitHub ones. Either
// source failing is logged and contributes nothing.
func (s *Service) List(ctx context.Context) []*models.Project {
	projects := make([]*models.Project, 0)
	if err := s.FetchJSON(ctx, s.location, &projects); err != nil {
		s.logger.WithError(err).WithField("location", s.location).Error("Error fetching or parsing JSON data")
		projects = make([]*models.Project, 0)
	}

	if s.repos == nil || s.username == "" {
		return projects
	}

	repos, err := s.repos.ListUserRepos(ctx, s.username, s.repoLimit)
	if err != nil {
		s.logger.WithError(err).WithField("username", s.username).Error("Error fetching GitHub repos")
		return projects
	}
	for _, repo := range repos {
		projects = append(projects, FromRepository(repo))
	}
	return projects
}

// FromRepository turns a repository into a project card.
func FromRepository(repo *models.Repository) *models.Project {
	description := repo.Description
	if description == "" {
		description = NoDescription
	}
	year := ""
	if !repo.UpdatedAt.IsZero() {
		year = strconv.Itoa(repo.UpdatedAt.Year())
	}
	return &models.Project{
		Title:       repo.Name,
		Image:       GitHubImage,
		Description: description,
		URL:         repo.URL,
		Year:        year,
	}
}

// Filter keeps the projects whose joined field values contain query,
// ignoring case. An empty query keeps everything.
func Filter(projects []*models.Project, query string) []*models.Project {
	query = strings.ToLower(query)
	filtered := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		values := strings.Join([]string{p.Title, p.Image, p.Description, p.URL, p.Year}, " ")
		if strings.Contains(strings.ToLower(values), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Latest returns at most n projects from the front of the list.
func Latest(projects []*models.Project, n int) []*models.Project {
	if n < 0 {
		n = 0
	}
	if n > len(projects) {
		n = len(projects)
	}
	return projects[:n]
}

// YearRollup counts projects per year in first-seen order.
func YearRollup(projects []*models.Project) []chart.PieDatum {
	index := make(map[string]int)
	data := make([]chart.PieDatum, 0)
	for _, p := range projects {
		year := p.Year
		if year == "" {
			year = UnknownYear
		}
		i, ok := index[year]
		if !ok {
			i = len(data)
			index[year] = i
			data = append(data, chart.PieDatum{Label: year})
		}
		data[i].Value++
	}
	return data
}

// Pie lays out the year rollup of projects.
func Pie(projects []*models.Project) *chart.PieChart {
	return chart.NewPieChart(YearRollup(projects), PieRadius)
}
