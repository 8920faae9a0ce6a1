package github

import (
	"time"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

type apiUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

func (u apiUser) toModel() *models.Profile {
	return &models.Profile{
		Login:       u.Login,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		HTMLURL:     u.HTMLURL,
		Bio:         u.Bio,
		PublicRepos: u.PublicRepos,
		PublicGists: u.PublicGists,
		Followers:   u.Followers,
		Following:   u.Following,
	}
}

type apiRepo struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    *string   `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r apiRepo) toModel() *models.Repository {
	repo := &models.Repository{
		Name:       r.Name,
		FullName:   r.FullName,
		URL:        r.HTMLURL,
		StarsCount: r.Stars,
		ForksCount: r.Forks,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Description != nil {
		repo.Description = *r.Description
	}
	if r.Language != nil {
		repo.Language = *r.Language
	}
	return repo
}
