// Package site holds the page chrome shared by every portfolio page.
package site

import (
	"strings"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/utils"
)

// Page is one navigation target. Relative URLs are resolved against the
// base path.
type Page struct {
	URL   string
	Title string
}

// NavLink is a rendered navigation entry.
type NavLink struct {
	Title   string `json:"title"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
	Target  string `json:"target,omitempty"`
}

// Pages returns the site's pages; githubURL is appended when non-empty.
func Pages(githubURL string) []Page {
	pages := []Page{
		{URL: "", Title: "Home"},
		{URL: "projects/", Title: "Projects"},
		{URL: "cv/", Title: "CV"},
		{URL: "contact/", Title: "Contact"},
	}
	if githubURL != "" {
		pages = append(pages, Page{URL: githubURL, Title: "GitHub"})
	}
	return pages
}

// Nav resolves pages against basePath and flags the one being viewed at
// currentPath. External links open in a new tab.
func Nav(pages []Page, basePath, currentPath string) []NavLink {
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	links := make([]NavLink, 0, len(pages))
	for _, p := range pages {
		if utils.IsRemote(p.URL) {
			links = append(links, NavLink{Title: p.Title, Href: p.URL, Target: "_blank"})
			continue
		}
		href := basePath + p.URL
		links = append(links, NavLink{
			Title:   p.Title,
			Href:    href,
			Current: currentPath == href || currentPath == href+"index.html",
		})
	}
	return links
}
