package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRepoURL parses a GitHub repository URL into owner and name components
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", err
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("invalid GitHub repository URL: missing host")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GitHub repository URL")
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// CommitURLPrefix returns "<repo>/commit/" for a repository URL, or "" when
// the URL is empty or unparseable
func CommitURLPrefix(repoURL string) string {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return ""
	}
	u, _ := url.Parse(repoURL)
	return fmt.Sprintf("%s://%s/%s/%s/commit/", u.Scheme, u.Host, owner, name)
}
