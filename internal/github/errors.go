package github

import (
	"errors"
	"fmt"
	"time"
)

// GitHubError is a failed call to the REST API. StatusCode is 0 when no
// response was received.
type GitHubError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: status %d: %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Message)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// RateLimitError means the quota ran out and the reset is further away than
// the client is willing to wait.
type RateLimitError struct {
	ResetTime time.Time
	Limit     int
	Remaining int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit of %d exhausted (%d left) until %s",
		e.Limit, e.Remaining, e.ResetTime.Format(time.RFC3339))
}

// ValidationError rejects an argument before any request is made
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("github: invalid %s: %s", e.Field, e.Value)
}

// UserNotFoundError is a 404 for a profile or its repositories
type UserNotFoundError struct {
	Login string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("github: user %q not found", e.Login)
}

func NewGitHubError(statusCode int, message string, err error) error {
	return &GitHubError{StatusCode: statusCode, Message: message, Err: err}
}

func NewRateLimitError(resetTime time.Time, limit, remaining int) error {
	return &RateLimitError{ResetTime: resetTime, Limit: limit, Remaining: remaining}
}

func NewValidationError(field, value string) error {
	return &ValidationError{Field: field, Value: value}
}

func NewUserNotFoundError(login string) error {
	return &UserNotFoundError{Login: login}
}

// IsRateLimitError reports whether err wraps a RateLimitError
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsNotFoundError reports whether err wraps a UserNotFoundError
func IsNotFoundError(err error) bool {
	var nf *UserNotFoundError
	return errors.As(err, &nf)
}
