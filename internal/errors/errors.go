// Package errors defines the error vocabulary shared across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
)

// ErrMissingCredential indicates no GitHub token was found in the environment.
// It is detected locally, before any network interaction, and never retried.
// Maps to exit code 2.
var ErrMissingCredential = errors.New("missing GITHUB_TOKEN in environment")

// UpstreamError represents any failure originating from the GitHub API:
// network failure, authorization failure, unknown repository, rate-limit
// exhaustion. The underlying cause is carried unmodified and exposed via
// Unwrap. Maps to exit code 3.
type UpstreamError struct {
	Op   string // the operation that failed, e.g. "list commits"
	Repo string // repository in owner/name form
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s for %s: %v", e.Op, e.Repo, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidRepoError is returned when a repository identifier is not in
// 'owner/name' format.
type InvalidRepoError struct {
	Repo string
}

func (e *InvalidRepoError) Error() string {
	return fmt.Sprintf("invalid repository format: %q, expected 'owner/name'", e.Repo)
}

// ExitCode maps an error to the process exit status. Anything not covered by
// a dedicated code (usage mistakes, invalid flags, I/O problems writing the
// output file) falls through to 1.
func ExitCode(err error) int {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrMissingCredential):
		return 2
	case errors.As(err, &upstream):
		return 3
	default:
		return 1
	}
}
