// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"iter"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	minererrors "github.com/ucp4496/data-collection-pipeline/internal/errors"
)

// Source defines the behavior of a gateway streaming raw repository data
// from GitHub. Each method returns a forward-only lazy sequence: items are
// yielded in API order across pages, and a consumer that stops iterating
// stops pagination, so no further requests are issued. A failed page fetch
// yields a single (nil, *UpstreamError) element and ends the sequence.
type Source interface {
	Commits(ctx context.Context, owner, repo string) iter.Seq2[*github.RepositoryCommit, error]
	Issues(ctx context.Context, owner, repo, state string) iter.Seq2[*github.Issue, error]
}

// GitHubGateway is the concrete implementation of the Source interface.
type GitHubGateway struct {
	restClient *github.Client
	pageSize   int
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token must be non-empty; it is rejected here so that library callers get
// the same missing-credential guarantee as the CLI, before any network use.
func NewGitHubGateway(token string, pageSize int, logger *log.Logger) (Source, error) {
	if token == "" {
		return nil, minererrors.ErrMissingCredential
	}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient: github.NewClient(httpClient),
		pageSize:   pageSize,
		logger:     logger,
	}, nil
}

// Commits streams the repository's commits newest-first, as GitHub lists them.
func (g *GitHubGateway) Commits(ctx context.Context, owner, repo string) iter.Seq2[*github.RepositoryCommit, error] {
	return func(yield func(*github.RepositoryCommit, error) bool) {
		opts := &github.CommitsListOptions{ListOptions: github.ListOptions{PerPage: g.pageSize}}
		for {
			g.logger.Printf("Fetching commits for %s/%s (page %d)...", owner, repo, opts.Page)
			commits, resp, err := g.restClient.Repositories.ListCommits(ctx, owner, repo, opts)
			if err != nil {
				yield(nil, &minererrors.UpstreamError{Op: "list commits", Repo: owner + "/" + repo, Err: err})
				return
			}
			for _, commit := range commits {
				if !yield(commit, nil) {
					return
				}
			}
			if resp.NextPage == 0 {
				return
			}
			opts.Page = resp.NextPage
		}
	}
}

// Issues streams the repository's issues under the given state filter
// ("all", "open" or "closed"). The stream is raw: items with pull-request
// linkage are still present and must be filtered by the consumer.
func (g *GitHubGateway) Issues(ctx context.Context, owner, repo, state string) iter.Seq2[*github.Issue, error] {
	return func(yield func(*github.Issue, error) bool) {
		opts := &github.IssueListByRepoOptions{
			State:       state,
			ListOptions: github.ListOptions{PerPage: g.pageSize},
		}
		for {
			g.logger.Printf("Fetching issues for %s/%s (state=%s, page %d)...", owner, repo, state, opts.Page)
			issues, resp, err := g.restClient.Issues.ListByRepo(ctx, owner, repo, opts)
			if err != nil {
				yield(nil, &minererrors.UpstreamError{Op: "list issues", Repo: owner + "/" + repo, Err: err})
				return
			}
			for _, issue := range issues {
				if !yield(issue, nil) {
					return
				}
			}
			if resp.NextPage == 0 {
				return
			}
			opts.Page = resp.NextPage
		}
	}
}
