// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"

	"github.com/ucp4496/data-collection-pipeline/internal/domain"
	minererrors "github.com/ucp4496/data-collection-pipeline/internal/errors"
	"github.com/ucp4496/data-collection-pipeline/internal/gateway"
)

// Miner is the use case for fetching and normalizing repository metadata.
// Each fetch is a pure function of its inputs plus the upstream source; no
// state is shared between invocations.
type Miner struct {
	source gateway.Source
	logger *log.Logger
}

// NewMiner creates a new Miner instance.
func NewMiner(source gateway.Source, logger *log.Logger) *Miner {
	return &Miner{
		source: source,
		logger: logger,
	}
}

// FetchCommits returns up to limit normalized commit records from the given
// repository, in upstream (newest-first) order. A negative limit means no
// limit; a limit of zero returns an empty table without touching the network.
// Pagination stops as soon as the limit is satisfied.
func (m *Miner) FetchCommits(ctx context.Context, repoID string, limit int) ([]domain.CommitRecord, error) {
	owner, name, err := splitRepoID(repoID)
	if err != nil {
		return nil, err
	}

	records := []domain.CommitRecord{}
	if limit == 0 {
		return records, nil
	}

	m.logger.Printf("Fetching commits from %s...", repoID)
	for commit, err := range m.source.Commits(ctx, owner, name) {
		if err != nil {
			return nil, err
		}
		records = append(records, toCommitRecord(commit))
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	m.logger.Printf("Fetched %d commits from %s.", len(records), repoID)
	return records, nil
}

// FetchIssues returns up to limit normalized issue records from the given
// repository, filtered by state ("all", "open" or "closed"; empty means
// "all"). Items with pull-request linkage are skipped before construction
// and do not count against the limit.
func (m *Miner) FetchIssues(ctx context.Context, repoID, state string, limit int) ([]domain.IssueRecord, error) {
	owner, name, err := splitRepoID(repoID)
	if err != nil {
		return nil, err
	}
	if state == "" {
		state = "all"
	}
	if state != "all" && state != "open" && state != "closed" {
		return nil, fmt.Errorf("invalid state filter %q, expected all, open or closed", state)
	}

	records := []domain.IssueRecord{}
	if limit == 0 {
		return records, nil
	}

	m.logger.Printf("Fetching issues from %s (state=%s)...", repoID, state)
	for issue, err := range m.source.Issues(ctx, owner, name, state) {
		if err != nil {
			return nil, err
		}
		if issue.IsPullRequest() {
			continue
		}
		records = append(records, toIssueRecord(issue))
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	m.logger.Printf("Fetched %d issues from %s.", len(records), repoID)
	return records, nil
}

// splitRepoID parses an 'owner/name' repository identifier.
func splitRepoID(repoID string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repoID, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", &minererrors.InvalidRepoError{Repo: repoID}
	}
	return owner, name, nil
}

// toCommitRecord normalizes one upstream commit. Author, email and date come
// from the authorship metadata and stay nil together when it is absent. The
// message keeps its first line only.
func toCommitRecord(commit *github.RepositoryCommit) domain.CommitRecord {
	record := domain.CommitRecord{SHA: commit.GetSHA()}

	commitData := commit.GetCommit()
	if author := commitData.GetAuthor(); author != nil {
		record.Author = author.Name
		record.Email = author.Email
		if author.Date != nil {
			record.Date = isoTimestamp(author.Date.Time)
		}
	}

	if message := commitData.GetMessage(); message != "" {
		record.Message = firstLine(message)
	}
	return record
}

// toIssueRecord normalizes one upstream issue. The caller has already
// excluded pull requests.
func toIssueRecord(issue *github.Issue) domain.IssueRecord {
	record := domain.IssueRecord{
		ID:       issue.GetID(),
		Number:   issue.GetNumber(),
		Title:    issue.GetTitle(),
		State:    issue.GetState(),
		Comments: issue.GetComments(),
	}
	if user := issue.GetUser(); user != nil {
		record.User = user.Login
	}
	if issue.CreatedAt != nil {
		record.CreatedAt = isoTimestamp(issue.CreatedAt.Time)
	}
	if issue.ClosedAt != nil {
		record.ClosedAt = isoTimestamp(issue.ClosedAt.Time)
	}
	if issue.CreatedAt != nil && issue.ClosedAt != nil {
		days := int(issue.ClosedAt.Time.Sub(issue.CreatedAt.Time) / (24 * time.Hour))
		record.OpenDurationDays = &days
	}
	return record
}

// isoTimestamp renders t as an ISO-8601 string without converting zones.
// GitHub reports times in UTC; those render with no offset suffix so the
// value round-trips the upstream timestamp text. Times carrying another
// offset keep it.
func isoTimestamp(t time.Time) *string {
	var s string
	if t.Location() == time.UTC {
		s = t.Format("2006-01-02T15:04:05")
	} else {
		s = t.Format("2006-01-02T15:04:05Z07:00")
	}
	return &s
}

// firstLine cuts message at the first line break, CR or LF.
func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimRight(line, "\r")
}
