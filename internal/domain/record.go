// Package domain contains the core data structures for the application.
package domain

import "strconv"

// CommitHeader is the fixed column order for commit tables.
var CommitHeader = []string{"sha", "author", "email", "date", "message"}

// IssueHeader is the fixed column order for issue tables.
var IssueHeader = []string{"id", "number", "title", "user", "state", "created_at", "closed_at", "comments", "open_duration_days"}

// CommitRecord is one normalized commit row. Nullable fields are pointers;
// a nil value renders as an empty CSV cell. Author, Email and Date come from
// the commit's authorship metadata and are nil together when it is absent.
type CommitRecord struct {
	SHA     string
	Author  *string
	Email   *string
	Date    *string // ISO-8601 timestamp
	Message string  // first line of the commit message, never contains a line break
}

// Row projects the record into the cell order of CommitHeader.
func (r CommitRecord) Row() []string {
	return []string{r.SHA, deref(r.Author), deref(r.Email), deref(r.Date), r.Message}
}

// IssueRecord is one normalized issue row. Pull requests are filtered out
// before records of this type are ever constructed.
type IssueRecord struct {
	ID               int64
	Number           int
	Title            string
	User             *string // reporter login, nil when the reporter is absent
	State            string  // "open" or "closed"
	CreatedAt        *string // ISO-8601 timestamp
	ClosedAt         *string // ISO-8601 timestamp
	Comments         int
	OpenDurationDays *int // whole days open, nil unless both timestamps exist
}

// Row projects the record into the cell order of IssueHeader.
func (r IssueRecord) Row() []string {
	duration := ""
	if r.OpenDurationDays != nil {
		duration = strconv.Itoa(*r.OpenDurationDays)
	}
	return []string{
		strconv.FormatInt(r.ID, 10),
		strconv.Itoa(r.Number),
		r.Title,
		deref(r.User),
		r.State,
		deref(r.CreatedAt),
		deref(r.ClosedAt),
		strconv.Itoa(r.Comments),
		duration,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
