package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCommitRecord_Row(t *testing.T) {
	t.Run("populated record", func(t *testing.T) {
		record := CommitRecord{
			SHA:     "sha1",
			Author:  strPtr("Alice"),
			Email:   strPtr("a@example.com"),
			Date:    strPtr("2025-09-25T12:30:45"),
			Message: "Initial commit",
		}

		row := record.Row()

		assert.Len(t, row, len(CommitHeader))
		assert.Equal(t, []string{"sha1", "Alice", "a@example.com", "2025-09-25T12:30:45", "Initial commit"}, row)
	})

	t.Run("nil fields render as empty cells", func(t *testing.T) {
		row := CommitRecord{SHA: "sha2"}.Row()

		assert.Equal(t, []string{"sha2", "", "", "", ""}, row)
	})
}

func TestIssueRecord_Row(t *testing.T) {
	t.Run("populated record", func(t *testing.T) {
		record := IssueRecord{
			ID:               12345,
			Number:           101,
			Title:            "Issue A",
			User:             strPtr("alice"),
			State:            "closed",
			CreatedAt:        strPtr("2025-09-20T10:00:00"),
			ClosedAt:         strPtr("2025-09-25T10:00:00"),
			Comments:         3,
			OpenDurationDays: intPtr(5),
		}

		row := record.Row()

		assert.Len(t, row, len(IssueHeader))
		assert.Equal(t, []string{"12345", "101", "Issue A", "alice", "closed", "2025-09-20T10:00:00", "2025-09-25T10:00:00", "3", "5"}, row)
	})

	t.Run("nil fields render as empty cells", func(t *testing.T) {
		row := IssueRecord{ID: 2, Number: 102, Title: "Open issue", State: "open"}.Row()

		assert.Equal(t, []string{"2", "102", "Open issue", "", "open", "", "", "0", ""}, row)
	})
}
