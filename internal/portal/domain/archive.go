package domain

import "time"

// RetentionYears is how long archived rows are kept before they become
// eligible for deletion.
const RetentionYears = 7

// RetentionDeadline returns the delete_after_date for a row created at t.
func RetentionDeadline(t time.Time) time.Time {
	return t.AddDate(RetentionYears, 0, 0)
}

type ArchivedClient struct {
	Client
	ArchivedAt      time.Time
	ArchivedBy      string
	DeleteAfterDate time.Time
}

type ArchivedDocument struct {
	Document
	ArchivedAt      time.Time
	DeleteAfterDate time.Time
}

type ArchivedReport struct {
	Report
	ArchivedAt      time.Time
	DeleteAfterDate time.Time
}

// ArchiveResult summarizes one archive operation.
type ArchiveResult struct {
	ClientID          string
	DocumentsArchived int
	ReportsArchived   int
	DeleteAfterDate   time.Time
}
