package models

import "time"

// Outage is one closed outage interval as persisted in the ledger.
// Timestamps are stored as RFC3339 text so the recorded offset survives the
// round trip through SQLite. Rows are immutable once inserted; the ledger is
// append-only and has no update or delete path.
type Outage struct {
	ID              uint   `json:"-" gorm:"primaryKey"`
	StartTime       string `json:"start_time" gorm:"not null;index"`
	EndTime         string `json:"end_time" gorm:"not null"`
	DurationSeconds int64  `json:"duration_seconds" gorm:"not null"`
}

func (Outage) TableName() string {
	return "outages"
}

// NewOutage formats a closed interval for insertion.
func NewOutage(start, end time.Time, durationSeconds int64) Outage {
	return Outage{
		StartTime:       start.Format(time.RFC3339),
		EndTime:         end.Format(time.RFC3339),
		DurationSeconds: durationSeconds,
	}
}

// OutageRecord is the parsed, in-memory view of an Outage row.
type OutageRecord struct {
	ID              uint      `json:"-"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int64     `json:"duration_seconds"`
}

// OutageStats aggregates the whole ledger. All fields are zero on an empty
// ledger, never null.
type OutageStats struct {
	TotalOutages    int64   `json:"total_outages"`
	TotalDuration   int64   `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
	LongestOutage   int64   `json:"longest_outage"`
	ShortestOutage  int64   `json:"shortest_outage"`
}

// MonthlyOutage groups outages by the calendar month of their start time.
type MonthlyOutage struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	NumOutages   int64 `json:"num_outages"`
	TotalSeconds int64 `json:"total_seconds"`
}
