package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// MalformedRecordError reports a persisted timestamp that no longer parses
// as a timezone-aware RFC3339 instant. It is surfaced instead of skipping
// the row, since a silently dropped row would corrupt every aggregate.
type MalformedRecordError struct {
	RowID  uint
	Column string
	Value  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("outage %d has malformed %s %q: %v", e.RowID, e.Column, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Database is the append-only outage ledger. It is the single durable store
// of closed outage intervals; open intervals live only in the monitor.
type Database struct {
	DB *gorm.DB
}

// Initialize opens the ledger at path, creating the file and schema when
// absent. It is safe to call on every startup.
func Initialize(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	// One writer at a time. A single connection also keeps the in-memory
	// database used in tests on one backing store.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.Outage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &Database{DB: db}, nil
}

// InitializeTestDatabase opens an in-memory ledger for tests.
func InitializeTestDatabase() (*Database, error) {
	return Initialize(":memory:")
}

// Append durably stores one closed outage interval. The row's ID is filled
// in on success.
func (d *Database) Append(outage *models.Outage) error {
	if outage.StartTime == "" || outage.EndTime == "" {
		return fmt.Errorf("refusing to append outage with empty timestamps")
	}
	if outage.DurationSeconds < 0 {
		return fmt.Errorf("refusing to append outage with negative duration %d", outage.DurationSeconds)
	}

	if err := d.DB.Create(outage).Error; err != nil {
		return fmt.Errorf("failed to append outage: %w", err)
	}

	return nil
}

// Stats aggregates the whole ledger. An empty ledger yields a zero count
// and zero aggregates rather than nulls.
func (d *Database) Stats() (models.OutageStats, error) {
	var stats models.OutageStats

	err := d.DB.Model(&models.Outage{}).
		Select(`COUNT(*) AS total_outages,
			COALESCE(SUM(duration_seconds), 0) AS total_duration,
			COALESCE(AVG(duration_seconds), 0) AS average_duration,
			COALESCE(MAX(duration_seconds), 0) AS longest_outage,
			COALESCE(MIN(duration_seconds), 0) AS shortest_outage`).
		Scan(&stats).Error
	if err != nil {
		return models.OutageStats{}, fmt.Errorf("failed to aggregate outage stats: %w", err)
	}

	return stats, nil
}

// Recent returns up to limit records ordered by start time, newest first.
// A limit of zero or less yields an empty result.
func (d *Database) Recent(limit int) ([]models.OutageRecord, error) {
	if limit <= 0 {
		return []models.OutageRecord{}, nil
	}

	var rows []models.Outage
	if err := d.DB.Order("start_time DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query recent outages: %w", err)
	}

	return parseRows(rows)
}

// AllOrdered returns the full ledger ascending by start time, for export.
func (d *Database) AllOrdered() ([]models.OutageRecord, error) {
	var rows []models.Outage
	if err := d.DB.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query outages: %w", err)
	}

	return parseRows(rows)
}

// Monthly groups outages by the calendar year and month of their start
// time, newest group first. Grouping slices the stored local-offset text
// directly, so a record is bucketed by the wall-clock month it was written
// with, not its UTC equivalent.
func (d *Database) Monthly() ([]models.MonthlyOutage, error) {
	var groups []models.MonthlyOutage

	err := d.DB.Model(&models.Outage{}).
		Select(`CAST(substr(start_time, 1, 4) AS INTEGER) AS year,
			CAST(substr(start_time, 6, 2) AS INTEGER) AS month,
			COUNT(*) AS num_outages,
			COALESCE(SUM(duration_seconds), 0) AS total_seconds`).
		Group("year, month").
		Order("year DESC, month DESC").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group outages by month: %w", err)
	}

	return groups, nil
}

func parseRows(rows []models.Outage) ([]models.OutageRecord, error) {
	records := make([]models.OutageRecord, 0, len(rows))
	for _, row := range rows {
		record, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row models.Outage) (models.OutageRecord, error) {
	start, err := time.Parse(time.RFC3339, row.StartTime)
	if err != nil {
		return models.OutageRecord{}, &MalformedRecordError{
			RowID:  row.ID,
			Column: "start_time",
			Value:  row.StartTime,
			Err:    err,
		}
	}

	end, err := time.Parse(time.RFC3339, row.EndTime)
	if err != nil {
		return models.OutageRecord{}, &MalformedRecordError{
			RowID:  row.ID,
			Column: "end_time",
			Value:  row.EndTime,
			Err:    err,
		}
	}

	return models.OutageRecord{
		ID:              row.ID,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: row.DurationSeconds,
	}, nil
}
