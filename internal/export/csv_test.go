package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVSingleRecord(t *testing.T) {
	start, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00+00:00")
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, "2024-01-01T00:05:00+00:00")
	require.NoError(t, err)

	records := []models.OutageRecord{
		{StartTime: start, EndTime: end, DurationSeconds: 300},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	// A zero offset renders as the RFC3339 "Z" form.
	expected := "Start Time,End Time,Duration (seconds)\n" +
		"2024-01-01T00:00:00Z,2024-01-01T00:05:00Z,300\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVPreservesOffset(t *testing.T) {
	zone := time.FixedZone("", 2*60*60)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, zone)
	end := start.Add(5 * time.Minute)

	records := []models.OutageRecord{
		{StartTime: start, EndTime: end, DurationSeconds: 300},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	expected := "Start Time,End Time,Duration (seconds)\n" +
		"2024-01-01T00:00:00+02:00,2024-01-01T00:05:00+02:00,300\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "Start Time,End Time,Duration (seconds)\n", buf.String())
}

func TestWriteCSVKeepsOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.OutageRecord{
		{StartTime: base, EndTime: base.Add(time.Minute), DurationSeconds: 60},
		{StartTime: base.Add(time.Hour), EndTime: base.Add(time.Hour + time.Minute), DurationSeconds: 60},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "2024-01-01T00:00:00Z")
	assert.Contains(t, string(lines[2]), "2024-01-01T01:00:00Z")
}
