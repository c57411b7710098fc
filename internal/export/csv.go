package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"
)

var header = []string{"Start Time", "End Time", "Duration (seconds)"}

// WriteCSV renders records as CSV: the fixed header line followed by one
// RFC3339/RFC3339/integer row per record, in the order given.
func WriteCSV(w io.Writer, records []models.OutageRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			strconv.FormatInt(record.DurationSeconds, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
