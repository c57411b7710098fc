package report

import (
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"
)

// MonthCost is the derived cost line for one calendar month.
type MonthCost struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	NumOutages         int64   `json:"num_outages"`
	TotalSeconds       int64   `json:"total_seconds"`
	DowntimePercentage float64 `json:"downtime_percentage"`
	Cost               float64 `json:"cost"`
	HourlyRate         float64 `json:"hourly_rate"`
}

// Summary rolls all month lines up. Months is zero when the ledger holds
// no outages; callers report that explicitly instead of dividing.
type Summary struct {
	Months                  int     `json:"months"`
	TotalSeconds            int64   `json:"total_seconds"`
	TotalCost               float64 `json:"total_cost"`
	AvgCostPerMonth         float64 `json:"avg_cost_per_month"`
	TotalDowntimeHours      float64 `json:"total_downtime_hours"`
	AvgMonthlyDowntimeHours float64 `json:"avg_monthly_downtime_hours"`
	CostPerDowntimeHour     float64 `json:"cost_per_downtime_hour"`
}

// Build derives per-month downtime cost lines and the rollup from monthly
// outage groups and a monthly rate. The currency label is presentation
// only and handled by callers.
func Build(monthly []models.MonthlyOutage, monthlyRate float64) ([]MonthCost, Summary) {
	costs := make([]MonthCost, 0, len(monthly))
	var summary Summary

	for _, group := range monthly {
		days := DaysInMonth(group.Year, group.Month)
		secondsInMonth := float64(days) * 24 * 60 * 60

		line := MonthCost{
			Year:               group.Year,
			Month:              group.Month,
			NumOutages:         group.NumOutages,
			TotalSeconds:       group.TotalSeconds,
			DowntimePercentage: float64(group.TotalSeconds) / secondsInMonth * 100,
			Cost:               float64(group.TotalSeconds) / secondsInMonth * monthlyRate,
			HourlyRate:         monthlyRate / (float64(days) * 24),
		}
		costs = append(costs, line)

		summary.TotalCost += line.Cost
		summary.TotalSeconds += line.TotalSeconds
		summary.Months++
	}

	if summary.Months > 0 {
		summary.TotalDowntimeHours = float64(summary.TotalSeconds) / 3600
		summary.AvgCostPerMonth = summary.TotalCost / float64(summary.Months)
		summary.AvgMonthlyDowntimeHours = float64(summary.TotalSeconds) / float64(summary.Months) / 3600
		if summary.TotalSeconds > 0 {
			summary.CostPerDowntimeHour = summary.TotalCost / summary.TotalDowntimeHours
		}
	}

	return costs, summary
}

// DaysInMonth follows the proleptic Gregorian calendar.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsLeapYear applies the Gregorian leap rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthName returns the English month name, or "Unknown" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return time.Month(month).String()
}
