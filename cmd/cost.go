package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cozyGalvinism/webgone/internal/configuration"
	"github.com/cozyGalvinism/webgone/internal/report"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var costCurrency string

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost RATE",
	Short: "Calculate cost impact of internet outages",
	Long: `Prorates a monthly subscription rate over the recorded downtime.
For every month with outages it prints the downtime percentage, the money
lost to downtime and the effective hourly rate, followed by a summary.

Example:
  webgone cost 49.99 --currency $`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid monthly rate %q: %w", args[0], err)
		}

		settings := configuration.Config.Settings
		if !cmd.Flags().Changed("currency") && settings.Currency != "" {
			costCurrency = settings.Currency
		}

		db := openLedger()

		groups, err := db.Monthly()
		if err != nil {
			log.Error().Err(err).Msg("Failed to group outages by month")
			os.Exit(ExitErrorStorage)
		}

		months, summary := report.Build(groups, rate)

		fmt.Println("\nMonthly Cost Analysis:")

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Year", "Month", "Outages", "Total Time", "% Downtime", "Cost Impact", "Rate/Hour"})
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
		})

		for _, month := range months {
			table.Append([]string{
				strconv.Itoa(month.Year),
				report.MonthName(month.Month),
				strconv.FormatInt(month.NumOutages, 10),
				formatHMS(month.TotalSeconds),
				fmt.Sprintf("%.3f%%", month.DowntimePercentage),
				fmt.Sprintf("%s%.3f", costCurrency, month.Cost),
				fmt.Sprintf("%s%.3f/h", costCurrency, month.HourlyRate),
			})
		}

		table.Render()

		if summary.Months == 0 {
			fmt.Println("\nNo outages recorded yet.")
			fmt.Println()
			return nil
		}

		summaryTable := tablewriter.NewWriter(os.Stdout)
		summaryTable.SetHeader([]string{"Metric", "Value"})
		summaryTable.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		summaryTable.AppendBulk([][]string{
			{"Total cost of outages", fmt.Sprintf("%s%.3f", costCurrency, summary.TotalCost)},
			{"Average monthly cost", fmt.Sprintf("%s%.3f", costCurrency, summary.AvgCostPerMonth)},
			{"Total downtime", fmt.Sprintf("%.1f hours (%.1f hours/month avg)", summary.TotalDowntimeHours, summary.AvgMonthlyDowntimeHours)},
			{"Cost per hour of downtime", fmt.Sprintf("%s%.3f/h", costCurrency, summary.CostPerDowntimeHour)},
		})

		fmt.Println("\nSummary:")
		summaryTable.Render()
		fmt.Println()

		return nil
	},
}

func formatHMS(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func init() {
	rootCmd.AddCommand(costCmd)
	costCmd.Flags().StringVarP(&costCurrency, "currency", "C", configuration.DefaultCurrency, "Currency symbol")
}
