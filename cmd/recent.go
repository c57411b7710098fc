package cmd

import (
	"os"
	"strconv"

	"github.com/cozyGalvinism/webgone/internal/configuration"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var recentLimit int

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "View recent internet outages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		db := openLedger()

		records, err := db.Recent(recentLimit)
		if err != nil {
			log.Error().Err(err).Msg("Failed to query recent outages")
			os.Exit(ExitErrorStorage)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Start Time", "End Time", "Duration (seconds)"})
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
		})

		for _, record := range records {
			table.Append([]string{
				record.StartTime.Format("2006-01-02 15:04:05"),
				record.EndTime.Format("2006-01-02 15:04:05"),
				strconv.FormatInt(record.DurationSeconds, 10),
			})
		}

		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "l", configuration.DefaultRecentLimit, "Amount of outages to display")
}
