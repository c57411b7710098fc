package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics about internet outages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		db := openLedger()

		stats, err := db.Stats()
		if err != nil {
			log.Error().Err(err).Msg("Failed to aggregate outage statistics")
			os.Exit(ExitErrorStorage)
		}

		fmt.Println("\nInternet Outage Statistics:")
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total number of outages: %d\n", stats.TotalOutages)
		fmt.Printf("Total outage duration: %d seconds\n", stats.TotalDuration)
		fmt.Printf("Average outage duration: %.2f seconds\n", stats.AverageDuration)
		fmt.Printf("Longest outage: %d seconds\n", stats.LongestOutage)
		fmt.Printf("Shortest outage: %d seconds\n", stats.ShortestOutage)
		fmt.Println("--------------------------------------------------")
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
