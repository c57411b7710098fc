package cmd

import (
	"fmt"
	"os"

	"github.com/cozyGalvinism/webgone/internal/export"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [output]",
	Short: "Export internet outages to a CSV file or stdout",
	Long: `Exports the full outage ledger as CSV, oldest outage first.
With an output path the data is written to that file, otherwise it is
printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openLedger()

		records, err := db.AllOrdered()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read outage ledger")
			os.Exit(ExitErrorStorage)
		}

		if len(args) == 0 {
			if err := export.WriteCSV(os.Stdout, records); err != nil {
				log.Error().Err(err).Msg("Failed to write CSV")
				os.Exit(ExitErrorStorage)
			}
			return
		}

		file, err := os.Create(args[0])
		if err != nil {
			log.Error().Err(err).Msgf("Failed to create %s", args[0])
			os.Exit(ExitErrorStorage)
		}
		defer file.Close()

		if err := export.WriteCSV(file, records); err != nil {
			log.Error().Err(err).Msg("Failed to write CSV")
			os.Exit(ExitErrorStorage)
		}

		fmt.Printf("Data exported to %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
