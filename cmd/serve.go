package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cozyGalvinism/webgone/internal/api"
	"github.com/cozyGalvinism/webgone/internal/configuration"

	"github.com/spf13/cobra"
)

var serveListen string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the outage ledger over a read-only JSON API",
	Long: `Starts a local HTTP server exposing the recorded outages:
stats, recent outages, monthly groupings and the cost report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := configuration.Config.Settings
		if !cmd.Flags().Changed("listen") && settings.Listen != "" {
			serveListen = settings.Listen
		}

		db := openLedger()

		server := api.NewServer(serveListen, db)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			server.Shutdown()
		}()

		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", configuration.DefaultListenAddr, "Address to serve the API on")
}
