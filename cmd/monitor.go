package cmd

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/cozyGalvinism/webgone/internal/configuration"
	"github.com/cozyGalvinism/webgone/internal/monitor"
	"github.com/cozyGalvinism/webgone/internal/probe"

	"github.com/spf13/cobra"
)

var (
	monitorIP       string
	monitorPort     int
	monitorInterval int
	monitorTimeout  int
)

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch for internet outages",
	Long: `The 'monitor' command starts the connectivity watcher.
It probes the target endpoint on a fixed interval and records every outage
interval in the database. Runs until interrupted.

Example:
  webgone monitor --ip 1.1.1.1 --port 53 --interval 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := configuration.Config.Settings
		if !cmd.Flags().Changed("ip") && settings.Target != "" {
			monitorIP = settings.Target
		}
		if !cmd.Flags().Changed("port") && settings.Port != 0 {
			monitorPort = settings.Port
		}
		if !cmd.Flags().Changed("interval") && settings.Interval != 0 {
			monitorInterval = settings.Interval
		}
		if !cmd.Flags().Changed("timeout") && settings.Timeout != 0 {
			monitorTimeout = settings.Timeout
		}

		if err := validateMonitorOptions(monitorInterval, monitorTimeout); err != nil {
			return err
		}

		db := openLedger()

		addr := net.JoinHostPort(monitorIP, strconv.Itoa(monitorPort))
		prober := probe.TCP{Timeout: time.Duration(monitorTimeout) * time.Second}

		watcher := monitor.New(db, prober, addr, time.Duration(monitorInterval)*time.Second)

		return watcher.Start()
	},
}

// validateMonitorOptions rejects probe timings that would either panic the
// ticker or turn the probe into an unbounded dial.
func validateMonitorOptions(intervalSeconds, timeoutSeconds int) error {
	if intervalSeconds <= 0 {
		return fmt.Errorf("probe interval must be a positive number of seconds, got %d", intervalSeconds)
	}
	if timeoutSeconds <= 0 {
		return fmt.Errorf("probe timeout must be a positive number of seconds, got %d", timeoutSeconds)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().StringVarP(&monitorIP, "ip", "i", configuration.DefaultTargetIP, "IP address to check")
	monitorCmd.Flags().IntVarP(&monitorPort, "port", "p", configuration.DefaultTargetPort, "Port to check")
	monitorCmd.Flags().IntVarP(&monitorInterval, "interval", "I", int(configuration.DefaultInterval.Seconds()), "Probe interval in seconds")
	monitorCmd.Flags().IntVar(&monitorTimeout, "timeout", int(configuration.DefaultProbeTimeout.Seconds()), "Probe timeout in seconds")
}
