package cmd

import (
	"fmt"
	"os"

	"github.com/cozyGalvinism/webgone/internal/configuration"
	"github.com/cozyGalvinism/webgone/internal/storage"
	applog "github.com/cozyGalvinism/webgone/pkg/log"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const VERSION = "1.0.0"

// Constants for exit codes
const (
	ExitErrorInvalidArgs = 1
	ExitErrorStorage     = 2
	ExitErrorConfig      = 3
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webgone",
	Short: "Track and analyze internet outages",
	Long: `A command-line tool that watches internet connectivity, records every
outage in a local ledger and derives statistics and cost reports from it.

Usage: webgone [--database=path/to/outages.db] monitor`,
	Version: VERSION,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(ExitErrorConfig)
		}

		settings := configuration.Config.Settings
		if !cmd.Flags().Changed("log-file") && settings.LogFile != "" {
			configuration.Config.LogFile = settings.LogFile
		}
		if !cmd.Flags().Changed("log-level") && settings.LogLevel != "" {
			configuration.Config.LogLevel = settings.LogLevel
		}

		applog.InitLogger(configuration.Config.LogFile)
		applog.SetLogLevel(configuration.Config.LogLevel)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(ExitErrorInvalidArgs)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configuration.Config.ConfigFile, "config", "c", configuration.CONFIG_PATH, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&configuration.Config.DBFile, "database", configuration.DB_PATH, "Path to the outage database file")
	rootCmd.PersistentFlags().StringVar(&configuration.Config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configuration.Config.LogFile, "log-file", "", "Duplicate log output into this file")
}

// loadSettings reads the optional YAML configuration file. A missing file
// is only an error when the operator pointed at one explicitly.
func loadSettings(cmd *cobra.Command) error {
	path := configuration.Config.ConfigFile

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			return nil
		}
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(&configuration.Config.Settings)
}

// databasePath resolves the ledger location: flag, then config file, then
// the built-in default.
func databasePath() string {
	if rootCmd.PersistentFlags().Changed("database") {
		return configuration.Config.DBFile
	}
	if path := configuration.Config.Settings.Database; path != "" {
		return path
	}
	return configuration.Config.DBFile
}

// openLedger opens the outage ledger or exits with a storage error.
func openLedger() *storage.Database {
	db, err := storage.Initialize(databasePath())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize outage database")
		os.Exit(ExitErrorStorage)
	}
	return db
}
