package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cozyGalvinism/webgone/internal/configuration"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// setConfigCmd represents the set-config command
var setConfigCmd = &cobra.Command{
	Use:   "set-config JSON",
	Short: "Reads a JSON string, converts it to YAML, and saves it to the configuration file",
	Long: `Takes a JSON settings document as an argument, validates it against the
known configuration keys and writes it to the configuration file in YAML format.

Example:
  webgone set-config '{"target":"1.1.1.1","interval":10,"monthly_rate":49.99}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewBufferString(args[0])); err != nil {
			return fmt.Errorf("error while reading JSON: %w", err)
		}

		var settings configuration.Settings
		if err := v.Unmarshal(&settings); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		yamlData, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("error marshalling to YAML: %w", err)
		}

		if err := os.WriteFile(configuration.Config.ConfigFile, yamlData, 0644); err != nil {
			return fmt.Errorf("error writing YAML file: %w", err)
		}

		fmt.Printf("Configuration written to %s\n", configuration.Config.ConfigFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setConfigCmd)
}
