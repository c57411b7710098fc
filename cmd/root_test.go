package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cozyGalvinism/webgone/internal/configuration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webgone.yaml")
	content := "target: 1.1.1.1\ninterval: 10\nmonthly_rate: 49.99\ncurrency: $\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	previous := configuration.Config
	defer func() { configuration.Config = previous }()
	configuration.Config = configuration.AppConfig{ConfigFile: path}

	require.NoError(t, loadSettings(rootCmd))

	settings := configuration.Config.Settings
	assert.Equal(t, "1.1.1.1", settings.Target)
	assert.Equal(t, 10, settings.Interval)
	assert.Equal(t, 49.99, settings.MonthlyRate)
	assert.Equal(t, "$", settings.Currency)
}

func TestLoadSettingsMissingDefaultFileIsSkipped(t *testing.T) {
	previous := configuration.Config
	defer func() { configuration.Config = previous }()
	configuration.Config = configuration.AppConfig{
		ConfigFile: filepath.Join(t.TempDir(), "does-not-exist.yaml"),
	}

	// Without an explicit --config flag a missing file is not an error.
	assert.NoError(t, loadSettings(rootCmd))
	assert.Equal(t, configuration.Settings{}, configuration.Config.Settings)
}
