package configuration

import "time"

const (
	CONFIG_PATH = "webgone.yaml"
	DB_PATH     = "internet_outages.db"

	DefaultTargetIP     = "8.8.8.8"
	DefaultTargetPort   = 53
	DefaultInterval     = 5 * time.Second
	DefaultProbeTimeout = 1 * time.Second
	DefaultRecentLimit  = 5
	DefaultCurrency     = "€"
	DefaultListenAddr   = "127.0.0.1:8090"
)

// Settings mirrors the optional YAML configuration file. Every field is a
// fallback for the matching command-line flag; zero values mean "not set".
type Settings struct {
	Database    string  `mapstructure:"database" yaml:"database,omitempty"`
	Target      string  `mapstructure:"target" yaml:"target,omitempty"`
	Port        int     `mapstructure:"port" yaml:"port,omitempty"`
	Interval    int     `mapstructure:"interval" yaml:"interval,omitempty"`
	Timeout     int     `mapstructure:"timeout" yaml:"timeout,omitempty"`
	MonthlyRate float64 `mapstructure:"monthly_rate" yaml:"monthly_rate,omitempty"`
	Currency    string  `mapstructure:"currency" yaml:"currency,omitempty"`
	Listen      string  `mapstructure:"listen" yaml:"listen,omitempty"`
	LogLevel    string  `mapstructure:"log_level" yaml:"log_level,omitempty"`
	LogFile     string  `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// AppConfig holds the resolved configuration for one invocation.
type AppConfig struct {
	ConfigFile string
	DBFile     string
	LogLevel   string
	LogFile    string
	Settings   Settings
}

var Config AppConfig
