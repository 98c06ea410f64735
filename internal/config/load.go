package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// ALGOLAB_ITERATIONS=50.
const EnvPrefix = "ALGOLAB"

// Config holds the resolved settings for a session.
type Config struct {
	MaxSize     int      `mapstructure:"max_size" validate:"min=100,max=20000,step=100"`
	Iterations  int      `mapstructure:"iterations" validate:"min=1,max=1000"`
	Seed        int64    `mapstructure:"seed"`
	Show        []string `mapstructure:"show" validate:"min=1,dive,oneof=iterative recursive sort"`
	MetricsAddr string   `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
	LogFile     string   `mapstructure:"log_file"`
	LogFormat   string   `mapstructure:"log_format" validate:"oneof=text json"`
	Verbose     bool     `mapstructure:"verbose"`
	Trace       Trace    `mapstructure:"trace"`
}

// Trace configures the step player.
type Trace struct {
	Speed    time.Duration `mapstructure:"speed" validate:"min=100ms,max=10s"`
	MinSpeed time.Duration `mapstructure:"min_speed" validate:"min=10ms"`
	SpeedUp  time.Duration `mapstructure:"speed_up" validate:"min=1ms"`
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("max_size", 5000)
	viper.SetDefault("iterations", 10)
	viper.SetDefault("seed", 0)
	viper.SetDefault("show", []string{"iterative", "recursive", "sort"})
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("trace.speed", 500*time.Millisecond)
	viper.SetDefault("trace.min_speed", 100*time.Millisecond)
	viper.SetDefault("trace.speed_up", 200*time.Millisecond)
}

// Init wires viper to the config file, .env and environment. An explicit
// cfgFile must exist; the implicit ./config.yaml is optional.
func Init(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// Current decodes and validates the settings viper currently holds.
func Current() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load runs Init followed by Current.
func Load(cfgFile string) (*Config, error) {
	if err := Init(cfgFile); err != nil {
		return nil, err
	}
	return Current()
}
