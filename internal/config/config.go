// Package config loads Syntara settings from defaults, rc files, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/suchetkumbar/Syntara/internal/discovery"
	"github.com/suchetkumbar/Syntara/internal/generator"
	"github.com/suchetkumbar/Syntara/internal/similarity"
)

// EnvPrefix prefixes every environment variable Syntara reads.
const EnvPrefix = "SYNTARA"

// ConfigFiles are searched in the working directory, in order.
var ConfigFiles = []string{".syntararc.json", ".syntararc.yaml", ".syntararc.yml"}

// Formats lists the accepted output formats.
var Formats = []string{"console", "json", "markdown"}

// FailOnLevels lists the accepted fail-on thresholds.
var FailOnLevels = []string{"error", "warning", "info", "never"}

// Config represents the Syntara configuration.
type Config struct {
	Format      string          `mapstructure:"format"`
	Output      string          `mapstructure:"output"`
	FailOn      string          `mapstructure:"failOn"`
	Quiet       bool            `mapstructure:"quiet"`
	Verbose     bool            `mapstructure:"verbose"`
	Library     string          `mapstructure:"library"`
	Exclude     []string        `mapstructure:"exclude"`
	Concurrency int             `mapstructure:"concurrency"`
	Search      SearchConfig    `mapstructure:"search"`
	Optimizer   OptimizerConfig `mapstructure:"optimizer"`
	Generator   GeneratorConfig `mapstructure:"generator"`

	// ConfigFile is the rc file that was read, empty when none was found.
	ConfigFile string `mapstructure:"-"`
}

// SearchConfig holds similarity search settings.
type SearchConfig struct {
	Limit     int     `mapstructure:"limit"`
	Threshold float64 `mapstructure:"threshold"`
}

// OptimizerConfig holds the default target model.
type OptimizerConfig struct {
	Model string `mapstructure:"model"`
}

// GeneratorConfig holds the default generation strategy.
type GeneratorConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "console")
	v.SetDefault("output", "")
	v.SetDefault("failOn", "error")
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("library", "")
	v.SetDefault("exclude", slices.Clone(discovery.DefaultExcludes))
	v.SetDefault("concurrency", 4)
	v.SetDefault("search.limit", similarity.DefaultLimit)
	v.SetDefault("search.threshold", similarity.DefaultThreshold)
	v.SetDefault("optimizer.model", "gpt-4o")
	v.SetDefault("generator.strategy", string(generator.StrategyStandard))
}

// LoadConfig loads configuration into the global viper instance. configFile
// names an explicit rc file; when empty the default names are tried in the
// working directory.
func LoadConfig(configFile string) (*Config, error) {
	return Load(viper.GetViper(), configFile)
}

// Load reads configuration into v. Precedence, highest first: flags bound
// on v, SYNTARA_* environment variables (a .env file in the working
// directory fills unset ones), the rc file, defaults.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	used, err := readConfigFile(v, configFile)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.ConfigFile = used
	config.Format = strings.ToLower(config.Format)
	config.FailOn = strings.ToLower(config.FailOn)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func readConfigFile(v *viper.Viper, configFile string) (string, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
		return configFile, nil
	}

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !slices.Contains(Formats, config.Format) {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if !slices.Contains(FailOnLevels, config.FailOn) {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'error', 'warning', 'info', or 'never'", config.FailOn)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if config.Search.Limit < 1 {
		return fmt.Errorf("search.limit must be at least 1")
	}

	if config.Search.Threshold < 0 || config.Search.Threshold > 1 {
		return fmt.Errorf("search.threshold must be between 0 and 1, got %g", config.Search.Threshold)
	}

	if _, err := generator.ParseStrategy(config.Generator.Strategy); err != nil {
		return err
	}

	return nil
}
