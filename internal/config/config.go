package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level linecount configuration.
type Config struct {
	// ExcludeDirs are directory base names to prune during the walk.
	ExcludeDirs []string `mapstructure:"exclude_dirs"`

	// IncludeExtensions restricts counting to the listed extensions.
	// Empty means "every extension the rule table recognizes".
	IncludeExtensions []string `mapstructure:"include_extensions"`

	// Language selects the report string table (en, chs, cht, ja).
	Language string `mapstructure:"language"`

	// CountUnknown counts unrecognized extensions as plain text.
	CountUnknown bool `mapstructure:"count_unknown"`

	// Jobs bounds classification parallelism; 0 means one per CPU.
	Jobs int `mapstructure:"jobs"`

	// Output holds output preferences.
	Output Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("include_extensions", []string{})
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("count_unknown", DefaultCountUnknown)
	v.SetDefault("jobs", DefaultJobs)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
