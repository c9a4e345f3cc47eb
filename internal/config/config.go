// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	apperrors "github.com/zorak1103/wordpass/internal/errors"
	"github.com/zorak1103/wordpass/internal/passphrase"
)

// Configuration keys. Each is also the long flag name and, upper-cased with
// the WORDPASS_ prefix, the environment variable name.
const (
	KeyCount      = "count"
	KeyDictionary = "dictionary"
	KeySeparator  = "separator"
)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "WORDPASS"

// Config represents the layered settings before the dictionary is loaded.
type Config struct {
	Count      int    `mapstructure:"count"`
	Separator  string `mapstructure:"separator"`
	Dictionary string `mapstructure:"dictionary"` // path, empty = bundled list

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// RegisterFlags defines the passphrase flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP(KeyCount, "c", passphrase.DefaultCount, "number of words to select")
	fs.StringP(KeyDictionary, "d", "", "path to a newline-delimited word list (default: bundled list)")
	fs.StringP(KeySeparator, "s", passphrase.DefaultSeparator, "separator placed between words")
}

// Load merges defaults, the config file, environment variables and any
// changed flags in fs, lowest to highest priority. fs may be nil.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/wordpass")
		v.AddConfigPath("/etc/wordpass")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, &apperrors.ConfigurationError{
				ConfigPath: configFile,
				Err:        fmt.Errorf("error reading config file: %w", err),
			}
		}
		// Config file not found; using defaults, env vars and flags
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, fs); err != nil {
		return nil, &apperrors.ConfigurationError{ConfigPath: v.ConfigFileUsed(), Err: err}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: v.ConfigFileUsed(),
			Err:        fmt.Errorf("error unmarshaling config: %w", err),
		}
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCount, passphrase.DefaultCount)
	v.SetDefault(KeySeparator, passphrase.DefaultSeparator)
	v.SetDefault(KeyDictionary, "") // Required for AutomaticEnv to work
}

// bindFlags makes flags that were set on the command line override every
// other source. Unset flags fall through to env, file and defaults.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for _, key := range []string{KeyCount, KeySeparator, KeyDictionary} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", key, err)
		}
	}
	return nil
}

// Validate ensures values are within valid ranges.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return &apperrors.ConfigurationError{
			ConfigPath: c.ConfigFilePath,
			Key:        KeyCount,
			Err:        fmt.Errorf("count must not be negative, got %d", c.Count),
		}
	}
	return nil
}
