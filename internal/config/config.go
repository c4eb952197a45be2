package config

import (
	"errors"

	"github.com/spf13/viper"
)

var cfg = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("WORDLISTER")
	v.AutomaticEnv()
	v.SetConfigName("wordlister")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/wordlister")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT", "wordlist.txt")
	v.SetDefault("ARCHIVE_PATH", ".wordlister/archive")
	return v
}

// Load reads the optional wordlister.yaml config file. A missing file is not an error.
func Load() error {
	err := cfg.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Get ...
func Get(key string) string {
	return cfg.GetString(key)
}

// GetOrDefault ...
func GetOrDefault(key, def string) string {
	env := cfg.GetString(key)
	if env != "" {
		return env
	}
	return def
}
