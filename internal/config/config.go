package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Reader
		Global
	}

	Reader struct {
		Format string // Book format used when no command is given
	}
	Global struct {
		Verbose bool // Log to stderr with file:line prefixes
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("verbose", false)

	return &Config{
		Reader: Reader{
			Format: v.GetString("FORMAT"),
		},
		Global: Global{
			Verbose: v.GetBool("VERBOSE"),
		},
	}
}
