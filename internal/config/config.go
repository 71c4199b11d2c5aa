package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"NOUGHTS_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"NOUGHTS_LOG_FORMAT" env-default:"json"`
	LogFile   string `yaml:"log-file" env:"NOUGHTS_LOG_FILE" env-default:"noughts.log"`
	UI        UI     `yaml:"ui"`
}

type UI struct {
	Title string `yaml:"title" env:"NOUGHTS_TITLE" env-default:"Noughts and Crosses"`
	// bool fields default to false, cleanenv cannot tell an explicit false from an unset value
	DisableMouse bool `yaml:"disable-mouse" env:"NOUGHTS_DISABLE_MOUSE"`
	Inline       bool `yaml:"inline" env:"NOUGHTS_INLINE"`
}

// Load reads the config file at path. A missing file falls back to the
// environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
