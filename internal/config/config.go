package config

import (
	"errors"
	"os"
	"pokerdeck/internal/util"
	"pokerdeck/pkg/playable/scoregame"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the pokerdeck programs
type Config struct {
	loaded bool

	// Seed makes shuffles repeatable when > 0
	Seed int64             `yaml:"seed" envconfig:"seed"`
	Game scoregame.Options `yaml:"game" envconfig:"game"`
	Log  struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is specified
func DefaultConfig() Config {
	cfg := Config{
		Game: scoregame.DefaultOptions(),
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file named by POKERDECK_CONFIG_FILE
// (config.yaml if unset), then the environment. A .env file in the working
// directory is read into the environment first. Missing files are skipped.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("POKERDECK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("pokerdeck", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
