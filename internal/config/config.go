package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	LoadDefault()

	configFile := os.Getenv("ROSTER_CONFIG_FILE")
	if configFile == "" {
		configFile = "roster.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file: %v, using defaults", err)
	}

	ApplyEnvOverrides()
}

func LoadDefault() {
	config := defaultConfig
	_loaded = &config
}

// LoadFromFile loads configuration from a YAML file, merging it over the defaults
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	_loaded = &cfg
	return nil
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Log: logConfig{
			Level:  "info",
			Format: "json",
		},
		Report: reportConfig{
			Locale: "en",
		},
	},
}

type Common struct {
	Log    logConfig    `yaml:"log"`
	Report reportConfig `yaml:"report"`
	Seed   []SeedUser   `yaml:"seed"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type reportConfig struct {
	// BCP 47 tag of the report language, e.g. "en" or "pt-BR"
	Locale string `yaml:"locale"`
}

// SeedUser is a user created at startup
type SeedUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Age   *int   `yaml:"age"`
	Admin bool   `yaml:"admin"`
}

// there should be a getter for each top level field in the config struct.
// these getters will panic if the config has not been loaded.

func Logger() logConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Log
}

func Report() reportConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Report
}

func Seed() []SeedUser {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Seed
}

func Get() *Config {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded
}

func ApplyEnvOverrides() {
	if _loaded == nil {
		return
	}

	if level := os.Getenv("ROSTER_LOG_LEVEL"); level != "" {
		_loaded.Common.Log.Level = level
	}
	if format := os.Getenv("ROSTER_LOG_FORMAT"); format != "" {
		_loaded.Common.Log.Format = format
	}
	if locale := os.Getenv("ROSTER_LOCALE"); locale != "" {
		_loaded.Common.Report.Locale = locale
	}
}
