package config

import (
	"os"
	"sync"
)

// Environment variables read at startup.
const (
	EnvEntrypoint = "APP_ENTRYPOINT"
	EnvMode       = "MODE"
)

// ModeDevelopment is the MODE value that turns on debug mode.
const ModeDevelopment = "development"

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	// Entrypoint selects the extension: ext.app.<Entrypoint>
	Entrypoint string
	Mode       string
}

// Debug reports whether MODE selects development mode.
func (c *Config) Debug() bool {
	return c.Mode == ModeDevelopment
}

// FromEnv reads the configuration from the process environment.
func FromEnv() *Config {
	return &Config{
		Entrypoint: os.Getenv(EnvEntrypoint),
		Mode:       os.Getenv(EnvMode),
	}
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = FromEnv()
	})
	return AppConfig
}
