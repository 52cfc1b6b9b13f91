package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv loads .env files into the environment. Missing files are ignored,
// variables set by other means win.
func LoadEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}
