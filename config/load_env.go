package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads .env into the process environment. A missing file is fine;
// the OS environment is used as-is.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}
