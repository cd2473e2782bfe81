package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the runtime settings read from the environment
type Config struct {
	AwkBinary    string
	Target       string // posix, windows or empty for the running platform
	PreviewLines int
	OutputFormat string
	LogLevel     string
}

// Load reads an optional .env file from the working directory and then the
// AWKSTUDIO_* environment variables. Variables already set in the
// environment take precedence over the .env file.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		AwkBinary:    cast.ToString(getOrReturnDefaultValue("AWKSTUDIO_AWK", "awk")),
		Target:       cast.ToString(getOrReturnDefaultValue("AWKSTUDIO_TARGET", "")),
		PreviewLines: cast.ToInt(getOrReturnDefaultValue("AWKSTUDIO_PREVIEW_LINES", 10)),
		OutputFormat: cast.ToString(getOrReturnDefaultValue("AWKSTUDIO_FORMAT", "text")),
		LogLevel:     cast.ToString(getOrReturnDefaultValue("AWKSTUDIO_LOG_LEVEL", "warn")),
	}
}

func getOrReturnDefaultValue(key string, defaultValue interface{}) interface{} {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultValue
}
