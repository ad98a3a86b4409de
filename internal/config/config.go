package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MocksDir       string
	GeneratorsFile string
	LogLevel       string
	Seed           *int64
}

// Load reads MOCKGEN_* variables. Values from a .env file in the working
// directory fill in variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		MocksDir:       getEnv("MOCKGEN_MOCKS_DIR", "./mocks"),
		GeneratorsFile: getEnv("MOCKGEN_GENERATORS_FILE", ""),
		LogLevel:       getEnv("MOCKGEN_LOG_LEVEL", "info"),
	}
	if raw := getEnv("MOCKGEN_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MOCKGEN_SEED %q: %w", raw, err)
		}
		cfg.Seed = &seed
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
