package internal

import (
	"os"
	"strconv"

	"github.com/DukeRupert/pageturn/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Optional. When empty the catalog is served from memory.
	DatabaseUrl string
	SeedItems   int // Number of generated items for the in-memory catalog

	// Pagination
	PerPage        int
	PageRange      int
	QueryKey       string
	LinkSeparator  string
	LinkClassOn    string // Class for clickable page links
	LinkClassOff   string // Class for the current page marker
	InputSeparator string // Text between the jump form input and the page count

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		DatabaseUrl: os.Getenv("DATABASE_URL"),
		SeedItems:   getEnvInt("SEED_ITEMS", 127),

		PerPage:        getEnvInt("PER_PAGE", 10),
		PageRange:      getEnvInt("PAGE_RANGE", 10),
		QueryKey:       getEnv("QUERY_KEY", "page"),
		LinkSeparator:  getEnvRaw("LINK_SEPARATOR", " "),
		LinkClassOn:    getEnv("LINK_CLASS_ON", "px-3 py-1 rounded text-blue-600 hover:bg-gray-100"),
		LinkClassOff:   getEnv("LINK_CLASS_OFF", "px-3 py-1 rounded bg-blue-600 text-white"),
		InputSeparator: getEnv("INPUT_SEPARATOR", "of"),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that would make every page render fail.
func (c *Config) Validate() error {
	const op = "config"

	if c.PerPage < 1 {
		return domain.InvalidConfiguration(op, "PER_PAGE must be at least 1, got %d", c.PerPage)
	}
	if c.PageRange < 1 {
		return domain.InvalidConfiguration(op, "PAGE_RANGE must be at least 1, got %d", c.PageRange)
	}
	if c.SeedItems < 0 {
		return domain.InvalidConfiguration(op, "SEED_ITEMS must not be negative, got %d", c.SeedItems)
	}
	if c.Port < 1 || c.Port > 65535 {
		return domain.InvalidConfiguration(op, "PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvRaw is getEnv for values where whitespace is meaningful.
func getEnvRaw(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
