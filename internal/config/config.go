package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Dashboard DashboardConfig
	Feed      FeedConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	LogLevel           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowOrigins   []string
	RateLimitPerSecond int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DashboardConfig controls how raw feeds are rendered.
type DashboardConfig struct {
	Locale           string
	Timezone         string
	CashflowMonths   int
	DefaultPageLimit int
	MaxPageLimit     int
}

// FeedConfig controls where feeds come from and how long snapshots live.
type FeedConfig struct {
	Directory               string
	Lenient                 bool
	BankDirectoryPath       string
	SnapshotRetention       time.Duration
	PruneSchedule           string
	BreakerFailureThreshold int
	BreakerSuccessThreshold int
	BreakerTimeout          time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: failed to read .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			LogLevel:           getEnv("LOG_LEVEL", "info"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:    getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "monetrix"),
			Password:        getEnv("DB_PASSWORD", "monetrix"),
			Name:            getEnv("DB_NAME", "monetrix"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Dashboard: DashboardConfig{
			Locale:           getEnv("DASHBOARD_LOCALE", "ru"),
			Timezone:         getEnv("DASHBOARD_TIMEZONE", "UTC"),
			CashflowMonths:   getIntEnv("DASHBOARD_CASHFLOW_MONTHS", 3),
			DefaultPageLimit: getIntEnv("DASHBOARD_DEFAULT_PAGE_LIMIT", 50),
			MaxPageLimit:     getIntEnv("DASHBOARD_MAX_PAGE_LIMIT", 500),
		},
		Feed: FeedConfig{
			Directory:               getEnv("FEED_DIR", "data/feeds"),
			Lenient:                 getBoolEnv("FEED_LENIENT", false),
			BankDirectoryPath:       getEnv("FEED_BANK_DIRECTORY", "config/banks.yaml"),
			SnapshotRetention:       getDurationEnv("FEED_SNAPSHOT_RETENTION", 30*24*time.Hour),
			PruneSchedule:           getEnv("FEED_PRUNE_SCHEDULE", "0 3 * * *"),
			BreakerFailureThreshold: getIntEnv("FEED_BREAKER_FAILURE_THRESHOLD", 5),
			BreakerSuccessThreshold: getIntEnv("FEED_BREAKER_SUCCESS_THRESHOLD", 2),
			BreakerTimeout:          getDurationEnv("FEED_BREAKER_TIMEOUT", 30*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT must not be empty"))
	}
	if c.Server.RateLimitPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %d", c.Server.RateLimitPerSecond))
	}
	if c.Dashboard.Locale != "ru" && c.Dashboard.Locale != "en" {
		errs = append(errs, fmt.Errorf("DASHBOARD_LOCALE must be ru or en, got %q", c.Dashboard.Locale))
	}
	if _, err := c.Dashboard.Location(); err != nil {
		errs = append(errs, fmt.Errorf("DASHBOARD_TIMEZONE: %w", err))
	}
	if c.Dashboard.CashflowMonths <= 0 {
		errs = append(errs, fmt.Errorf("DASHBOARD_CASHFLOW_MONTHS must be positive, got %d", c.Dashboard.CashflowMonths))
	}
	if c.Dashboard.DefaultPageLimit <= 0 || c.Dashboard.DefaultPageLimit > c.Dashboard.MaxPageLimit {
		errs = append(errs, fmt.Errorf("DASHBOARD_DEFAULT_PAGE_LIMIT must be between 1 and %d, got %d",
			c.Dashboard.MaxPageLimit, c.Dashboard.DefaultPageLimit))
	}
	if c.Feed.SnapshotRetention <= 0 {
		errs = append(errs, errors.New("FEED_SNAPSHOT_RETENTION must be positive"))
	}
	if c.Feed.BreakerFailureThreshold <= 0 || c.Feed.BreakerSuccessThreshold <= 0 {
		errs = append(errs, errors.New("FEED_BREAKER thresholds must be positive"))
	}

	return errors.Join(errs...)
}

// Location resolves the configured timezone.
func (c *DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the DSN in the URL form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
