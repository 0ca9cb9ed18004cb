package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName        string `envconfig:"DB_NAME" default:"orders"`
	DBSslMode     string `envconfig:"DB_SSLMODE" default:"disable"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SellerReactionTimeout time.Duration `envconfig:"SELLER_REACTION_TIMEOUT" default:"10m"`
	CourierArrivalTimeout time.Duration `envconfig:"COURIER_ARRIVAL_TIMEOUT" default:"30m"`
	TimerScanInterval     time.Duration `envconfig:"TIMER_SCAN_INTERVAL" default:"1m"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errList = append(errList, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}
	if c.SellerReactionTimeout <= 0 {
		errList = append(errList, errors.New("SELLER_REACTION_TIMEOUT must be positive"))
	}
	if c.CourierArrivalTimeout <= 0 {
		errList = append(errList, errors.New("COURIER_ARRIVAL_TIMEOUT must be positive"))
	}
	if c.TimerScanInterval <= 0 {
		errList = append(errList, errors.New("TIMER_SCAN_INTERVAL must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
