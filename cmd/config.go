package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"careshare/internal/adapters/out/notifier"
	"careshare/internal/core/application/usecases/commands"
	"careshare/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort    string
	StoreDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	NatsURL           string
	NatsSubjectPrefix string

	NotifierQueueSize int
	NotifierWorkers   int
	NotifierTimeout   time.Duration

	ConflictMaxRetries uint64
	StatsCron          string
}

// LoadConfig reads envFile into the process environment when it exists and
// then builds the Config from the environment. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	defaults := notifier.DefaultConfig()
	config := Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		StoreDriver:       envOr("STORE_DRIVER", StoreDriverPostgres),
		DBHost:            envOr("DB_HOST", "localhost"),
		DBPort:            envOr("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		NatsURL:           os.Getenv("NATS_URL"),
		NatsSubjectPrefix: envOr("NATS_SUBJECT_PREFIX", "careshare"),
		StatsCron:         envOr("STATS_CRON", jobs.DefaultStatsSchedule),
	}

	var errList []error
	var err error
	if config.NotifierQueueSize, err = intEnv("NOTIFIER_QUEUE_SIZE", defaults.QueueSize); err != nil {
		errList = append(errList, err)
	}
	if config.NotifierWorkers, err = intEnv("NOTIFIER_WORKERS", defaults.Workers); err != nil {
		errList = append(errList, err)
	}
	if config.NotifierTimeout, err = durationEnv("NOTIFIER_TIMEOUT", defaults.DeliveryTimeout); err != nil {
		errList = append(errList, err)
	}
	retries, err := intEnv("CONFLICT_MAX_RETRIES", commands.DefaultConflictRetries)
	if err != nil {
		errList = append(errList, err)
	}
	config.ConflictMaxRetries = uint64(max(retries, 0))

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var errList []error
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBUser == "" || c.DBName == "" {
			errList = append(errList, errors.New("DB_USER and DB_NAME are required for the postgres store"))
		}
	case StoreDriverMemory:
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER %q is not one of postgres, memory", c.StoreDriver))
	}
	if c.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}
	if c.NotifierQueueSize <= 0 || c.NotifierWorkers <= 0 {
		errList = append(errList, errors.New("NOTIFIER_QUEUE_SIZE and NOTIFIER_WORKERS must be positive"))
	}
	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string for the gorm driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) NotifierConfig() notifier.Config {
	return notifier.Config{
		QueueSize:       c.NotifierQueueSize,
		Workers:         c.NotifierWorkers,
		DeliveryTimeout: c.NotifierTimeout,
	}
}

func envOr(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
