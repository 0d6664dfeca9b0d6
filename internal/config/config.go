package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Port     string
	LogLevel zerolog.Level

	TickInterval time.Duration
	AnimStep     int
	CellSize     int

	ScoreStore           string
	SQLitePath           string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string

	AllowedOrigins []string
}

// LoadConfig reads a .env file if present, then the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Warn().Str("value", os.Getenv("LOG_LEVEL")).Msg("invalid LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}

	allowedOrigins := []string{
		"http://localhost:5173", // local front-end development
	}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	return &Config{
		Port:     GetEnv("PORT", "8080"),
		LogLevel: level,

		TickInterval: time.Duration(GetEnvAsPositiveInt("TICK_INTERVAL_MS", 12)) * time.Millisecond,
		AnimStep:     GetEnvAsPositiveInt("ANIM_STEP", 18),
		CellSize:     GetEnvAsPositiveInt("CELL_SIZE", 92),

		ScoreStore:           strings.ToLower(GetEnv("SCORE_STORE", StoreSQLite)),
		SQLitePath:           GetEnv("SQLITE_PATH", "connect4.db"),
		DatabaseURL:          GetEnv("DATABASE_URL", ""),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 2),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisURL:             GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),

		AllowedOrigins: allowedOrigins,
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.ScoreStore {
	case StoreMemory, StoreSQLite, StoreRedis:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("SCORE_STORE=%s needs DATABASE_URL", c.ScoreStore)
		}
	default:
		return fmt.Errorf("unknown score store %q (want %s, %s, %s or %s)",
			c.ScoreStore, StoreMemory, StoreSQLite, StorePostgres, StoreRedis)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for sizes and intervals, where zero
// or less would stall the animation.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Warn().Str("key", key).Int("value", value).Int("default", defaultValue).Msg("value must be positive, using default")
		return defaultValue
	}
	return value
}
