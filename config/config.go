package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Wizard   WizardConfig
	Backends BackendConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port     string
	LogLevel string
	GinMode  string
}

// WizardConfig 控制 wizard session 的生命週期與發佈行為
type WizardConfig struct {
	PublishRedirectDelay time.Duration
	SessionTTL           time.Duration
	JanitorInterval      time.Duration
	DraftTTL             time.Duration
	RequireValidPublish  bool
	OutboxSize           int
}

// BackendConfig 選擇 Submission Gateway 各部分的實作：memory / redis / postgres
type BackendConfig struct {
	Drafts   string
	Queue    string
	Listings string

	// 發佈隊列消費失敗的重試上限與第一次重試的等待時間
	QueueMaxRetries   int
	QueueRetryBackoff time.Duration
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Wizard:   GetWizardConfig(),
		Backends: GetBackendConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "0",
			LogLevel: "debug",
			GinMode:  "test",
		},
		Wizard: WizardConfig{
			PublishRedirectDelay: 20 * time.Millisecond,
			SessionTTL:           time.Minute,
			JanitorInterval:      10 * time.Millisecond,
			DraftTTL:             time.Hour,
			RequireValidPublish:  false,
			OutboxSize:           16,
		},
		Backends: BackendConfig{
			Drafts:            BackendMemory,
			Queue:             BackendMemory,
			Listings:          BackendMemory,
			QueueMaxRetries:   3,
			QueueRetryBackoff: 10 * time.Millisecond,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433", // 測試 DB 用 5433 port
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // 測試 Redis 用 6380 port
			Password: "",
			DB:       1,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		GinMode:  getEnv("GIN_MODE", "release"),
	}
}

func GetWizardConfig() WizardConfig {
	return WizardConfig{
		PublishRedirectDelay: getDuration("PUBLISH_REDIRECT_DELAY", 2*time.Second),
		SessionTTL:           getDuration("SESSION_TTL", 2*time.Hour),
		JanitorInterval:      getDuration("SESSION_JANITOR_INTERVAL", time.Minute),
		DraftTTL:             getDuration("DRAFT_TTL", 30*24*time.Hour),
		RequireValidPublish:  getBool("REQUIRE_VALID_PUBLISH", false),
		OutboxSize:           getInt("NOTIFICATION_OUTBOX_SIZE", 32),
	}
}

func GetBackendConfig() BackendConfig {
	return BackendConfig{
		Drafts:            getEnv("DRAFT_BACKEND", BackendMemory),
		Queue:             getEnv("QUEUE_BACKEND", BackendMemory),
		Listings:          getEnv("LISTING_BACKEND", BackendMemory),
		QueueMaxRetries:   getInt("QUEUE_MAX_RETRIES", 5),
		QueueRetryBackoff: getDuration("QUEUE_RETRY_BACKOFF", time.Second),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		panic(err)
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		panic(err)
	}
	return value
}
