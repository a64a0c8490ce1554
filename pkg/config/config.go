package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Knowledge KnowledgeConfig
	Retrieval RetrievalConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig configures the editorial content store. The retrieval
// engine never touches Postgres; with Enabled false the service runs
// engine-only and the editorial routes are not mounted.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// KnowledgeConfig controls library resolution. RemoteURL is optional: when
// empty, remote fetching is skipped entirely and the bundled catalog is the
// library.
type KnowledgeConfig struct {
	RemoteURL    string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
}

type RetrievalConfig struct {
	MaxMatches int
}

func Load() (*Config, error) {
	// Try to load .env from the working directory or the project root;
	// absence is fine, plain environment variables work too.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	cacheTTL, _ := strconv.Atoi(getEnv("KNOWLEDGE_CACHE_TTL_SECONDS", "60"))
	fetchTimeout, _ := strconv.Atoi(getEnv("KNOWLEDGE_FETCH_TIMEOUT_SECONDS", "5"))
	maxMatches, _ := strconv.Atoi(getEnv("RETRIEVAL_MAX_MATCHES", "4"))
	dbEnabled := getEnv("DB_ENABLED", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  dbEnabled,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "spa_concierge"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Knowledge: KnowledgeConfig{
			RemoteURL:    getEnv("KNOWLEDGE_REMOTE_URL", ""),
			CacheTTL:     time.Duration(cacheTTL) * time.Second,
			FetchTimeout: time.Duration(fetchTimeout) * time.Second,
		},
		Retrieval: RetrievalConfig{
			MaxMatches: maxMatches,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
