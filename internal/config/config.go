package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool
	ServerPort   string
	LogLevel     string
	CORSOrigins  []string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	SessionSecret  string
	SessionName    = "tracker_session"
	SessionTTL     = 24 * time.Hour
	SessionBackend string
	SessionSweep   time.Duration
	Issuer         = "support-tracker"

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioSkipTLS   bool
	MinioBucket    string

	AttachmentMaxBytes int64
	WatchInterval      time.Duration

	AdminEmail    string
	AdminPassword string
	SeedFile      string
)

// DefaultStatuses are seeded in this order so the first one becomes the
// default status of new tickets.
var DefaultStatuses = []string{"ToDo", "InProgress", "Ready For Review", "Done"}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppEnv = getEnv("APP_ENV", "development")
	IsProduction = AppEnv == "production"
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"))

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "support_tracker")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	SessionSecret = getEnv("SESSION_SECRET", "defaultsecret")
	SessionName = getEnv("SESSION_NAME", "tracker_session")
	SessionTTL = getDuration("SESSION_TTL", 24*time.Hour)
	SessionBackend = getEnv("SESSION_BACKEND", "db")
	SessionSweep = getDuration("SESSION_SWEEP_INTERVAL", time.Hour)
	Issuer = getEnv("ISSUER", "support-tracker")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "ticket-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioSkipTLS, _ = strconv.ParseBool(getEnv("MINIO_INSECURE_SKIP_VERIFY", "false"))

	AttachmentMaxBytes, err = strconv.ParseInt(getEnv("ATTACHMENT_MAX_BYTES", "10485760"), 10, 64)
	if err != nil || AttachmentMaxBytes <= 0 {
		AttachmentMaxBytes = 10 << 20
	}
	WatchInterval = getDuration("WATCH_INTERVAL", 5*time.Second)

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@example.com")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
	SeedFile = getEnv("SEED_FILE", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
