package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string
	Env  string

	DBDriver    string
	DatabaseURL string
	DBLogLevel  string

	MongoURI      string
	MongoDatabase string

	JWTSecret               string
	TokenTTL                time.Duration
	FirebaseCredentialsPath string

	CORSAllowedOrigins []string

	StorageBackend string
	MediaRoot      string
	MediaURL       string
	S3Bucket       string
	S3Region       string
	S3PublicURL    string
	MaxUploadBytes int64

	RedisAddr       string
	RedisPassword   string
	AnonRateLimit   int
	UserRateLimit   int
	RateLimitWindow time.Duration

	LogLevel string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		DBDriver:                getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:             getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=portfolio port=5432 sslmode=disable"),
		DBLogLevel:              getEnv("DB_LOG_LEVEL", "warn"),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "portfolio"),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),
		TokenTTL:                getEnvDuration("TOKEN_TTL", 72*time.Hour),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		CORSAllowedOrigins:      getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		StorageBackend:          getEnv("STORAGE_BACKEND", "local"),
		MediaRoot:               getEnv("MEDIA_ROOT", "./media"),
		MediaURL:                getEnv("MEDIA_URL", "/media/"),
		S3Bucket:                getEnv("S3_BUCKET", ""),
		S3Region:                getEnv("S3_REGION", "us-west-1"),
		S3PublicURL:             getEnv("S3_PUBLIC_URL", ""),
		MaxUploadBytes:          int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		AnonRateLimit:           getEnvInt("RATE_LIMIT_ANON", 100),
		UserRateLimit:           getEnvInt("RATE_LIMIT_USER", 1000),
		RateLimitWindow:         getEnvDuration("RATE_LIMIT_WINDOW", time.Hour),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
