package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sheet-template-api/internal/util"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	GeminiKey   string
	GeminiModel string
	GCPProject  string
	GCPLocation string

	AITimeout         time.Duration
	SchemaConcurrency int

	UploadsDir   string
	UploadBucket string

	CORSOrigins []string
	JWTSecret   string
	LogLevel    string
}

const (
	defaultPort        = "8080"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultAITimeout   = 60 * time.Second
	defaultUploadsDir  = "uploads"
)

// LoadConfig reads the process environment. Outside production a local .env
// file is loaded first when present; values already in the environment win.
func LoadConfig() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return Config{
		Port: getEnv("PORT", defaultPort),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GeminiKey:   os.Getenv("GEMINI_KEY"),
		GeminiModel: getEnv("GEMINI_MODEL", defaultGeminiModel),
		GCPProject:  os.Getenv("GCP_PROJECT"),
		GCPLocation: getEnv("GCP_LOCATION", "global"),

		AITimeout:         getDuration("AI_TIMEOUT", defaultAITimeout),
		SchemaConcurrency: getInt("SCHEMA_CONCURRENCY", 1),

		UploadsDir:   getEnv("UPLOADS_DIR", defaultUploadsDir),
		UploadBucket: os.Getenv("UPLOAD_BUCKET"),

		CORSOrigins: util.SplitCommaList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// DSN builds the key/value connection string used by the postgres driver.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
