package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret         string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	ServerPort        string
	Issuer            string
	AIEndpoint        string
	AIAPIKey          string
	AIModel           string
	AITimeout         time.Duration
	DefaultPriority   int
	KafkaBrokers      string
	KafkaTopic        string
	RedisAddr         string
	CatalogCacheTTL   time.Duration
	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioUseSSL       bool
	MinioBucket       string
	ServerCatalogPath string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gpu_reserve")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "gpu-reserve")

	AIEndpoint = getEnv("AI_ENDPOINT", "http://localhost:8000/v1/chat/completions")
	AIAPIKey = getEnv("AI_API_KEY", "")
	AIModel = getEnv("AI_MODEL", "gemini-pro")
	AITimeout = time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 20)) * time.Second
	DefaultPriority = getEnvInt("DEFAULT_PRIORITY", 50)

	KafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	KafkaTopic = getEnv("KAFKA_TOPIC", "reservation-events")

	RedisAddr = getEnv("REDIS_ADDR", "")
	CatalogCacheTTL = time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 30)) * time.Second

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "gpu-reserve-audit")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	ServerCatalogPath = getEnv("SERVER_CATALOG_PATH", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
