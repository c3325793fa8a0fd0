package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config adalah seluruh konfigurasi aplikasi. Dibangun sekali di main,
// lalu dioper eksplisit ke assembler — tanpa global mutable state.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	AccessTokenTTL time.Duration

	ViewsDir  string
	UploadDir string
}

// LoadEnv memuat .env bila ada; di environment deploy cukup ENV sistem.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func Load() *Config {
	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "physiocare"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret:      GetEnv("JWT_SECRET"),
		AccessTokenTTL: envDuration("ACCESS_TOKEN_TTL_MINUTES", 60),

		ViewsDir:  GetEnv("VIEWS_DIR", "./views"),
		UploadDir: GetEnv("UPLOAD_DIR", "./public/uploads"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	return cfg
}

// DSN membangun connection string Postgres + statement_timeout.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=physiocare&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func envDuration(key string, defMinutes int) time.Duration {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(defMinutes) * time.Minute
}
