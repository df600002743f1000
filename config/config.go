package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is assembled once at process start and passed down explicitly.
type Config struct {
	AppPort string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Connection pool sizing. MaxOpenConns = baseline pool + overflow.
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret    string
	JWTExpiry    time.Duration
	BcryptCost   int
	WorkdayStart string // HH:MM, check-ins after this are "late"

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailEnabled  bool
}

func Load() Config {
	return Config{
		AppPort: GetEnv("APP_PORT", "3000"),

		DBUser:     GetEnv("DB_USER", "root"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "3306"),
		DBName:     GetEnv("DB_NAME", "hrm_db"),

		DBMaxOpenConns:    GetEnvAsInt("DB_MAX_OPEN_CONNS", 15),
		DBMaxIdleConns:    GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: time.Duration(GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,

		JWTSecret:    GetEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiry:    time.Duration(GetEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		BcryptCost:   GetEnvAsInt("BCRYPT_COST", 10),
		WorkdayStart: GetEnv("WORKDAY_START", "08:00"),

		SMTPHost:     GetEnv("SMTP_HOST", "localhost"),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		MailFrom:     GetEnv("MAIL_FROM", "hr@example.com"),
		MailEnabled:  GetEnvAsBool("MAIL_ENABLED", false),
	}
}

// DSN builds the MySQL connection string.
// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
