package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_NAME", "JWT_EXPIRY_HOURS", "BCRYPT_COST", "WORKDAY_START", "MAIL_ENABLED"} {
		t.Setenv(key, "") // register restore, then drop the variable entirely
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "hrm_db", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "08:00", cfg.WorkdayStart)
	assert.False(t, cfg.MailEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "hrm")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "hrm_prod")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("MAIL_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.MailEnabled)
	assert.Equal(t, "hrm:secret@tcp(db.internal:3307)/hrm_prod?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("SOME_BOOL", "1")
	assert.True(t, GetEnvAsBool("SOME_BOOL", false))

	t.Setenv("SOME_BOOL", "nope")
	assert.True(t, GetEnvAsBool("SOME_BOOL", true))
}
