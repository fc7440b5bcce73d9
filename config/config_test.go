package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/notice-board/utils"
)

func TestLoadDefaults(t *testing.T) {
	utils.InitLogger()
	for _, key := range []string{"SECRET_KEY", "DB_PORT", "DB_DRIVER", "PORT", "DB_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, defaultSecretKey, cfg.SecretKey)
	assert.Equal(t, 26713, cfg.DBPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "noticeboard.db", cfg.DBPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	utils.InitLogger()
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "board")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "notices")

	cfg := Load()
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, 3307, cfg.DBPort)

	dsn := cfg.MySQLDSN()
	assert.Contains(t, dsn, "board:pw@tcp(db.internal:3307)/notices")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestLoadIgnoresInvalidPort(t *testing.T) {
	utils.InitLogger()
	t.Setenv("DB_PORT", "not-a-port")

	cfg := Load()
	assert.Equal(t, defaultDBPort, cfg.DBPort)
}
