package config

import (
	"net"
	"os"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/notice-board/utils"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultSecretKey = "my_super_secret_key_12345"
	defaultDBPort    = 26713
	defaultPort      = "5000"
	defaultDBPath    = "noticeboard.db"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	SecretKey string
	Port      string
	GinMode   string

	DBDriver   string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	AdminUsername string
	AdminPassword string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := &Config{
		SecretKey:     getEnv("SECRET_KEY", defaultSecretKey),
		Port:          getEnv("PORT", defaultPort),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      getEnv("DB_DRIVER", DriverMySQL),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        defaultDBPort,
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPath:        getEnv("DB_PATH", defaultDBPath),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if raw := os.Getenv("DB_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorLogger.Warnf("Invalid DB_PORT %q, using %d", raw, defaultDBPort)
		} else {
			cfg.DBPort = port
		}
	}

	if cfg.SecretKey == defaultSecretKey {
		utils.ErrorLogger.Warn("SECRET_KEY not set, using the built-in development key")
	}
	return cfg
}

// MySQLDSN builds the driver DSN from the DB_* settings.
func (c *Config) MySQLDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func (c *Config) SQLiteDSN() string {
	return c.DBPath + "?_foreign_keys=on&_busy_timeout=5000"
}

// Dialector returns a fresh gorm dialector for the configured driver.
func (c *Config) Dialector() gorm.Dialector {
	switch c.DBDriver {
	case DriverSQLite:
		return sqlite.Open(c.SQLiteDSN())
	default:
		return gormmysql.Open(c.MySQLDSN())
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
