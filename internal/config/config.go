package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BOARDS"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	CORSAllowedOrigins []string
}

// LoadDotEnv reads .env into the process environment if the file exists.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
// BOARDS_DATABASE_HOST maps to database.host and so on.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.port", "8080")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "boards_user")
	v.SetDefault("database.password", "boards_pass")
	v.SetDefault("database.name", "boards_db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "boards.db")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load parses runtime configuration from viper.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServerPort:         v.GetString("http.port"),
		GinMode:            v.GetString("gin.mode"),
		LogLevel:           v.GetString("log.level"),
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("database.driver"))),
		DBHost:             v.GetString("database.host"),
		DBPort:             v.GetString("database.port"),
		DBUser:             v.GetString("database.user"),
		DBPassword:         v.GetString("database.password"),
		DBName:             v.GetString("database.name"),
		DBSSLMode:          v.GetString("database.sslmode"),
		DBPath:             v.GetString("database.path"),
		CORSAllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN builds a key/value DSN for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ServerPort) == "" {
		return errors.New("http.port is required")
	}
	switch c.DBDriver {
	case DriverPostgres:
		if strings.TrimSpace(c.DBHost) == "" || strings.TrimSpace(c.DBName) == "" {
			return errors.New("database.host and database.name are required for postgres")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("database.path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q (want %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	return nil
}
