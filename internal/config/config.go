package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMySQL  = "mysql"
)

// Config holds application configuration
type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	Store           string
	SQLitePath      string
	MySQLDSN        string
	SweepInterval   time.Duration
	LogLevel        string
	IdentityHeader  string
	ShutdownTimeout time.Duration
}

// Load reads configuration from CATALOGUE_* environment variables and, when
// CATALOGUE_CONFIG names a file, from that file. Environment wins over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CATALOGUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grpc_addr", ":50051")
	v.SetDefault("store", StoreSQLite)
	v.SetDefault("sqlite_path", "catalogue.db")
	v.SetDefault("sweep_interval", time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("identity_header", "X-User")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTPAddr:        v.GetString("http_addr"),
		GRPCAddr:        v.GetString("grpc_addr"),
		Store:           strings.ToLower(v.GetString("store")),
		SQLitePath:      v.GetString("sqlite_path"),
		MySQLDSN:        v.GetString("mysql_dsn"),
		SweepInterval:   v.GetDuration("sweep_interval"),
		LogLevel:        v.GetString("log_level"),
		IdentityHeader:  v.GetString("identity_header"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	// PORT is honoured for platforms that only hand out a port number
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
		if p := v.GetString("port"); p != "" {
			cfg.HTTPAddr = ":" + p
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable together
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: sqlite store needs CATALOGUE_SQLITE_PATH")
		}
	case StoreMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("config: mysql store needs CATALOGUE_MYSQL_DSN")
		}
	default:
		return fmt.Errorf("config: unknown store %q (want memory, sqlite or mysql)", c.Store)
	}
	if c.IdentityHeader == "" {
		return fmt.Errorf("config: identity header must not be empty")
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("config: sweep interval must not be negative")
	}
	return nil
}
