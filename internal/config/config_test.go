package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// t.Setenv forbids t.Parallel, so these tests run sequentially

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CATALOGUE_HTTP_ADDR", "CATALOGUE_STORE", "CATALOGUE_CONFIG"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, ":50051", cfg.GRPCAddr)
	require.Equal(t, StoreSQLite, cfg.Store)
	require.Equal(t, "catalogue.db", cfg.SQLitePath)
	require.Equal(t, time.Minute, cfg.SweepInterval)
	require.Equal(t, "X-User", cfg.IdentityHeader)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CATALOGUE_CONFIG", "")
	t.Setenv("CATALOGUE_HTTP_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOGUE_STORE", "MEMORY")
	t.Setenv("CATALOGUE_SWEEP_INTERVAL", "30s")
	t.Setenv("CATALOGUE_IDENTITY_HEADER", "X-Caller")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, StoreMemory, cfg.Store)
	require.Equal(t, 30*time.Second, cfg.SweepInterval)
	require.Equal(t, "X-Caller", cfg.IdentityHeader)

	t.Setenv("CATALOGUE_HTTP_ADDR", "127.0.0.1:7000")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.HTTPAddr)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: memory\ngrpc_addr: \":6000\"\nsweep_interval: 5m\n"), 0o600))

	t.Setenv("CATALOGUE_CONFIG", path)
	t.Setenv("CATALOGUE_STORE", "")
	t.Setenv("CATALOGUE_GRPC_ADDR", "")
	t.Setenv("CATALOGUE_SWEEP_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.Store)
	require.Equal(t, ":6000", cfg.GRPCAddr)
	require.Equal(t, 5*time.Minute, cfg.SweepInterval)
}

func TestValidate(t *testing.T) {
	base := Config{Store: StoreMemory, IdentityHeader: "X-User"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "memory_ok", mutate: func(*Config) {}},
		{name: "unknown_store", mutate: func(c *Config) { c.Store = "redis" }, wantErr: true},
		{name: "mysql_without_dsn", mutate: func(c *Config) { c.Store = StoreMySQL }, wantErr: true},
		{name: "mysql_with_dsn", mutate: func(c *Config) { c.Store = StoreMySQL; c.MySQLDSN = "u:p@tcp(db)/c" }},
		{name: "sqlite_without_path", mutate: func(c *Config) { c.Store = StoreSQLite }, wantErr: true},
		{name: "empty_identity_header", mutate: func(c *Config) { c.IdentityHeader = "" }, wantErr: true},
		{name: "negative_sweep", mutate: func(c *Config) { c.SweepInterval = -time.Second }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
