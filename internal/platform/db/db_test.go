package db

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
version: "1.0"
mode: dev
http:
  addr: ":3000"
database:
  host: db.internal
  port: 3306
  user: ebd
  password: secret
  dbname: ebd
database_test:
  host: localhost
  port: 3306
  user: ebd_test
  password: test
  dbname: ebd_test
auth:
  secret: changeme
  required: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Mode != "dev" {
		t.Errorf("mode = %q, want dev", cfg.Mode)
	}
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("addr = %q, want :3000", cfg.HTTP.Addr)
	}
	if cfg.DB.DBName != "ebd" || cfg.TestDB.DBName != "ebd_test" {
		t.Errorf("unexpected db names: %q / %q", cfg.DB.DBName, cfg.TestDB.DBName)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	t.Setenv("APP_MODE", "release")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PASSWORD", "prod-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Mode != "release" {
		t.Errorf("mode = %q, want release", cfg.Mode)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.DB.Password != "prod-secret" {
		t.Errorf("password override not applied")
	}
}

func TestActiveDB(t *testing.T) {
	cfg := &Config{
		Mode:   "dev",
		DB:     DatabaseConfig{DBName: "real"},
		TestDB: DatabaseConfig{DBName: "test"},
	}
	if got := cfg.ActiveDB().DBName; got != "test" {
		t.Errorf("dev mode selected %q, want test", got)
	}
	cfg.Mode = "release"
	if got := cfg.ActiveDB().DBName; got != "real" {
		t.Errorf("release mode selected %q, want real", got)
	}
	// unknown modes must never reach the real data
	cfg.Mode = "staging"
	if got := cfg.ActiveDB().DBName; got != "test" {
		t.Errorf("unknown mode selected %q, want test", got)
	}
}
