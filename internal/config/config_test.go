package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	d := t.TempDir()
	if err := os.Chdir(d); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return d
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	d := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("# local overrides\nMOCKGEN_MOCKS_DIR=/srv/mocks\nMOCKGEN_LOG_LEVEL=\"debug\"\nexport MOCKGEN_SEED=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOCKGEN_MOCKS_DIR", "")
	t.Setenv("MOCKGEN_LOG_LEVEL", "")
	t.Setenv("MOCKGEN_SEED", "")
	_ = os.Unsetenv("MOCKGEN_MOCKS_DIR")
	_ = os.Unsetenv("MOCKGEN_LOG_LEVEL")
	_ = os.Unsetenv("MOCKGEN_SEED")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MocksDir != "/srv/mocks" {
		t.Fatalf("expected MOCKGEN_MOCKS_DIR from .env, got %q", cfg.MocksDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected MOCKGEN_LOG_LEVEL from .env, got %q", cfg.LogLevel)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %v", cfg.Seed)
	}
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	d := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("MOCKGEN_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOCKGEN_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected environment value, got %q", cfg.LogLevel)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"MOCKGEN_MOCKS_DIR", "MOCKGEN_GENERATORS_FILE", "MOCKGEN_LOG_LEVEL", "MOCKGEN_SEED"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MocksDir != "./mocks" || cfg.LogLevel != "info" || cfg.GeneratorsFile != "" || cfg.Seed != nil {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_RejectsBadSeed(t *testing.T) {
	chdirTemp(t)
	t.Setenv("MOCKGEN_SEED", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable MOCKGEN_SEED")
	}
}

func TestLoad_RejectsMalformedDotEnv(t *testing.T) {
	d := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("MOCKGEN_LOG_LEVEL=\"debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOCKGEN_LOG_LEVEL", "")
	_ = os.Unsetenv("MOCKGEN_LOG_LEVEL")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unterminated quote in .env")
	}
}
