package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// chdirTemp runs the test from an empty directory so no stray .env or
// passgen.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWT.Expiry != 24*time.Hour {
		t.Errorf("JWT.Expiry = %v, want 24h", cfg.JWT.Expiry)
	}
	if cfg.Generator.DefaultLength != 12 || cfg.Generator.MaxLength != 128 {
		t.Errorf("Generator = %+v, want 12/128", cfg.Generator)
	}
	if cfg.Shell.MinLength != 8 || cfg.Shell.MaxLength != 50 {
		t.Errorf("Shell = %+v, want 8-50", cfg.Shell)
	}
	if !cfg.Clipboard.Enabled {
		t.Error("Clipboard.Enabled = false, want true")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PASSGEN_PORT", "9090")
	t.Setenv("PASSGEN_SHELL_MAX_LENGTH", "64")
	t.Setenv("PASSGEN_JWT_EXPIRY", "2h")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Shell.MaxLength != 64 {
		t.Errorf("Shell.MaxLength = %d, want 64", cfg.Shell.MaxLength)
	}
	if cfg.JWT.Expiry != 2*time.Hour {
		t.Errorf("JWT.Expiry = %v, want 2h", cfg.JWT.Expiry)
	}
}

func TestLoadFileAndFlags(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "port: \"7000\"\nlog:\n  level: debug\nclipboard:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "8080", "")
	flags.String("log-level", "info", "")
	if err := flags.Parse([]string{"--port", "7500"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "7500" {
		t.Errorf("Port = %q, want flag value 7500", cfg.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want file value debug", cfg.Log.Level)
	}
	if cfg.Clipboard.Enabled {
		t.Error("Clipboard.Enabled = true, want false from file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PASSGEN_ENV=staging\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PASSGEN_ENV") })

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Env != "staging" {
		t.Errorf("Env = %q, want staging", cfg.Env)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	if _, err := Load("does-not-exist.yaml", nil); err == nil {
		t.Error("Load() expected error for missing explicit config file")
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PASSGEN_ENV", "production")

	if _, err := Load("", nil); !errors.Is(err, ErrInsecureSecret) {
		t.Fatalf("Load() error = %v, want %v", err, ErrInsecureSecret)
	}

	t.Setenv("PASSGEN_JWT_SECRET", "a-real-secret")
	if _, err := Load("", nil); err != nil {
		t.Errorf("Load() unexpected error with secret set: %v", err)
	}
}

func TestLoadRejectsBadShellRange(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PASSGEN_SHELL_MIN_LENGTH", "20")
	t.Setenv("PASSGEN_SHELL_MAX_LENGTH", "10")

	if _, err := Load("", nil); !errors.Is(err, ErrInvalidLimits) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidLimits)
	}
}

func TestLoadCrossSectionLimits(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "default above max",
			env:     map[string]string{"PASSGEN_GENERATOR_DEFAULT_LENGTH": "200"},
			wantErr: true,
		},
		{
			name:    "shell max above generator max",
			env:     map[string]string{"PASSGEN_SHELL_MAX_LENGTH": "500"},
			wantErr: true,
		},
		{
			name:    "shell max equal to generator max",
			env:     map[string]string{"PASSGEN_SHELL_MAX_LENGTH": "128"},
			wantErr: false,
		},
		{
			name: "uncapped generator",
			env: map[string]string{
				"PASSGEN_GENERATOR_MAX_LENGTH":     "0",
				"PASSGEN_GENERATOR_DEFAULT_LENGTH": "200",
				"PASSGEN_SHELL_MAX_LENGTH":         "500",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("", nil)
			if tt.wantErr && !errors.Is(err, ErrInvalidLimits) {
				t.Errorf("Load() error = %v, want %v", err, ErrInvalidLimits)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Load() unexpected error: %v", err)
			}
		})
	}
}
