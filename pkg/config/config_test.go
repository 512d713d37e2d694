package config

import (
	"os"
	"path/filepath"
	"testing"

	"patternbook/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Environment != EnvDevelopment {
		t.Errorf("Environment = %q, want %q", c.Environment, EnvDevelopment)
	}
	if c.Text.Shift != 3 {
		t.Errorf("Text.Shift = %d, want 3", c.Text.Shift)
	}
	if c.Payments.Currency != "USD" {
		t.Errorf("Payments.Currency = %q, want USD", c.Payments.Currency)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if c != Default() {
		t.Errorf("Load = %+v, want defaults", c)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
environment = "production"

[text]
shift = 13

[payments]
currency = "EUR"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Environment != EnvProduction {
		t.Errorf("Environment = %q, want %q", c.Environment, EnvProduction)
	}
	if c.Text.Shift != 13 {
		t.Errorf("Text.Shift = %d, want 13", c.Text.Shift)
	}
	if c.Payments.Currency != "EUR" {
		t.Errorf("Payments.Currency = %q, want EUR", c.Payments.Currency)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("environment = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestProfilePath(t *testing.T) {
	cases := map[string]string{
		EnvDevelopment: "config/dev.toml",
		EnvTesting:     "config/test.toml",
		EnvProduction:  "config/prod.toml",
		"unknown":      "config/dev.toml",
	}
	for env, want := range cases {
		if got := ProfilePath(env); got != want {
			t.Errorf("ProfilePath(%q) = %q, want %q", env, got, want)
		}
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := Path()
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	want := filepath.Join("/tmp/xdg", "patternbook", "config.toml")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
