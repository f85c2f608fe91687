package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type sampleConfig struct {
	Backend string        `split_words:"true" default:"rules"`
	Timeout time.Duration `split_words:"true" default:"5s"`
	Premium bool          `split_words:"true"`
}

// These tests touch process env and the package-level export state, so they
// run sequentially.

func TestNewReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	body := "CFGTEST_BACKEND=model\nCFGTEST_TIMEOUT=9s\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("CFGTEST_BACKEND")
		os.Unsetenv("CFGTEST_TIMEOUT")
		SetEnvFile("")
	})

	SetEnvFile(path)
	conf, err := New[sampleConfig]("CFGTEST")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if conf.Backend != "model" {
		t.Fatalf("Backend = %q, want model", conf.Backend)
	}
	if conf.Timeout != 9*time.Second {
		t.Fatalf("Timeout = %v, want 9s", conf.Timeout)
	}
	if EnvFile() != path {
		t.Fatalf("EnvFile() = %q, want %q", EnvFile(), path)
	}
}

func TestNewProcessEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CFGWIN_BACKEND=model\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CFGWIN_BACKEND", "rules")
	t.Cleanup(func() { SetEnvFile("") })

	SetEnvFile(path)
	conf, err := New[sampleConfig]("CFGWIN")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if conf.Backend != "rules" {
		t.Fatalf("Backend = %q, want rules", conf.Backend)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Cleanup(func() { SetEnvFile("") })

	SetEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	if _, err := New[sampleConfig]("CFGDEF"); err == nil {
		t.Fatal("expected error for explicit missing env file")
	}

	SetEnvFile("")
	conf, err := New[sampleConfig]("CFGDEF")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if conf.Backend != "rules" || conf.Timeout != 5*time.Second || conf.Premium {
		t.Fatalf("unexpected defaults: %#v", conf)
	}
}

func TestMustNewPanicsOnInvalidValue(t *testing.T) {
	t.Setenv("CFGBAD_TIMEOUT", "not-a-duration")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew[sampleConfig]("CFGBAD")
}
