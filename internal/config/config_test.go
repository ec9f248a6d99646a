package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolatedEnv(t *testing.T, extra ...string) []string {
	t.Helper()
	return append([]string{envConfigDir + "=" + t.TempDir()}, extra...)
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Locale != "en" {
		t.Fatalf("expected default locale en, got %q", cfg.App.Locale)
	}
	if cfg.App.DataPath != "" || cfg.App.DictionaryPath != "" {
		t.Fatalf("expected built-in data, got %q / %q", cfg.App.DataPath, cfg.App.DictionaryPath)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace disabled")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := isolatedEnv(t,
		envCategory+"=Pistol",
		envLocale+"=pt",
		envWidth+"=100",
		envShowFooter+"=true",
		envTrace+"=1",
		envLogFile+"=/tmp/env.log",
	)
	cfg, err := LoadArgs([]string{"--category", "Shotgun", "--width", "90"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Category != "Shotgun" {
		t.Fatalf("expected flag category, got %q", cfg.App.Category)
	}
	if cfg.App.Locale != "pt" {
		t.Fatalf("expected env locale, got %q", cfg.App.Locale)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag width, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace from environment")
	}
	if cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("expected env log file, got %q", cfg.Logging.FilePath)
	}
	if cfg.Flags["category"] != "Shotgun" || cfg.Flags["width"] != "90" {
		t.Fatalf("unexpected flag map %#v", cfg.Flags)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, isolatedEnv(t, envWidth+"=wide", envShowFooter+"=maybe", "garbage"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got width %d footer %v", cfg.App.Width, cfg.App.ShowFooter)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, isolatedEnv(t)); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, isolatedEnv(t)); err == nil {
		t.Fatalf("expected height error")
	}
	if _, err := LoadArgs([]string{"--nope"}, isolatedEnv(t)); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestLoadArgsDiscoversConfigFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{dataFileName, dictionaryFileName} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	cfg, err := LoadArgs(nil, []string{envConfigDir + "=" + dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataPath != filepath.Join(dir, dataFileName) {
		t.Fatalf("expected discovered data file, got %q", cfg.App.DataPath)
	}
	if cfg.App.DictionaryPath != filepath.Join(dir, dictionaryFileName) {
		t.Fatalf("expected discovered dictionary, got %q", cfg.App.DictionaryPath)
	}

	explicit, err := LoadArgs([]string{"--data", "/elsewhere.yaml"}, []string{envConfigDir + "=" + dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if explicit.App.DataPath != "/elsewhere.yaml" {
		t.Fatalf("expected explicit data path to win, got %q", explicit.App.DataPath)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	badLocale := cfg
	badLocale.App.Locale = "klingon"
	if err := Validate(badLocale); err == nil {
		t.Fatalf("expected locale error")
	}

	missing := cfg
	missing.App.DataPath = filepath.Join(t.TempDir(), "missing.yaml")
	if err := Validate(missing); err == nil {
		t.Fatalf("expected missing data error")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	notDir := cfg
	notDir.App.AssetsDir = file
	if err := Validate(notDir); err == nil {
		t.Fatalf("expected assets directory error")
	}
}
