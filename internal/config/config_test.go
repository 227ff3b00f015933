package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "assat.yaml", "extensions: [java, kt]\nmax_bytes: 123\nhighlight: true\nformat: table\nrules: rules/android.yml\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != "kt" {
		t.Fatalf("expected extensions [java kt], got %#v", cfg.Extensions)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Highlight == nil || !*cfg.Highlight {
		t.Fatalf("expected highlight=true")
	}
	if cfg.Format == nil || *cfg.Format != "table" {
		t.Fatalf("expected format=table, got %#v", cfg.Format)
	}
	if cfg.Rules == nil || *cfg.Rules != "rules/android.yml" {
		t.Fatalf("expected rules path, got %#v", cfg.Rules)
	}
	if cfg.NoColor != nil {
		t.Fatalf("unset keys must stay nil")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "assat.yml", "max_bytes: [1\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "assat.yaml", "log_level: debug\n")
	writeTemp(t, dir, ".assat.yaml", "log_level: warn\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.LogLevel == nil || *cfg.LogLevel != "warn" {
		t.Fatalf("expected log_level=warn from .assat.yaml, got %#v", cfg.LogLevel)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "assat"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, filepath.Join(dir, "assat"), "config.yml", "no_color: true\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("expected no_color=true from global config, got %#v", cfg.NoColor)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestMarshal_OmitsUnset(t *testing.T) {
	format := "text"
	b, err := FileConfig{Format: &format}.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != "format: text\n" {
		t.Fatalf("unexpected yaml %q", b)
	}
}

func TestModesSelect(t *testing.T) {
	cases := []struct {
		name    string
		modes   Modes
		want    Mode
		wantErr bool
	}{
		{"none", Modes{Path: "/x"}, "", true},
		{"two", Modes{Prefs: true, KeyStore: true, Path: "/x"}, "", true},
		{"prefs", Modes{Prefs: true, Path: "/x"}, ModePrefs, false},
		{"prefs without path", Modes{Prefs: true}, "", true},
		{"keystore", Modes{KeyStore: true, Path: "/x"}, ModeKeyStore, false},
		{"crypto", Modes{Crypto: true, Path: "/x"}, ModeCrypto, false},
		{"find", Modes{Find: true, Path: "/x", Pattern: "KeyStore"}, ModeFind, false},
		{"find without pattern", Modes{Find: true, Path: "/x"}, "", true},
		{"rules", Modes{Rules: true, Path: "/x", RulesFile: "r.yml"}, ModeRules, false},
		{"rules without file", Modes{Rules: true, Path: "/x"}, "", true},
		{"dynamic needs no path", Modes{DynamicPrefs: true}, ModeDynamicPrefs, false},
		{"dynamic db", Modes{DynamicDB: true}, ModeDynamicDB, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.modes.Select()
			if tc.wantErr {
				var ce *ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("expected *ConfigError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestModesSelect_DoesNotTouchFilesystem(t *testing.T) {
	m := Modes{Prefs: true, Path: filepath.Join(t.TempDir(), "does", "not", "exist")}
	if _, err := m.Select(); err != nil {
		t.Fatalf("path existence is checked by the scan, got %v", err)
	}
}
