package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	orig := struct{ config, fmt, level, metrics string }{flagConfig, flagFmt, flagLogLevel, flagMetrics}
	t.Cleanup(func() {
		flagConfig = orig.config
		flagFmt = orig.fmt
		flagLogLevel = orig.level
		flagMetrics = orig.metrics
	})
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	homeCfg := filepath.Join(home, ".mantle-explorer", "config.yaml")

	tests := []struct {
		name     string
		flag     string
		env      string
		homeFile bool
		want     string
	}{
		{name: "nothing configured", want: ""},
		{name: "home file", homeFile: true, want: homeCfg},
		{name: "env beats home file", env: "/etc/mantle.yaml", homeFile: true, want: "/etc/mantle.yaml"},
		{name: "flag beats env", flag: "./local.yaml", env: "/etc/mantle.yaml", homeFile: true, want: "./local.yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			t.Setenv("HOME", home)
			t.Setenv("MANTLE_CONFIG", tc.env)
			flagConfig = tc.flag

			os.RemoveAll(filepath.Dir(homeCfg))
			if tc.homeFile {
				if err := os.MkdirAll(filepath.Dir(homeCfg), 0o700); err != nil {
					t.Fatalf("mkdir: %v", err)
				}
				if err := os.WriteFile(homeCfg, []byte("log_level: info\n"), 0o600); err != nil {
					t.Fatalf("write: %v", err)
				}
			}

			if got := resolveConfigPath(); got != tc.want {
				t.Errorf("resolveConfigPath() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSetup_LogLevelFlag(t *testing.T) {
	resetFlags(t)
	testEnv(t)

	flagLogLevel = "debug"

	var logs bytes.Buffer
	if err := setup(&logs); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", log.GetLevel())
	}
	if cfg.DataStartRow != 2 {
		t.Errorf("config file not applied, data start row = %d", cfg.DataStartRow)
	}
	if explorer == nil {
		t.Error("expected the explorer to be initialised")
	}
}

func TestSetup_Errors(t *testing.T) {
	resetFlags(t)
	testEnv(t)

	flagLogLevel = "chatty"
	if err := setup(&bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "chatty") {
		t.Errorf("expected invalid level error, got %v", err)
	}

	flagLogLevel = ""
	flagConfig = filepath.Join(t.TempDir(), "absent.yaml")
	if err := setup(&bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected missing config error, got %v", err)
	}
}
