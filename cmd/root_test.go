package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/domain"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// isolate points the config at a temp dir and clears flag values left over
// from earlier executions of rootCmd.
func isolate(t *testing.T, platformID string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PRANK_CONFIG", path)
	t.Setenv("PRANK_PLATFORM", platformID)
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	configPath, variantFlag, modeFlag, localeFlag = "", "", "", ""
	hoursFlag, minutesFlag = "", ""
	debugFlag, configShow = false, false
	t.Cleanup(func() { _ = cleanupServices() })
	return path
}

func TestRootCmd_BareExecution(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "prank" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "prank")
	}
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !strings.Contains(stdout, "prank") {
		t.Error("help output should contain 'prank'")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "variant", "mode", "hours", "minutes", "locale", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
	if rootCmd.PersistentFlags().ShorthandLookup("m") == nil {
		t.Error("-m shorthand should be registered")
	}
}

func TestVariantsCmd_MarksDetected(t *testing.T) {
	isolate(t, "windows")

	stdout, _, err := executeCmd(rootCmd, "variants")
	if err != nil {
		t.Fatalf("variants failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != len(domain.Variants) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(domain.Variants), stdout)
	}
	if !strings.HasPrefix(lines[0], "▸") || !strings.Contains(lines[0], "bsod") || !strings.Contains(lines[0], "(detected)") {
		t.Errorf("first line = %q, want current detected bsod", lines[0])
	}
	if strings.Contains(lines[2], "(detected)") {
		t.Errorf("mac-update should not be marked detected on windows: %q", lines[2])
	}
}

func TestVariantsCmd_FlagOverridesDetection(t *testing.T) {
	isolate(t, "windows")

	stdout, _, err := executeCmd(rootCmd, "variants", "--variant", "mac")
	if err != nil {
		t.Fatalf("variants failed: %v", err)
	}

	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "mac-update") && !strings.HasPrefix(line, "▸") {
			t.Errorf("mac-update should be current: %q", line)
		}
		if strings.Contains(line, "bsod") && strings.HasPrefix(line, "▸") {
			t.Errorf("bsod should not be current: %q", line)
		}
	}
}

func TestDetectCmd(t *testing.T) {
	path := isolate(t, "darwin")

	stdout, _, err := executeCmd(rootCmd, "detect", "--locale", "ja")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}

	for _, want := range []string{
		"Platform:  darwin",
		"Detected:  mac-update",
		"Variant:   mac-update",
		"Mode:      loop",
		"Locale:    ja",
		"Config:    " + path,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestDetectCmd_RejectsUnknownLocale(t *testing.T) {
	isolate(t, "linux")

	_, _, err := executeCmd(rootCmd, "detect", "--locale", "klingon")
	if !errors.Is(err, domain.ErrUnsupportedLocale) {
		t.Errorf("err = %v, want ErrUnsupportedLocale", err)
	}
}

func TestConfigCmd_Show(t *testing.T) {
	path := isolate(t, "linux")

	stdout, _, err := executeCmd(rootCmd, "config", "--show")
	if err != nil {
		t.Fatalf("config --show failed: %v", err)
	}

	for _, want := range []string{"Config file:    " + path, "Variant:        auto", "Mode:           loop", "Loop cycle:     2m5s"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.DisplayVariant
		wantErr bool
	}{
		{"bsod", domain.VariantFailure, false},
		{"2", domain.VariantUpdate, false},
		{"C", domain.VariantAltUpdate, false},
		{"mac", domain.VariantAltUpdate, false},
		{"win", domain.VariantUpdate, false},
		{"bs", domain.VariantFailure, false},
		{"zzz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolveVariant(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidVariant) {
					t.Errorf("resolveVariant(%q) err = %v, want ErrInvalidVariant", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveVariant(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("resolveVariant(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	isolate(t, "linux")
	variantFlag, modeFlag, hoursFlag, minutesFlag = "1", "timed", "30", "75"

	s := domain.DefaultSettings()
	if err := applyFlags(&s); err != nil {
		t.Fatalf("applyFlags failed: %v", err)
	}
	if s.Variant != domain.VariantFailure {
		t.Errorf("Variant = %q, want bsod", s.Variant)
	}
	if s.Mode != domain.ModeTimed {
		t.Errorf("Mode = %q, want timed", s.Mode)
	}
	if s.Hours != domain.MaxHours || s.Minutes != domain.MaxMinutes {
		t.Errorf("duration = %dh%dm, want clamped %dh%dm", s.Hours, s.Minutes, domain.MaxHours, domain.MaxMinutes)
	}
}

func TestApplyFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		set  func()
	}{
		{"mode", func() { modeFlag = "forever" }},
		{"hours", func() { hoursFlag = "soon" }},
		{"minutes", func() { minutesFlag = "a few" }},
		{"variant", func() { variantFlag = "zzz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, "linux")
			tt.set()
			s := domain.DefaultSettings()
			if err := applyFlags(&s); err == nil {
				t.Errorf("applyFlags with bad %s should fail", tt.name)
			}
		})
	}
}

func TestDetectCmd_SavesFirstDetectedLocale(t *testing.T) {
	path := isolate(t, "linux")
	t.Setenv("LANG", "ja_JP.UTF-8")

	if _, _, err := executeCmd(rootCmd, "detect"); err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Locale != "ja" {
		t.Fatalf("saved locale = %q, want ja", cfg.Locale)
	}

	// A later LANG change keeps the saved language.
	t.Setenv("LANG", "en_US.UTF-8")
	stdout, _, err := executeCmd(rootCmd, "detect")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(stdout, "Locale:    ja") {
		t.Errorf("locale should stay ja:\n%s", stdout)
	}
}

func TestDetectCmd_LocaleFlagIsNotSaved(t *testing.T) {
	path := isolate(t, "linux")

	if _, _, err := executeCmd(rootCmd, "detect", "--locale", "ja"); err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Locale != "" {
		t.Errorf("saved locale = %q, want none", cfg.Locale)
	}
}

func TestDetectCmd_BrokenConfigFallsBackAndIsKept(t *testing.T) {
	path := isolate(t, "windows")
	broken := []byte("mode = [not toml\n")
	if err := os.WriteFile(path, broken, 0600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeCmd(rootCmd, "detect")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(stdout, "Mode:      loop") {
		t.Errorf("defaults should be used:\n%s", stdout)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, broken) {
		t.Errorf("broken config was rewritten:\n%s", got)
	}
}

func TestLoadConfig_ReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("hours = \"unterminated\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig should report the parse error")
	}
	if cfg == nil || cfg.Mode != string(domain.ModeLoop) {
		t.Errorf("loadConfig should fall back to defaults, got %+v", cfg)
	}
}

func TestWarnConfigFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	warnConfigFallback(logger, "/tmp/prank.toml", errors.New("bad toml"))

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"path":"/tmp/prank.toml"`, `"error":"bad toml"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}
