// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sbomatic/internal/platform/errors"
	"sbomatic/internal/testutil"
)

// clearEnv deja vacías las variables que LoadArgs consulta.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SBOMATIC_CONFIG", "SBOMATIC_LOG_LEVEL", "SBOMATIC_QUIET", "SBOMATIC_NO_COLOR",
		"SBOMATIC_UI", "SBOMATIC_REPORT", "SBOMATIC_TOOL_TIMEOUT",
		"SBOMATIC_GENERATORS_JAVA_ENABLED", "SBOMATIC_GENERATORS_JAVA_TIMEOUT",
		"SBOMATIC_GENERATORS_NODEJS_ENABLED", "SBOMATIC_GENERATORS_NODEJS_TIMEOUT",
		"SBOMATIC_GENERATORS_GO_ENABLED", "SBOMATIC_GENERATORS_GO_TIMEOUT",
		"SBOMATIC_GENERATORS_PYTHON_ENABLED", "SBOMATIC_GENERATORS_PYTHON_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sbomatic.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		def      string
		envValue string
		expected string
	}{
		{"env var exists", "SBOMATIC_TEST_KEY_1", "default", "custom", "custom"},
		{"env var missing - uses default", "SBOMATIC_TEST_KEY_MISSING", "default", "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getenv(tt.key, tt.def)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{" true ", true},

		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseBool(tt.input)
			if result != tt.expected {
				t.Errorf("parseBool(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"90", 90 * time.Second, false},
		{"90s", 90 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{" 1h ", time.Hour, false},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDuration(tt.input)
			if tt.wantErr {
				testutil.AssertError(t, err, "invalid duration")
				return
			}
			testutil.AssertNoError(t, err, "valid duration")
			testutil.AssertEqual(t, got, tt.want, "duration")
		})
	}
}

func TestLoadArgs_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadArgs([]string{"./src"})

	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.Root, "./src", "root")
	testutil.AssertEqual(t, cfg.UI, "auto", "ui")
	testutil.AssertEqual(t, cfg.LogLevel, "warn", "log level")
	testutil.AssertEqual(t, cfg.ToolTimeout, time.Duration(0), "no timeout by default")
	testutil.AssertFalse(t, cfg.Quiet, "quiet")
	testutil.AssertEqual(t, cfg.ConfigPath, "", "no config file loaded")
	testutil.AssertEqual(t, len(cfg.Generators), 4, "one config per ecosystem")
	for name, gen := range cfg.Generators {
		testutil.AssertTrue(t, gen.Enabled, name+" enabled")
	}
}

func TestLoadArgs_Positional(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"none", []string{}},
		{"two", []string{"a", "b"}},
		{"flags only", []string{"-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArgs(tt.args)
			testutil.AssertTrue(t, errors.Is(err, ErrUsage), "usage error")
		})
	}
}

func TestLoadArgs_CheckNeedsNoRoot(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadArgs([]string{"--check"})

	testutil.AssertNoError(t, err, "check without root")
	testutil.AssertTrue(t, cfg.CheckTools, "check flag")
}

func TestLoadArgs_HelpAndVersion(t *testing.T) {
	clearEnv(t)

	_, err := LoadArgs([]string{"-h"})
	testutil.AssertTrue(t, errors.Is(err, ErrHelp), "help")

	cfg, err := LoadArgs([]string{"--version"})
	testutil.AssertNoError(t, err, "version")
	testutil.AssertTrue(t, cfg.PrintVersion, "print version")
}

func TestLoadArgs_UnknownFlag(t *testing.T) {
	clearEnv(t)

	_, err := LoadArgs([]string{"--target", "x", "."})

	testutil.AssertTrue(t, errors.Is(err, ErrUsage), "unknown flag is a usage error")
}

func TestLoadArgs_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadArgs([]string{
		"-q", "--plain", "-l", "debug", "-r", "out/report.json",
		"-e", "vendor", "--exclude", "dist,vendor",
		"--tool-timeout", "2m", "--skip", "nodejs", "--skip", "Go",
		".",
	})

	testutil.AssertNoError(t, err, "load")
	testutil.AssertTrue(t, cfg.Quiet, "quiet")
	testutil.AssertEqual(t, cfg.UI, "plain", "--plain")
	testutil.AssertEqual(t, cfg.LogLevel, "debug", "log level")
	testutil.AssertEqual(t, cfg.ReportPath, "out/report.json", "report")
	testutil.AssertDeepEqual(t, cfg.Exclude, []string{"vendor", "dist"}, "excludes deduplicated")
	testutil.AssertEqual(t, cfg.ToolTimeout, 2*time.Minute, "tool timeout")
	testutil.AssertFalse(t, cfg.Generators["nodejs"].Enabled, "nodejs skipped")
	testutil.AssertFalse(t, cfg.Generators["go"].Enabled, "go skipped, case-insensitive")
	testutil.AssertTrue(t, cfg.Generators["java"].Enabled, "java untouched")
}

func TestLoadArgs_SkipUnknownEcosystem(t *testing.T) {
	clearEnv(t)

	_, err := LoadArgs([]string{"--skip", "rust", "."})

	testutil.AssertTrue(t, errors.Is(err, ErrUsage), "unknown ecosystem")
}

func TestLoadArgs_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: info
quiet: true
ui: raw
raw_format: json
tool_timeout: 90s
scan:
  exclude: [vendor, .git]
generators:
  java:
    command: "mvn -B 'org.cyclonedx:cyclonedx-maven-plugin:makeAggregateBom' -q"
    options:
      prefer: xml
  python:
    enabled: false
  go:
    command: [cyclonedx-gomod, mod, -json=true, -output, bom-go.json]
    timeout: 3m
  nodejs:
    commands:
      - ""
      - cyclonedx-npm --omit dev --output-file bom-nodejs.json
    options:
      install: false
`)

	cfg, err := LoadArgs([]string{"-c", path, "."})

	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.ConfigPath, path, "config path")
	testutil.AssertEqual(t, cfg.LogLevel, "info", "log level")
	testutil.AssertTrue(t, cfg.Quiet, "quiet")
	testutil.AssertEqual(t, cfg.UI, "raw", "ui")
	testutil.AssertEqual(t, cfg.RawFormat, "json", "raw format")
	testutil.AssertEqual(t, cfg.ToolTimeout, 90*time.Second, "tool timeout")
	testutil.AssertDeepEqual(t, cfg.Exclude, []string{"vendor", ".git"}, "excludes")

	java := cfg.Generators["java"]
	testutil.AssertDeepEqual(t, java.Command,
		[]string{"mvn", "-B", "org.cyclonedx:cyclonedx-maven-plugin:makeAggregateBom", "-q"},
		"string command split with shell rules")
	testutil.AssertLen(t, java.Commands, 0, "command does not fill commands")
	testutil.AssertEqual(t, java.Options["prefer"], "xml", "java options")

	testutil.AssertFalse(t, cfg.Generators["python"].Enabled, "python disabled")

	gomod := cfg.Generators["go"]
	testutil.AssertDeepEqual(t, gomod.Command,
		[]string{"cyclonedx-gomod", "mod", "-json=true", "-output", "bom-go.json"},
		"list command")
	testutil.AssertEqual(t, gomod.Timeout, 3*time.Minute, "go timeout")

	node := cfg.Generators["nodejs"]
	testutil.AssertLen(t, node.Commands, 2, "one line per tool")
	testutil.AssertLen(t, node.Commands[0], 0, "empty line keeps the default")
	testutil.AssertEqual(t, node.Commands[1][1], "--omit", "second line")
	testutil.AssertEqual(t, node.Options["install"], false, "nodejs options")
}

func TestLoadArgs_ConfigFileErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "generators: [unclosed"},
		{"unbalanced quote", "generators:\n  java:\n    command: \"mvn 'oops\"\n"},
		{"command and commands", "generators:\n  nodejs:\n    command: npm\n    commands: [npm]\n"},
		{"bad timeout", "generators:\n  go:\n    timeout: later\n"},
		{"bad tool timeout", "tool_timeout: later\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArgs([]string{"-c", writeConfig(t, tt.body), "."})
			testutil.AssertError(t, err, "config error")
		})
	}
}

func TestLoadArgs_ExplicitConfigMissing(t *testing.T) {
	clearEnv(t)

	_, err := LoadArgs([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml"), "."})

	testutil.AssertError(t, err, "explicit config must exist")
}

func TestLoadArgs_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: info
report: from-file.json
generators:
  java:
    enabled: false
  go:
    timeout: 1m
`)
	t.Setenv("SBOMATIC_CONFIG", path)
	t.Setenv("SBOMATIC_LOG_LEVEL", "error")
	t.Setenv("SBOMATIC_GENERATORS_JAVA_ENABLED", "true")
	t.Setenv("SBOMATIC_GENERATORS_GO_TIMEOUT", "45s")

	cfg, err := LoadArgs([]string{"--log-level", "debug", "."})

	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.ConfigPath, path, "config from ENV")
	testutil.AssertEqual(t, cfg.LogLevel, "debug", "flag beats ENV beats file")
	testutil.AssertEqual(t, cfg.ReportPath, "from-file.json", "file value kept when nothing overrides it")
	testutil.AssertTrue(t, cfg.Generators["java"].Enabled, "ENV beats file")
	testutil.AssertEqual(t, cfg.Generators["go"].Timeout, 45*time.Second, "ENV timeout")
}

func TestLoadArgs_BadEnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SBOMATIC_TOOL_TIMEOUT", "whenever")

	_, err := LoadArgs([]string{"."})

	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidInput), "invalid input")
}

func TestGeneratorConfigs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quiet = true
	cfg.ToolTimeout = time.Minute
	gomod := cfg.Generators["go"]
	gomod.Timeout = 5 * time.Second
	cfg.Generators["go"] = gomod

	gens := cfg.GeneratorConfigs()

	testutil.AssertTrue(t, gens["java"].Quiet, "quiet propagated")
	testutil.AssertEqual(t, gens["java"].Timeout, time.Minute, "tool timeout as fallback")
	testutil.AssertEqual(t, gens["go"].Timeout, 5*time.Second, "own timeout wins")
	testutil.AssertFalse(t, cfg.Generators["java"].Quiet, "source config untouched")
}

func TestConfig_ToJSON(t *testing.T) {
	cfg := DefaultConfig()

	out, err := cfg.ToJSON()

	testutil.AssertNoError(t, err, "to json")
	testutil.AssertTrue(t, strings.Contains(out, `"Generators"`), "generators serialized")
}
