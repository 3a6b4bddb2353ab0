package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "relative output dir under work dir",
			config: &Config{
				WorkDir:    "/project",
				OutputDir:  ".gtl",
				OutputFile: "request.json",
			},
			expected: "/project/.gtl/request.json",
		},
		{
			name: "work dir flag wins",
			config: &Config{
				WorkDir:    "/project",
				OutputDir:  ".gtl",
				OutputFile: "request.json",
				Flags:      Flags{WorkDir: "/other"},
			},
			expected: "/other/.gtl/request.json",
		},
		{
			name: "absolute output dir",
			config: &Config{
				WorkDir:    "/project",
				OutputDir:  "/absolute/path",
				OutputFile: "request.json",
			},
			expected: "/absolute/path/request.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetOutputPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.WorkDir != DefaultWorkDir {
		t.Errorf("expected WorkDir %s, got %s", DefaultWorkDir, cfg.WorkDir)
	}

	if cfg.Processors != DefaultProcessors {
		t.Errorf("expected Processors %d, got %d", DefaultProcessors, cfg.Processors)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}

	cfg.PathsToIgnore[0] = "changed"
	if DefaultPathsToIgnore[0] == "changed" {
		t.Error("defaults must not be shared with a config")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Processors != DefaultProcessors || cfg.GetFormat() != FormatText {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		content := "processors: 4\nformat: yaml\nclasspath:\n  - /extra/one\npaths_to_ignore:\n  - vendor\n"
		if err := os.WriteFile(filepath.Join(dir, "gtl.yaml"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Processors != 4 {
			t.Errorf("expected 4 processors, got %d", cfg.Processors)
		}
		if cfg.GetFormat() != FormatYAML {
			t.Errorf("expected yaml format, got %s", cfg.GetFormat())
		}
		if !reflect.DeepEqual(cfg.Classpath, []string{"/extra/one"}) {
			t.Errorf("unexpected classpath %v", cfg.Classpath)
		}
		if !reflect.DeepEqual(cfg.PathsToIgnore, []string{"vendor"}) {
			t.Errorf("unexpected paths to ignore %v", cfg.PathsToIgnore)
		}
	})

	t.Run("environment overrides config file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "gtl.yaml"), []byte("processors: 4\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		t.Setenv("GTL_PROCESSORS", "8")

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Processors != 8 {
			t.Errorf("expected 8 processors, got %d", cfg.Processors)
		}
	})

	t.Run("dot env file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GTL_OUTPUT_FILE=from-env.json\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("GTL_OUTPUT_FILE") })

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputFile != "from-env.json" {
			t.Errorf("expected output file from .env, got %s", cfg.OutputFile)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "gtl.yaml"), []byte("format: xml\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestConfig_Options(t *testing.T) {
	cfg := New()
	cfg.Classpath = []string{"/from/config"}
	cfg.ApplyFlags(Flags{
		ScanClasspath:    true,
		ClasspathEntries: []string{"/from/flag"},
		IncludeClassname: ".*Suite",
		IncludeTags:      []string{"fast"},
		ExcludeEngines:   []string{"legacy"},
		Processors:       3,
	})

	opts := cfg.Options([]string{"build"})

	if !opts.RunAllTests {
		t.Error("expected RunAllTests")
	}
	if !reflect.DeepEqual(opts.AdditionalClasspathEntries, []string{"/from/config", "/from/flag"}) {
		t.Errorf("unexpected classpath entries %v", opts.AdditionalClasspathEntries)
	}
	if opts.IncludeClassNamePattern != ".*Suite" {
		t.Errorf("unexpected pattern %q", opts.IncludeClassNamePattern)
	}
	if !reflect.DeepEqual(opts.Arguments, []string{"build"}) {
		t.Errorf("unexpected arguments %v", opts.Arguments)
	}
	if cfg.Processors != 3 {
		t.Errorf("expected flag to override processors, got %d", cfg.Processors)
	}
}
