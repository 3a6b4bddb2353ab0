package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gtl/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Directory the go tool runs in when loading packages and module roots
	WorkDir string

	// Saved request location
	OutputFile string
	OutputDir  string

	// Resolution settings
	Processors int

	// Additional classpath entries applied to every run
	Classpath []string

	// Paths to ignore when scanning roots for test files
	PathsToIgnore []string

	// Presentation
	Format  string
	Verbose bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ScanClasspath    bool
	ClasspathEntries []string
	IncludeClassname string
	IncludeTags      []string
	ExcludeTags      []string
	IncludeEngines   []string
	ExcludeEngines   []string
	Processors       int
	WorkDir          string
	Format           string
	Save             bool
	Interactive      bool
	Verbose          bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		WorkDir:    DefaultWorkDir,
		OutputFile: DefaultOutputFile,
		OutputDir:  DefaultOutputDir,
		Processors: DefaultProcessors,
		Format:     DefaultFormat,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config for dir from, in increasing precedence: defaults,
// a gtl.{yaml,json,toml} file in dir, dir/.env and GTL_* environment variables
func Load(dir string) (*Config, error) {
	cfg := New()
	cfg.WorkDir = dir

	// A missing .env is fine; the process environment still applies
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("processors", cfg.Processors)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("output_file", cfg.OutputFile)
	v.SetDefault("paths_to_ignore", cfg.PathsToIgnore)
	v.SetDefault("classpath", []string{})
	v.SetDefault("format", cfg.Format)
	v.SetDefault("verbose", cfg.Verbose)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.Processors = v.GetInt("processors")
	cfg.OutputDir = v.GetString("output_dir")
	cfg.OutputFile = v.GetString("output_file")
	cfg.PathsToIgnore = v.GetStringSlice("paths_to_ignore")
	cfg.Classpath = v.GetStringSlice("classpath")
	cfg.Format = v.GetString("format")
	cfg.Verbose = v.GetBool("verbose")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.GetFormat() {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.GetFormat())
	}
	if c.Processors < 0 {
		return fmt.Errorf("processors must not be negative, got %d", c.Processors)
	}
	return nil
}

// ApplyFlags copies parsed flags into the config; set flags override config values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Verbose {
		c.Verbose = true
	}
}

// Options builds the launcher options for the given positional arguments
func (c *Config) Options(args []string) domain.Options {
	entries := make([]string, 0, len(c.Classpath)+len(c.Flags.ClasspathEntries))
	entries = append(entries, c.Classpath...)
	entries = append(entries, c.Flags.ClasspathEntries...)

	return domain.Options{
		Arguments:                  args,
		RunAllTests:                c.Flags.ScanClasspath,
		AdditionalClasspathEntries: entries,
		IncludeClassNamePattern:    c.Flags.IncludeClassname,
		IncludedTags:               c.Flags.IncludeTags,
		ExcludedTags:               c.Flags.ExcludeTags,
		IncludedEngines:            c.Flags.IncludeEngines,
		ExcludedEngines:            c.Flags.ExcludeEngines,
	}
}

// GetWorkDir returns the working directory, using the flag if provided
func (c *Config) GetWorkDir() string {
	if c.Flags.WorkDir != "" {
		return c.Flags.WorkDir
	}
	return c.WorkDir
}

// GetFormat returns the output format, defaulting to text
func (c *Config) GetFormat() string {
	if c.Format == "" {
		return DefaultFormat
	}
	return strings.ToLower(c.Format)
}

// GetOutputPath returns the absolute path of the saved request file.
// Relative output dirs are resolved against the working directory.
func (c *Config) GetOutputPath() string {
	dir := c.OutputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.GetWorkDir(), dir)
	}
	p := filepath.Join(dir, c.OutputFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
