package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/logging"
)

const (
	RenderTable = "table"
	RenderHTML  = "html"
)

// Config holds runtime settings for the forum client.
//
// Fields:
//   - DataDir, DBFile: location of the SQLite key-value store.
//   - Ephemeral: keep all state in memory; nothing survives the process.
//   - LogBackend, LogLevel, LogFormat, LogFile: see logging.Options.
//   - RenderFormat: "table" for the terminal, "html" for a markup fragment.
//   - NoticeTTL, SuccessTTL: how long inline error and success notices stay
//     visible.
//   - ContentPreview: rune budget of the content column in topic lists.
type Config struct {
	DataDir   string
	DBFile    string
	Ephemeral bool

	LogBackend string
	LogLevel   string
	LogFormat  string
	LogFile    string

	RenderFormat   string
	NoticeTTL      time.Duration
	SuccessTTL     time.Duration
	ContentPreview int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".hydroforum"
	c.DBFile = "forum.db"
	c.Ephemeral = false
	c.LogBackend = logging.BackendSlog
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.LogFile = ""
	c.RenderFormat = RenderTable
	c.NoticeTTL = 5 * time.Second
	c.SuccessTTL = 3 * time.Second
	c.ContentPreview = 200
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the config file at path (JSON or YAML, chosen by extension) when path
// is not empty. Command-line flags are applied afterwards by the caller via
// FlagValues.Apply.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN returns the SQLite data source for the configured file.
func (c *Config) DSN() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoggingOptions maps the logging fields onto logging.Options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Backend:    c.LogBackend,
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		File:       c.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch c.RenderFormat {
	case RenderTable, RenderHTML:
	default:
		return fmt.Errorf("unknown render format %q", c.RenderFormat)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if !c.Ephemeral && (c.DataDir == "" || c.DBFile == "") {
		return fmt.Errorf("data dir and db file are required")
	}
	if c.NoticeTTL <= 0 || c.SuccessTTL <= 0 {
		return fmt.Errorf("notice durations must be positive")
	}
	if c.ContentPreview <= 0 {
		return fmt.Errorf("content preview must be positive, got %d", c.ContentPreview)
	}
	return nil
}
