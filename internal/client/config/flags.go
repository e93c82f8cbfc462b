package config

import (
	"github.com/spf13/pflag"
)

// FlagValues receives the persistent command-line flags. Only flags the user
// actually set override the file and defaults.
type FlagValues struct {
	ConfigPath   string
	DataDir      string
	Ephemeral    bool
	LogBackend   string
	LogLevel     string
	LogFormat    string
	LogFile      string
	RenderFormat string
}

// Register declares the flags on fs, using the built-in defaults for help
// output.
func (v *FlagValues) Register(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringVarP(&v.ConfigPath, "config", "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&v.DataDir, "data-dir", "d", d.DataDir, "directory holding the forum database")
	fs.BoolVar(&v.Ephemeral, "ephemeral", d.Ephemeral, "keep all state in memory")
	fs.StringVar(&v.LogBackend, "log-backend", d.LogBackend, "logger backend: slog or zap")
	fs.StringVar(&v.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&v.LogFormat, "log-format", d.LogFormat, "log format: text or json")
	fs.StringVar(&v.LogFile, "log-file", d.LogFile, "write logs to this file with rotation")
	fs.StringVarP(&v.RenderFormat, "format", "f", d.RenderFormat, "topic list format: table or html")
}

// Apply copies every flag that was explicitly set on fs into cfg.
func (v *FlagValues) Apply(fs *pflag.FlagSet, cfg *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = v.DataDir
		case "ephemeral":
			cfg.Ephemeral = v.Ephemeral
		case "log-backend":
			cfg.LogBackend = v.LogBackend
		case "log-level":
			cfg.LogLevel = v.LogLevel
		case "log-format":
			cfg.LogFormat = v.LogFormat
		case "log-file":
			cfg.LogFile = v.LogFile
		case "format":
			cfg.RenderFormat = v.RenderFormat
		}
	})
}
