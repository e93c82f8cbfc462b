// Package config loads runtime configuration for the forum client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in
//     ".yaml" or ".yml" are YAML, anything else is JSON.
//  3. Command-line flags (see FlagValues), which override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "data_dir": ".hydroforum",
//	  "render_format": "table",
//	  "notice_ttl": "5s",
//	  "content_preview": 200
//	}
//
// The package does not read environment variables.
package config
