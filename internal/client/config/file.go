package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/hydroforum/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for unmarshalling config files.
// Pointer fields distinguish "absent" from "zero" so a file only overrides
// what it mentions.
type FileConfig struct {
	DataDir   *string `json:"data_dir" yaml:"data_dir"`
	DBFile    *string `json:"db_file" yaml:"db_file"`
	Ephemeral *bool   `json:"ephemeral" yaml:"ephemeral"`

	LogBackend *string `json:"log_backend" yaml:"log_backend"`
	LogLevel   *string `json:"log_level" yaml:"log_level"`
	LogFormat  *string `json:"log_format" yaml:"log_format"`
	LogFile    *string `json:"log_file" yaml:"log_file"`

	RenderFormat   *string         `json:"render_format" yaml:"render_format"`
	NoticeTTL      *timex.Duration `json:"notice_ttl" yaml:"notice_ttl"`
	SuccessTTL     *timex.Duration `json:"success_ttl" yaml:"success_ttl"`
	ContentPreview *int            `json:"content_preview" yaml:"content_preview"`
}

// parseFile overlays cfg with the values found in the file at path.
// ".yaml" and ".yml" files are decoded as YAML, everything else as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.DBFile, fc.DBFile)
	if fc.Ephemeral != nil {
		cfg.Ephemeral = *fc.Ephemeral
	}
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.RenderFormat, fc.RenderFormat)
	if fc.NoticeTTL != nil {
		cfg.NoticeTTL = fc.NoticeTTL.Duration
	}
	if fc.SuccessTTL != nil {
		cfg.SuccessTTL = fc.SuccessTTL.Duration
	}
	if fc.ContentPreview != nil {
		cfg.ContentPreview = *fc.ContentPreview
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
