package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ".hydroforum", c.DataDir)
	assert.Equal(t, "forum.db", c.DBFile)
	assert.Equal(t, RenderTable, c.RenderFormat)
	assert.Equal(t, 5*time.Second, c.NoticeTTL)
	assert.Equal(t, 3*time.Second, c.SuccessTTL)
	assert.Equal(t, 200, c.ContentPreview)
	assert.Equal(t, filepath.Join(".hydroforum", "forum.db"), c.DSN())
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_JSONOverlaysOnlyPresentFields(t *testing.T) {
	path := writeFile(t, "forum.json", `{"data_dir": "/tmp/f", "notice_ttl": "10s", "content_preview": 80}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := defaults()
	want.DataDir = "/tmp/f"
	want.NoticeTTL = 10 * time.Second
	want.ContentPreview = 80
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "forum.yaml", "render_format: html\nlog_backend: zap\nephemeral: true\nsuccess_ttl: 1s\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, RenderHTML, cfg.RenderFormat)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.True(t, cfg.Ephemeral)
	assert.Equal(t, time.Second, cfg.SuccessTTL)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.json", `{ this is not valid json`))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yml", "notice_ttl: [1]\n"))
	require.Error(t, err)
}

func TestFlagValues_ApplyOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("forum", pflag.ContinueOnError)
	var v FlagValues
	v.Register(fs)

	require.NoError(t, fs.Parse([]string{"--format", "html", "-d", "/var/forum"}))

	cfg := defaults()
	cfg.LogLevel = "debug" // from a file, must survive
	v.Apply(fs, cfg)

	assert.Equal(t, RenderHTML, cfg.RenderFormat)
	assert.Equal(t, "/var/forum", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"render format", func(c *Config) { c.RenderFormat = "pdf" }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
		{"data dir", func(c *Config) { c.DataDir = "" }},
		{"notice ttl", func(c *Config) { c.NoticeTTL = 0 }},
		{"content preview", func(c *Config) { c.ContentPreview = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			require.Error(t, c.Validate())
		})
	}

	c := defaults()
	c.Ephemeral = true
	c.DataDir = ""
	require.NoError(t, c.Validate(), "ephemeral mode needs no data dir")
}
