package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := FromYAML([]byte("color: never\nshow_state: true\nextensions: [.jsp]\n"))
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.ShowState)
	assert.Equal(t, []string{".jsp"}, cfg.Extensions)
	assert.Equal(t, FormatText, cfg.Format, "unset fields keep their default")

	cfg, err = FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = FromYAML([]byte("colour: never\n"))
	require.Error(t, err)
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	data, err := Default().ToYAML()
	require.NoError(t, err)
	cfg, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, true},
		{"bad format", func(c *Config) { c.Format = "json" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"warning level", func(c *Config) { c.LogLevel = "WARNING" }, false},
		{"negative width", func(c *Config) { c.MaxValueWidth = -1 }, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.modify(cfg)
			if tc.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.True(t, cfg.HasExtension("index.jsp"))
	assert.True(t, cfg.HasExtension("HEADER.JSPF"))
	assert.False(t, cfg.HasExtension("main.go"))
	assert.False(t, cfg.HasExtension("jsp"))
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"JSPLEX_COLOR":           "always",
		"JSPLEX_SHOW_STATE":      "1",
		"JSPLEX_EXTENSIONS":      ".jsp, .tag,",
		"JSPLEX_MAX_VALUE_WIDTH": "40",
	}
	cfg := Default()
	require.NoError(t, loadFromEnv(cfg, func(k string) string { return env[k] }))
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.True(t, cfg.ShowState)
	assert.Equal(t, []string{".jsp", ".tag"}, cfg.Extensions)
	assert.Equal(t, 40, cfg.MaxValueWidth)

	err := loadFromEnv(Default(), func(k string) string {
		if k == "JSPLEX_DETECT" {
			return "maybe"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSPLEX_DETECT")
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	sub := filepath.Join(root, "web", "WEB-INF")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	path := filepath.Join(root, ".jsplex.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o644))
	t.Setenv("JSPLEX_LOG_LEVEL", "debug")

	cfg, found, err := Load(context.Background(), "", sub)
	require.NoError(t, err)
	assert.Equal(t, path, found)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)

	// the VCS root stops the search
	require.NoError(t, os.Remove(path))
	cfg, found, err = Load(context.Background(), "", sub)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, FormatText, cfg.Format)
}
