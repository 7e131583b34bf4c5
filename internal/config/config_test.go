package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	l := config.NewLoader(afero.NewMemMapFs(), "/home/u")

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		OutputDir: ".",
		Render:    config.RenderConfig{Enabled: true, Binary: "dot", Format: "png"},
		Log:       config.LogConfig{Level: "info", Format: "text"},
	}, cfg)
	assert.Empty(t, l.FileUsed())
}

func TestLoad_HomeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/u/.wordgraph/config.yaml", []byte(`
output_dir: out
seed: 7
render:
  format: svg
log:
  level: debug
`), 0o644))

	l := config.NewLoader(fs, "/home/u")
	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "svg", cfg.Render.Format)
	assert.Equal(t, "dot", cfg.Render.Binary)
	assert.True(t, cfg.Render.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/home/u/.wordgraph/config.yaml", l.FileUsed())
}

func TestLoad_ExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/wg.yaml", []byte("render:\n  enabled: false\n"), 0o644))

	cfg, err := config.NewLoader(fs, "").Load("/etc/wg.yaml")
	require.NoError(t, err)
	assert.False(t, cfg.Render.Enabled)

	_, err = config.NewLoader(fs, "").Load("/etc/missing.yaml")
	require.ErrorIs(t, err, config.ErrConfigRead)
}

func TestLoad_BadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("render: [unclosed\n"), 0o644))

	_, err := config.NewLoader(fs, "").Load("/c.yaml")
	require.ErrorIs(t, err, config.ErrConfigRead)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("render:\n  format: svg\n"), 0o644))
	t.Setenv("WORDGRAPH_RENDER_FORMAT", "pdf")
	t.Setenv("WORDGRAPH_SEED", "99")

	cfg, err := config.NewLoader(fs, "").Load("/c.yaml")
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Render.Format)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoad_ExplicitValueWins(t *testing.T) {
	l := config.NewLoader(afero.NewMemMapFs(), "")
	l.Viper().Set(config.KeyCorpus, "input.txt")

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.Corpus)
}

func TestValidate(t *testing.T) {
	base := config.Config{
		OutputDir: ".",
		Render:    config.RenderConfig{Enabled: true, Binary: "dot", Format: "png"},
	}
	require.NoError(t, base.Validate())

	tests := map[string]func(*config.Config){
		"empty output dir": func(c *config.Config) { c.OutputDir = " " },
		"empty binary":     func(c *config.Config) { c.Render.Binary = "" },
		"empty format":     func(c *config.Config) { c.Render.Format = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}

	disabled := base
	disabled.Render = config.RenderConfig{Enabled: false}
	require.NoError(t, disabled.Validate())
}
