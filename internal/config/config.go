// Package config loads wordgraph settings from defaults, an optional YAML
// file and WORDGRAPH_* environment variables, in increasing priority.
// Command-line flags bound to the loader's viper instance win over all three.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. WORDGRAPH_RENDER_FORMAT.
	EnvPrefix = "WORDGRAPH"
	// Dir is the per-user config directory below $HOME.
	Dir = ".wordgraph"
	// FileName and FileType name the default config file inside Dir.
	FileName = "config"
	FileType = "yaml"
)

// Keys shared by defaults, flags and files.
const (
	KeyCorpus        = "corpus"
	KeyOutputDir     = "output_dir"
	KeySeed          = "seed"
	KeyRenderEnabled = "render.enabled"
	KeyRenderBinary  = "render.binary"
	KeyRenderFormat  = "render.format"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
)

var (
	// ErrConfigRead wraps failures to read or decode a config file.
	ErrConfigRead = errors.New("config: cannot read config")
	// ErrInvalid reports a setting that cannot be used.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config is the resolved configuration.
type Config struct {
	Corpus    string       `mapstructure:"corpus"     yaml:"corpus"`
	OutputDir string       `mapstructure:"output_dir" yaml:"output_dir"`
	Seed      int64        `mapstructure:"seed"       yaml:"seed"`
	Render    RenderConfig `mapstructure:"render"     yaml:"render"`
	Log       LogConfig    `mapstructure:"log"        yaml:"log"`
}

// RenderConfig controls Graphviz invocation.
type RenderConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Binary  string `mapstructure:"binary"  yaml:"binary"`
	Format  string `mapstructure:"format"  yaml:"format"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Loader owns one viper instance. Bind flags to Viper() before Load.
type Loader struct {
	v    *viper.Viper
	home string
}

// NewLoader returns a loader reading files through fs. home is the user's
// home directory; empty disables the default file lookup.
func NewLoader(fs afero.Fs, home string) *Loader {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, home: home}
}

// Viper exposes the instance for flag binding.
func (l *Loader) Viper() *viper.Viper { return l.v }

// Load resolves the configuration. An explicit path must exist; without
// one, $HOME/.wordgraph/config.yaml is read when present.
func (l *Loader) Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
		}
	} else if l.home != "" {
		l.v.AddConfigPath(filepath.Join(l.home, Dir))
		l.v.SetConfigName(FileName)
		l.v.SetConfigType(FileType)
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("%w: %w", ErrConfigRead, err)
			}
		}
	}

	if err := l.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: decode: %w", ErrConfigRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// FileUsed is the config file actually read, or "".
func (l *Loader) FileUsed() string { return l.v.ConfigFileUsed() }

// Validate checks settings that have no sensible fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyOutputDir)
	}
	if c.Render.Enabled {
		if strings.TrimSpace(c.Render.Binary) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyRenderBinary)
		}
		if strings.TrimSpace(c.Render.Format) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyRenderFormat)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCorpus, "")
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyRenderEnabled, true)
	v.SetDefault(KeyRenderBinary, "dot")
	v.SetDefault(KeyRenderFormat, "png")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}
