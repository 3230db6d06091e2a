package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/philipp01105/logfile/core"
)

// Format is the syntax of a config document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Config describes a Logfile and its routers.
type Config struct {
	AppName string        `koanf:"app_name" validate:"required"`
	Levels  LevelsConfig  `koanf:"levels"`
	Console ConsoleConfig `koanf:"console"`
	File    FileConfig    `koanf:"file"`
}

// LevelsConfig is a single level filter rule.
type LevelsConfig struct {
	Allow []string `koanf:"allow" validate:"dive,loglevel"`
	Block []string `koanf:"block" validate:"dive,loglevel"`
}

// ConsoleConfig configures the console router.
type ConsoleConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Format     string `koanf:"format" validate:"omitempty,oneof=text json"`
	Async      bool   `koanf:"async"`
	BufferSize int    `koanf:"buffer_size" validate:"gte=0"`
}

// FileConfig configures the rotating file router. Files are written to
// Path/<app_name>.log.
type FileConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Path         string `koanf:"path" validate:"required_if=Enabled true"`
	Format       string `koanf:"format" validate:"omitempty,oneof=text json"`
	KeepLogfiles int    `koanf:"keep_logfiles" validate:"gte=0"`
	SizeLimit    int64  `koanf:"size_limit" validate:"gte=0"`
	Compress     bool   `koanf:"compress"`
}

// Default returns a config that logs text to the console at every level.
func Default() *Config {
	return &Config{
		AppName: "logfile",
		Console: ConsoleConfig{Enabled: true, Format: "text"},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := core.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// Load parses and validates a document. Keys missing from data keep their
// Default values.
func Load(data []byte, format Format) (*Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path and loads it with the format of its extension.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data, format)
}

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Filters converts the level lists into filter rules. It assumes a
// validated config; unknown names are skipped.
func (c *Config) Filters() []core.FilterRule[core.Level] {
	rule := core.FilterRule[core.Level]{
		Allow: parseLevels(c.Levels.Allow),
		Block: parseLevels(c.Levels.Block),
	}
	if len(rule.Allow) == 0 && len(rule.Block) == 0 {
		return nil
	}
	return []core.FilterRule[core.Level]{rule}
}

func parseLevels(names []string) []core.Level {
	if len(names) == 0 {
		return nil
	}
	levels := make([]core.Level, 0, len(names))
	for _, n := range names {
		if l, err := core.ParseLevel(n); err == nil {
			levels = append(levels, l)
		}
	}
	return levels
}
