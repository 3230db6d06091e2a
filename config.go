package logfile

import (
	"slices"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/handler"
)

// Config is the routing and filtering configuration of a Logfile.
type Config struct {
	// Routers receive every admitted entry
	Routers []handler.Handler
	// Filters are evaluated in order; an entry must pass all of them
	Filters []core.FilterRule[core.Level]
}

func (c Config) clone() Config {
	filters := make([]core.FilterRule[core.Level], len(c.Filters))
	for i, f := range c.Filters {
		filters[i] = core.FilterRule[core.Level]{
			Allow: slices.Clone(f.Allow),
			Block: slices.Clone(f.Block),
		}
	}
	return Config{
		Routers: slices.Clone(c.Routers),
		Filters: filters,
	}
}

// ConfigBuilder provides a fluent API for building a Config
type ConfigBuilder struct {
	routers []handler.Handler
	filters []core.FilterRule[core.Level]
	allow   []core.Level
	block   []core.Level
}

// NewConfigBuilder creates a new config builder
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// AddRouter adds a router. Nil routers are ignored.
func (b *ConfigBuilder) AddRouter(h handler.Handler) *ConfigBuilder {
	if h != nil {
		b.routers = append(b.routers, h)
	}
	return b
}

// AllowLevels restricts the logfile to the given levels. Repeated calls
// extend the same allow list.
func (b *ConfigBuilder) AllowLevels(levels ...core.Level) *ConfigBuilder {
	b.allow = append(b.allow, levels...)
	return b
}

// BlockLevels suppresses the given levels.
func (b *ConfigBuilder) BlockLevels(levels ...core.Level) *ConfigBuilder {
	b.block = append(b.block, levels...)
	return b
}

// AddFilter adds an independent filter rule.
func (b *ConfigBuilder) AddFilter(rule core.FilterRule[core.Level]) *ConfigBuilder {
	b.filters = append(b.filters, rule)
	return b
}

// Build creates the Config. Levels given to AllowLevels and BlockLevels
// form one rule placed before the rules added with AddFilter.
func (b *ConfigBuilder) Build() Config {
	cfg := Config{Routers: slices.Clone(b.routers)}
	if len(b.allow) > 0 || len(b.block) > 0 {
		cfg.Filters = append(cfg.Filters, core.FilterRule[core.Level]{
			Allow: slices.Clone(b.allow),
			Block: slices.Clone(b.block),
		})
	}
	cfg.Filters = append(cfg.Filters, b.filters...)
	return cfg.clone()
}
