package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler"
	"github.com/philipp01105/logfile/handler/consolehandler"
	"github.com/philipp01105/logfile/handler/filehandler"
)

// Filename returns the log file path for the file router.
func (c *Config) Filename() string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(c.AppName))
	return filepath.Join(c.File.Path, name+".log")
}

func (c *Config) newFormatter(format string) formatter.Formatter {
	cfg := formatter.Config{AppName: c.AppName, IncludeHierarchy: true}
	if format == "json" {
		return formatter.NewJSONFormatter(cfg)
	}
	return formatter.NewTextFormatter(cfg)
}

// Routers creates the configured routers. On error, routers created so
// far are closed.
func (c *Config) Routers() ([]handler.Handler, error) {
	var routers []handler.Handler

	if c.Console.Enabled {
		cc := consolehandler.ConsoleConfig{
			Writer:    os.Stdout,
			Formatter: c.newFormatter(c.Console.Format),
			Async:     c.Console.Async,
		}
		cc.BufferSize = c.Console.BufferSize
		routers = append(routers, consolehandler.NewConsoleHandler(cc))
	}

	if c.File.Enabled {
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:   c.Filename(),
			Formatter:  c.newFormatter(c.File.Format),
			MaxSize:    c.File.SizeLimit,
			MaxBackups: c.File.KeepLogfiles,
			Compress:   c.File.Compress,
		})
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("config: file router: %w", err), closeAll(routers))
		}
		routers = append(routers, fh)
	}

	return routers, nil
}

// Build validates the config and creates a Logfile named after AppName.
// Options are applied after the name, so WithName overrides it.
func (c *Config) Build(opts ...logfile.Option) (*logfile.Logfile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	routers, err := c.Routers()
	if err != nil {
		return nil, err
	}

	b := logfile.NewConfigBuilder()
	for _, r := range routers {
		b.AddRouter(r)
	}
	for _, rule := range c.Filters() {
		b.AddFilter(rule)
	}

	lf, err := logfile.New(b.Build(), append([]logfile.Option{logfile.WithName(c.AppName)}, opts...)...)
	if err != nil {
		return nil, multierr.Append(err, closeAll(routers))
	}
	return lf, nil
}

func closeAll(routers []handler.Handler) error {
	var errs error
	for _, r := range routers {
		errs = multierr.Append(errs, r.Close())
	}
	return errs
}
