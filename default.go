package logfile

import (
	"sync"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler/consolehandler"
)

var (
	defaultLogfile *Logfile
	defaultOnce    sync.Once
	defaultMu      sync.RWMutex
)

func initDefault() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	lf, err := New(NewConfigBuilder().AddRouter(h).Build())
	if err != nil {
		// only the meter provider can fail; fall back to a no-op one
		lf, _ = New(NewConfigBuilder().AddRouter(h).Build(), WithMeterProvider(noopMeterProvider()))
	}
	defaultLogfile = lf
}

// Default returns the process-wide Logfile. Unless replaced with
// SetDefault it writes text to stdout and admits every level.
func Default() *Logfile {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogfile == nil {
			initDefault()
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogfile
}

// SetDefault replaces the process-wide Logfile. The previous one is not
// closed.
func SetDefault(l *Logfile) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogfile = l
}

// Log logs through the default Logfile.
func Log(level core.Level, msg string, fields ...core.Field) error {
	return Default().Log(level, msg, fields...)
}
